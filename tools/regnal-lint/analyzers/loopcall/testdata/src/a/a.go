package a

type Ruler struct{ ID string }

type CatalogService struct{ rulers []Ruler }

func (s *CatalogService) AllRulers() []Ruler { return s.rulers }

func (s *CatalogService) FindRuler(id string) (Ruler, bool) {
	for _, r := range s.rulers {
		if r.ID == id {
			return r, true
		}
	}
	return Ruler{}, false
}

type CatalogReader interface {
	LoadCatalog() ([]Ruler, error)
}

// shelf shares a method name with CatalogService but is cheap.
type shelf struct{ top []Ruler }

func (s shelf) AllRulers() []Ruler { return s.top }

func nestedRange(s *CatalogService, ids []string) int {
	n := 0
	for _, id := range ids {
		for _, r := range s.AllRulers() { // want `CatalogService.AllRulers called inside loop`
			if r.ID == id {
				n++
			}
		}
	}
	return n
}

func loopCondition(s *CatalogService) int {
	n := 0
	for i := 0; i < len(s.AllRulers()); i++ { // want `CatalogService.AllRulers called inside loop`
		n += i
	}
	return n
}

func closureInLoop(s *CatalogService, ids []string) []func() int {
	var fns []func() int
	for range ids {
		fns = append(fns, func() int {
			return len(s.AllRulers()) // want `CatalogService.AllRulers called inside loop`
		})
	}
	return fns
}

func interfaceCall(r CatalogReader, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		if _, err = r.LoadCatalog(); err == nil { // want `CatalogReader.LoadCatalog called inside loop`
			return nil
		}
	}
	return err
}

func rangeOnce(s *CatalogService) int {
	n := 0
	for _, r := range s.AllRulers() {
		n += len(r.ID)
	}
	for i, all := 0, s.AllRulers(); i < len(all); i++ {
		n++
	}
	return n
}

func hoisted(s *CatalogService, ids []string) int {
	all := s.AllRulers()
	n := 0
	for _, id := range ids {
		for _, r := range all {
			if r.ID == id {
				n++
			}
		}
		if _, ok := s.FindRuler(id); ok {
			n++
		}
	}
	return n
}

func otherReceiver(shelves []shelf) int {
	n := 0
	for _, s := range shelves {
		n += len(s.AllRulers())
	}
	return n
}
