package handlers

import (
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
)

func testCatalog() *entities.Catalog {
	mughal := []entities.Ruler{
		{ID: "mughal-1", Name: "Akbar", Dynasty: "Mughal Bengal", Era: entities.EraMedieval, Religion: entities.ReligionMixed, ReignStart: 1576, ReignEnd: 1605},
		{ID: "mughal-2", Name: "Jahangir", Dynasty: "Mughal Bengal", Era: entities.EraMedieval, Religion: entities.ReligionMuslim, ReignStart: 1605, ReignEnd: 1627},
	}
	gupta := []entities.Ruler{
		{ID: "gupta-1", Name: "Chandragupta I", Dynasty: "Gupta Empire", Era: entities.EraClassical, Religion: entities.ReligionHindu, ReignStart: 319, ReignEnd: 335},
		{ID: "gupta-2", Name: "Samudragupta", Dynasty: "Gupta Empire", Era: entities.EraClassical, Religion: entities.ReligionHindu, ReignStart: 335, ReignEnd: 375},
	}
	return &entities.Catalog{
		Dynasties: []entities.Dynasty{
			{Name: "Mughal Bengal", Era: entities.EraMedieval, StartYear: 1576, EndYear: 1717, Rulers: mughal},
			{Name: "Gupta Empire", Era: entities.EraClassical, StartYear: 319, EndYear: 550, Rulers: gupta},
		},
		Details: map[string]entities.Detail{
			"mughal-1": {Biography: "Akbar the Great.", Sources: []string{"Akbarnama"}},
		},
	}
}

func testCatalogService() *services.CatalogService {
	return services.NewCatalogService(testCatalog())
}
