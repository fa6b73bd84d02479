package a

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func bad(pairs [][2]string) int {
	n := 0
	for _, p := range pairs {
		col := collate.New(language.English) // want "collate.New called inside loop"
		n += col.CompareString(p[0], p[1])
	}
	return n
}

func badFor(names []string) int {
	n := 0
	for i := 1; i < len(names); i++ {
		n += collate.New(language.English).CompareString(names[i-1], names[i]) // want "collate.New called inside loop"
	}
	return n
}

func good(pairs [][2]string) int {
	col := collate.New(language.English)
	n := 0
	for _, p := range pairs {
		n += col.CompareString(p[0], p[1])
	}
	return n
}
