// Package analyzers provides all custom static analyzers for regnal.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/regnal/tools/regnal-lint/analyzers/collatorloop"
	"github.com/ersonp/regnal/tools/regnal-lint/analyzers/loopcall"
	"github.com/ersonp/regnal/tools/regnal-lint/analyzers/stablesort"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		collatorloop.Analyzer,
		loopcall.Analyzer,
		stablesort.Analyzer,
	}
}
