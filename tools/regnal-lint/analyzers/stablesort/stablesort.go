// Package stablesort detects unstable sorts.
//
// Ruler order is observable: ties keep their canonical catalog order, so
// every sort must be stable.
package stablesort

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer detects sort.Slice, sort.Sort and slices.SortFunc calls.
var Analyzer = &analysis.Analyzer{
	Name:     "stablesort",
	Doc:      "detects unstable sort calls; use sort.SliceStable, sort.Stable or slices.SortStableFunc",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// unstable maps package path and function name to the stable replacement.
var unstable = map[string]map[string]string{
	"sort": {
		"Slice": "sort.SliceStable",
		"Sort":  "sort.Stable",
	},
	"slices": {
		"SortFunc": "slices.SortStableFunc",
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil {
			return
		}
		// Methods such as sort.IntSlice.Sort are not package functions.
		if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
			return
		}

		funcs, ok := unstable[fn.Pkg().Path()]
		if !ok {
			return
		}
		if replacement, ok := funcs[fn.Name()]; ok {
			pass.Reportf(call.Pos(),
				"%s.%s is not stable - use %s to keep ties in catalog order",
				fn.Pkg().Name(), fn.Name(), replacement)
		}
	})

	return nil, nil
}
