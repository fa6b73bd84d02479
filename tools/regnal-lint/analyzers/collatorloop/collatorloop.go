// Package collatorloop detects collator construction inside loops.
package collatorloop

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects collate.New/NewFromTable calls inside loops.
var Analyzer = &analysis.Analyzer{
	Name:     "collatorloop",
	Doc:      "detects collate.New/NewFromTable calls inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var collateFuncs = map[string]bool{
	"New":          true,
	"NewFromTable": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			ident, ok := sel.X.(*ast.Ident)
			if !ok || ident.Name != "collate" || !collateFuncs[sel.Sel.Name] {
				return true
			}

			pass.Reportf(call.Pos(),
				"collate.%s called inside loop - build one collator per sort",
				sel.Sel.Name)
			return true
		})
	})

	return nil, nil
}
