// Package loopcall detects whole-catalog calls inside loop bodies.
//
// Listing every ruler, building a view or timeline, and loading or saving a
// snapshot each walk the full catalog. Repeating one per iteration turns a
// single pass over the catalog into a quadratic one.
package loopcall

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer detects catalog-wide method calls that run once per loop iteration.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects catalog-wide method calls that run once per loop iteration",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// catalogWide maps receiver type name to the methods that walk the whole
// catalog. Interface receivers are listed by the interface declaring the
// method.
var catalogWide = map[string]map[string]bool{
	"CatalogService":  {"AllRulers": true, "Stats": true},
	"QueryService":    {"BuildView": true},
	"TimelineService": {"BuildTimeline": true},
	"CatalogReader":   {"LoadCatalog": true},
	"CatalogWriter":   {"EnsureSchema": true, "SaveCatalog": true},
	"CatalogStore":    {"EnsureSchema": true, "SaveCatalog": true, "LoadCatalog": true},
	"Repository":      {"EnsureSchema": true, "SaveCatalog": true, "LoadCatalog": true},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		call := n.(*ast.CallExpr)

		recv, method, ok := catalogWideMethod(pass.TypesInfo, call)
		if !ok || !repeatsPerIteration(stack) {
			return true
		}

		pass.Reportf(call.Pos(),
			"%s.%s called inside loop - call once before the loop and reuse the result",
			recv, method)
		return true
	})

	return nil, nil
}

// catalogWideMethod reports the receiver type and method name when call
// resolves to one of the catalogWide methods.
func catalogWideMethod(info *types.Info, call *ast.CallExpr) (recv, method string, ok bool) {
	fn, isFunc := typeutil.Callee(info, call).(*types.Func)
	if !isFunc {
		return "", "", false
	}
	sig, isSig := fn.Type().(*types.Signature)
	if !isSig || sig.Recv() == nil {
		return "", "", false
	}

	recv = receiverName(sig.Recv().Type())
	if !catalogWide[recv][fn.Name()] {
		return "", "", false
	}
	return recv, fn.Name(), true
}

func receiverName(t types.Type) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Obj().Name()
	}
	return ""
}

// repeatsPerIteration reports whether the innermost node of stack sits in a
// part of an enclosing loop that runs on every iteration. A range expression
// and a for-loop init run once, so only an outer loop can repeat them.
func repeatsPerIteration(stack []ast.Node) bool {
	for i := len(stack) - 1; i > 0; i-- {
		child := stack[i]
		switch loop := stack[i-1].(type) {
		case *ast.RangeStmt:
			if child == ast.Node(loop.Body) {
				return true
			}
		case *ast.ForStmt:
			if child == ast.Node(loop.Body) || (loop.Cond != nil && child == ast.Node(loop.Cond)) ||
				(loop.Post != nil && child == ast.Node(loop.Post)) {
				return true
			}
		}
	}
	return false
}
