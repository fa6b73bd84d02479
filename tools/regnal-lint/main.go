// regnal-lint is a custom static analyzer for regnal ordering and performance patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/regnal/tools/regnal-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
