// Package collate is a minimal stand-in for analyzer tests.
package collate

import "golang.org/x/text/language"

type Collator struct{ tag language.Tag }

type Option struct{}

func New(t language.Tag, o ...Option) *Collator { return &Collator{tag: t} }

func (c *Collator) CompareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
