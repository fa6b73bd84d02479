// Package language is a minimal stand-in for analyzer tests.
package language

type Tag struct{ name string }

var English = Tag{name: "en"}
