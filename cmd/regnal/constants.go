package main

// Output formats.
const (
	FormatTable    = "table"
	FormatCards    = "cards"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatSQLite   = "sqlite"
)

// Valid formats per command.
var (
	listFormats   = []string{FormatTable, FormatCards}
	exportFormats = []string{FormatJSON, FormatCSV, FormatMarkdown, FormatSQLite}
)
