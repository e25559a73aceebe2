// Package ingest imports catalog records from Open Library by ISBN.
package ingest

// Record is one book as it is written to the catalog.
type Record struct {
	ISBN    string
	Title   string
	Authors []string
}

// Report describes the outcome of an import, one list per outcome. ISBNs keep
// their request order.
type Report struct {
	Imported []string `json:"imported"`
	Existing []string `json:"existing"`
	Missing  []string `json:"missing"`
}

const (
	DefaultBatchSize = 20
	MaxImport        = 500
)
