package docboost

// Converter converts clean HTML (e.g., from an Extractor) to Markdown,
// which is what gets indexed as a document body.
type Converter interface {
	Convert(html string) (string, error)
}
