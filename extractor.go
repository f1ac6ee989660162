package docboost

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title taken from page metadata.
	Title string

	// ContentHTML is the main content with navigation, footers and other
	// boilerplate removed.
	ContentHTML string
}

// Extractor extracts the main content from an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
