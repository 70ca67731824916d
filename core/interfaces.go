// Package core defines the pipeline interfaces and the menu data model for hyeat.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw portal markup.
// An empty date asks for the current week; a date (YYYY-MM-DD) asks for
// that day's view, whose weekly grid covers the week containing it.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (*FetchResult, error)
}

// Renderer converts one date's menu into a final output format.
type Renderer interface {
	Render(date string, day DayMenu) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".md").
	Extension() string
}
