package web

import "net/http"

// HTTPClient defines the interface for making HTTP requests
type HTTPClient interface {
	Get(url string) (*http.Response, error)
}

// Page holds the pieces of a fetched webpage the analyzer needs.
type Page struct {
	URL   string
	Title string
	Text  string
}
