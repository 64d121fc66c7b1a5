package bookstore

import (
	"net/http"
	"time"
)

// HTTPRequestTimeout is the default timeout for all HTTP requests to the bookstore API.
const HTTPRequestTimeout = 10 * time.Second

// DefaultBaseURL is the public bookstore API.
const DefaultBaseURL = "https://bookstore.toolsqa.com"

// acceptAnyStatus replaces the default 2xx validator so that every response
// reaches Classify with its status code and body intact.
func acceptAnyStatus(*http.Response) error {
	return nil
}
