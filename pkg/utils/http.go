// Package utils provides common utility functions.
package utils

import "net/url"

// UserAgent identifies the tool to the departures endpoint.
const UserAgent = "mbtatimes/1.0"

// HTTPHelper provides HTTP utility functions.
type HTTPHelper struct{}

// NewHTTPHelper creates a new HTTP helper.
func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{}
}

// IsValidURL reports whether raw is an absolute http or https URL.
func (h *HTTPHelper) IsValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// BuildHeaders creates request headers with defaults. Custom headers win.
func (h *HTTPHelper) BuildHeaders(customHeaders map[string]string) map[string]string {
	headers := map[string]string{
		"User-Agent": UserAgent,
		"Accept":     "text/csv, text/plain, */*",
	}

	for key, value := range customHeaders {
		headers[key] = value
	}

	return headers
}
