// Package crawler loads departure rows from the MBTA endpoint or a local file.
package crawler

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"mbtatimes/internal/config"
	"mbtatimes/pkg/utils"

	resty "gopkg.in/resty.v1"
)

// Scraper errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrInvalidURL           = errors.New("invalid departures URL")
	ErrInvalidEncoding      = errors.New("content is not valid UTF-8")
)

// Scraper fetches raw departure boards. It makes exactly one attempt per call.
type Scraper struct {
	client  *resty.Client
	http    *utils.HTTPHelper
	strings *utils.StringHelper
}

// NewScraper creates a new scraper instance with a 30 second timeout.
func NewScraper() *Scraper {
	return NewScraperWithConfig(&config.SourceConfig{TimeoutSec: 30})
}

// NewScraperWithConfig creates a scraper using the source settings.
func NewScraperWithConfig(cfg *config.SourceConfig) *Scraper {
	helper := utils.NewHTTPHelper()

	client := resty.New().
		SetTimeout(cfg.Timeout()).
		SetHeaders(helper.BuildHeaders(nil))

	return &Scraper{
		client:  client,
		http:    helper,
		strings: utils.NewStringHelper(),
	}
}

// ScrapeWithMetrics returns (content, statusCode, duration, error).
func (s *Scraper) ScrapeWithMetrics(url string) (string, int, time.Duration, error) {
	if !s.http.IsValidURL(url) {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	startTime := time.Now()

	resp, err := s.client.R().Get(url)
	duration := time.Since(startTime)

	if err != nil {
		return "", 0, duration, fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode > 299 {
		return "", statusCode, duration, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, statusCode)
	}

	content, err := s.decode(resp.Body())
	if err != nil {
		return "", statusCode, duration, fmt.Errorf("response from %s: %w", url, err)
	}

	return content, statusCode, duration, nil
}

// Scrape fetches and returns content from the given URL.
func (s *Scraper) Scrape(url string) (string, error) {
	content, _, _, err := s.ScrapeWithMetrics(url)

	return content, err
}

// ReadLocalFile reads content from a local file path.
func (s *Scraper) ReadLocalFile(filePath string) (string, error) {
	content, _, _, err := s.ReadLocalFileWithMetrics(filePath)

	return content, err
}

// ReadLocalFileWithMetrics returns (content, fileSize, duration, error).
func (s *Scraper) ReadLocalFileWithMetrics(filePath string) (string, int64, time.Duration, error) {
	startTime := time.Now()

	data, err := os.ReadFile(filePath)
	duration := time.Since(startTime)

	if err != nil {
		return "", 0, duration, fmt.Errorf("failed to read local file %s: %w", filePath, err)
	}

	content, err := s.decode(data)
	if err != nil {
		return "", 0, duration, fmt.Errorf("local file %s: %w", filePath, err)
	}

	return content, int64(len(data)), duration, nil
}

func (s *Scraper) decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}

	return s.strings.StripBOM(string(data)), nil
}
