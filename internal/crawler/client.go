package crawler

import (
	"fmt"

	"mbtatimes/internal/logger"
	"mbtatimes/internal/models"
)

// Client chooses between the network and local file providers and hands
// back parsed rows.
type Client struct {
	scraper *Scraper
	parser  *Parser
	log     *logger.Logger
}

// NewClient creates a new crawler client with default dependencies.
func NewClient() *Client {
	return &Client{
		scraper: NewScraper(),
		parser:  NewParser(),
		log:     logger.Discard(),
	}
}

// NewClientWithDeps creates a new crawler client with injected dependencies.
func NewClientWithDeps(scraper *Scraper, parser *Parser, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		scraper: scraper,
		parser:  parser,
		log:     log,
	}
}

// FetchDepartures downloads and parses the departures board at url.
func (c *Client) FetchDepartures(url string) ([]models.RawRecord, error) {
	content, statusCode, duration, err := c.scraper.ScrapeWithMetrics(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}

	c.log.Info("fetched departures", "url", url, "status", statusCode, "bytes", len(content), "duration", duration)

	rows, err := c.parser.ParseDepartures(content)
	if err != nil {
		return nil, err
	}

	c.log.Debug("parsed departures", "rows", len(rows))

	return rows, nil
}

// ReadDepartures reads and parses a departures board stored at filePath.
func (c *Client) ReadDepartures(filePath string) ([]models.RawRecord, error) {
	content, fileSize, duration, err := c.scraper.ReadLocalFileWithMetrics(filePath)
	if err != nil {
		return nil, err
	}

	c.log.Info("read departures", "path", filePath, "bytes", fileSize, "duration", duration)

	rows, err := c.parser.ParseDepartures(content)
	if err != nil {
		return nil, err
	}

	c.log.Debug("parsed departures", "rows", len(rows))

	return rows, nil
}

// Rows reads filePath when it is set and fetches url otherwise.
func (c *Client) Rows(filePath, url string) ([]models.RawRecord, error) {
	if filePath != "" {
		return c.ReadDepartures(filePath)
	}

	return c.FetchDepartures(url)
}
