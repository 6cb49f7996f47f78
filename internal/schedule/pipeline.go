// Package schedule turns raw departure rows into the printed board for one origin.
package schedule

import (
	"fmt"
	"io"
	"sort"

	"mbtatimes/internal/config"
	"mbtatimes/internal/formatter"
	"mbtatimes/internal/logger"
	"mbtatimes/internal/models"
	"mbtatimes/internal/normalizer"
)

// Pipeline normalizes, orders, filters and renders departures.
type Pipeline struct {
	processor *normalizer.Processor
	log       *logger.Logger
	origin    string
	sortMode  string
}

// NewPipeline creates a pipeline for the given schedule settings.
func NewPipeline(cfg *config.ScheduleConfig, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Discard()
	}

	return &Pipeline{
		processor: normalizer.NewProcessor(),
		log:       log,
		origin:    cfg.Origin,
		sortMode:  cfg.Sort,
	}
}

// Build normalizes every row. The first failure aborts the whole batch.
func (p *Pipeline) Build(rows []models.RawRecord) ([]models.Train, error) {
	trains := make([]models.Train, 0, len(rows))

	for i, row := range rows {
		train, err := p.processor.Process(row)
		if err != nil {
			// Row 1 is the header.
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		trains = append(trains, train)
	}

	return trains, nil
}

// Schedule returns the sorted trains leaving from the configured origin.
func (p *Pipeline) Schedule(rows []models.RawRecord) ([]models.Train, error) {
	trains, err := p.Build(rows)
	if err != nil {
		return nil, err
	}

	if p.sortMode == config.SortLexical && !uniformWidth(trains) {
		p.log.Warn("expected times differ in digit count, lexical order may not be chronological",
			"hint", "set schedule.sort to numeric")
	}

	sorted := SortTrains(trains, p.sortMode)
	filtered := FilterOrigin(sorted, p.origin)

	p.log.Debug("built schedule", "trains", len(trains), "origin", p.origin, "kept", len(filtered))

	return filtered, nil
}

// Run builds the schedule and writes it to w. Nothing is written unless
// every row normalized.
func (p *Pipeline) Run(rows []models.RawRecord, w io.Writer) error {
	trains, err := p.Schedule(rows)
	if err != nil {
		return err
	}

	return formatter.WriteSchedule(w, trains)
}

// SortTrains returns a stably sorted copy. SortLexical compares ExpectedTime
// as strings, so "100" orders before "99"; SortNumeric compares the instants.
func SortTrains(trains []models.Train, mode string) []models.Train {
	sorted := make([]models.Train, len(trains))
	copy(sorted, trains)

	if mode == config.SortNumeric {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Expected.Before(sorted[j].Expected)
		})

		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpectedTime < sorted[j].ExpectedTime
	})

	return sorted
}

// FilterOrigin keeps trains whose Origin equals origin exactly.
func FilterOrigin(trains []models.Train, origin string) []models.Train {
	var kept []models.Train

	for _, train := range trains {
		if train.Origin == origin {
			kept = append(kept, train)
		}
	}

	return kept
}

func uniformWidth(trains []models.Train) bool {
	for i := 1; i < len(trains); i++ {
		if len(trains[i].ExpectedTime) != len(trains[0].ExpectedTime) {
			return false
		}
	}

	return true
}
