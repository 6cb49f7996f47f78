// Package normalizer cleans raw departure rows and computes expected arrival times.
package normalizer

import (
	"fmt"

	"mbtatimes/internal/models"
	"mbtatimes/pkg/utils"
)

// Processor trims, validates and transforms one row at a time.
type Processor struct {
	strings     *utils.StringHelper
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		strings:     utils.NewStringHelper(),
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process turns a raw row into a Train. It has no side effects.
func (p *Processor) Process(raw models.RawRecord) (models.Train, error) {
	fields := p.strings.TrimMap(raw)

	if err := p.validator.Validate(fields); err != nil {
		return models.Train{}, fmt.Errorf("validation failed: %w", err)
	}

	train, err := p.transformer.Transform(fields)
	if err != nil {
		return models.Train{}, fmt.Errorf("transformation failed: %w", err)
	}

	return train, nil
}
