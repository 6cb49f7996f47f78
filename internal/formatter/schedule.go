// Package formatter renders trains as a fixed-width text schedule.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"mbtatimes/internal/models"

	"github.com/mattn/go-runewidth"
)

// cells measures text in terminal cells. East Asian wide runes take two
// cells, so a column holds fewer of them than a code point count would allow.
// Ambiguous-width runes are always one cell, whatever the locale says.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Column is one schedule column. A zero Width leaves the cell unpadded.
type Column struct {
	Value  func(models.Train) string
	Header string
	Width  int
}

// ScheduleColumns is the departures board layout.
var ScheduleColumns = []Column{
	{Header: "Time", Width: 10, Value: func(t models.Train) string { return t.ExpectedTimeReadable }},
	{Header: "Destination", Width: 30, Value: func(t models.Train) string { return t.Destination }},
	{Header: "Train #", Width: 10, Value: func(t models.Train) string { return t.Trip }},
	{Header: "Track", Width: 10, Value: func(t models.Train) string { return t.Track }},
	{Header: "Status", Value: func(t models.Train) string { return t.Status }},
}

// FormatSchedule returns the header line followed by one line per train.
// Cells are left-justified and padded to the column's display width; longer
// cells are kept whole.
func FormatSchedule(trains []models.Train) string {
	var sb strings.Builder

	values := make([]string, len(ScheduleColumns))

	for i, col := range ScheduleColumns {
		values[i] = col.Header
	}

	writeLine(&sb, values)

	for _, train := range trains {
		for i, col := range ScheduleColumns {
			values[i] = col.Value(train)
		}

		writeLine(&sb, values)
	}

	return sb.String()
}

// WriteSchedule writes the formatted schedule to w in a single call.
func WriteSchedule(w io.Writer, trains []models.Train) error {
	if _, err := io.WriteString(w, FormatSchedule(trains)); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}

	return nil
}

func writeLine(sb *strings.Builder, values []string) {
	for i, col := range ScheduleColumns {
		if col.Width > 0 {
			sb.WriteString(cells.FillRight(values[i], col.Width))
		} else {
			sb.WriteString(values[i])
		}
	}

	sb.WriteString("\n")
}
