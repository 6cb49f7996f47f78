package schedule

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"mbtatimes/internal/config"
	"mbtatimes/internal/logger"
	"mbtatimes/internal/models"
	"mbtatimes/internal/normalizer"
)

func row(scheduled, lateness, destination, trip, origin string) models.RawRecord {
	return models.RawRecord{
		"ScheduledTime": scheduled,
		"Lateness":      lateness,
		"Destination":   destination,
		"Trip":          trip,
		"Track":         "7",
		"Status":        "On Time",
		"Origin":        origin,
	}
}

func newPipeline(sortMode string) *Pipeline {
	return NewPipeline(&config.ScheduleConfig{Origin: config.DefaultOrigin, Sort: sortMode}, nil)
}

func TestPipeline_Run_SingleTrain(t *testing.T) {
	var out bytes.Buffer

	rows := []models.RawRecord{
		row("2024-01-01T07:00:00", "300", "Worcester", "507", "South Station"),
	}

	if err := newPipeline(config.SortLexical).Run(rows, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one line, got %q", out.String())
	}

	if !strings.HasPrefix(lines[0], "Time      Destination") {
		t.Errorf("unexpected header %q", lines[0])
	}

	want := "07:05 am  Worcester                     507       7         On Time"
	if lines[1] != want {
		t.Errorf("line = %q, want %q", lines[1], want)
	}
}

func TestPipeline_Run_OrdersByExpectedTime(t *testing.T) {
	var out bytes.Buffer

	rows := []models.RawRecord{
		row("1700000500", "0", "Providence", "815", "South Station"),
		row("1700000000", "0", "Worcester", "507", "South Station"),
	}

	if err := newPipeline(config.SortLexical).Run(rows, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	text := out.String()
	if strings.Index(text, "Worcester") > strings.Index(text, "Providence") {
		t.Errorf("earlier train should print first:\n%s", text)
	}
}

func TestPipeline_Run_NegativeLateness(t *testing.T) {
	var out bytes.Buffer

	rows := []models.RawRecord{
		row("2024-01-01T08:00:00", "-600", "Franklin", "705", "South Station"),
	}

	if err := newPipeline(config.SortLexical).Run(rows, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out.String(), "07:50 am  Franklin") {
		t.Errorf("expected 07:50 am arrival, got:\n%s", out.String())
	}
}

func TestPipeline_Run_MalformedLatenessWritesNothing(t *testing.T) {
	var out bytes.Buffer

	rows := []models.RawRecord{
		row("2024-01-01T07:00:00", "0", "Worcester", "507", "South Station"),
		row("2024-01-01T08:00:00", "abc", "Franklin", "705", "South Station"),
	}

	err := newPipeline(config.SortLexical).Run(rows, &out)
	if !errors.Is(err, normalizer.ErrInvalidLateness) {
		t.Fatalf("Run() error = %v, want ErrInvalidLateness", err)
	}

	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error should name the failing row: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", out.String())
	}
}

func TestPipeline_Run_NonMatchingOriginStillNormalized(t *testing.T) {
	var out bytes.Buffer

	rows := []models.RawRecord{
		row("2024-01-01T07:00:00", "0", "Worcester", "507", "South Station"),
		row("2024-01-01T07:00:00", "late", "Lowell", "301", "North Station"),
	}

	if err := newPipeline(config.SortLexical).Run(rows, &out); !errors.Is(err, normalizer.ErrInvalidLateness) {
		t.Fatalf("Run() error = %v, want failure from a filtered-out row too", err)
	}
}

func TestPipeline_Schedule_FiltersOrigin(t *testing.T) {
	rows := []models.RawRecord{
		row("1700000000", "0", "Lowell", "301", "North Station"),
		row("1700000100", "0", "Worcester", "507", "South Station"),
		row("1700000200", "0", "Haverhill", "211", "North Station"),
		row("1700000300", "0", "Kingston", "033", " South Station "),
	}

	trains, err := newPipeline(config.SortLexical).Schedule(rows)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(trains) != 2 {
		t.Fatalf("expected 2 South Station trains, got %d", len(trains))
	}

	for _, train := range trains {
		if train.Origin != "South Station" {
			t.Errorf("unexpected origin %q in schedule", train.Origin)
		}
	}
}

func TestPipeline_Schedule_CustomOrigin(t *testing.T) {
	p := NewPipeline(&config.ScheduleConfig{Origin: "North Station", Sort: config.SortNumeric}, nil)

	trains, err := p.Schedule([]models.RawRecord{
		row("1700000000", "0", "Lowell", "301", "North Station"),
		row("1700000100", "0", "Worcester", "507", "South Station"),
	})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if len(trains) != 1 || trains[0].Trip != "301" {
		t.Errorf("expected only the North Station train, got %+v", trains)
	}
}

func TestPipeline_Schedule_WarnsOnMixedWidths(t *testing.T) {
	var logs bytes.Buffer

	p := NewPipeline(&config.ScheduleConfig{Origin: config.DefaultOrigin, Sort: config.SortLexical},
		logger.NewLoggerWithWriter("warn", &logs))

	_, err := p.Schedule([]models.RawRecord{
		row("99", "0", "A", "1", "South Station"),
		row("100", "0", "B", "2", "South Station"),
	})
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}

	if !strings.Contains(logs.String(), "lexical order may not be chronological") {
		t.Errorf("expected a warning about lexical ordering, got %q", logs.String())
	}
}

func trainAt(expected string, trip string) models.Train {
	return models.Train{ExpectedTime: expected, Trip: trip, Origin: "South Station"}
}

func TestSortTrains_Lexical(t *testing.T) {
	trains := []models.Train{
		trainAt("99", "late"),
		trainAt("100", "early"),
	}

	sorted := SortTrains(trains, config.SortLexical)

	if sorted[0].ExpectedTime != "100" || sorted[1].ExpectedTime != "99" {
		t.Errorf("lexical sort should place \"100\" before \"99\", got %s, %s",
			sorted[0].ExpectedTime, sorted[1].ExpectedTime)
	}

	if trains[0].ExpectedTime != "99" {
		t.Error("SortTrains must not reorder its input")
	}
}

func TestSortTrains_Stable(t *testing.T) {
	trains := []models.Train{
		trainAt("1700000100", "a"),
		trainAt("1700000000", "b"),
		trainAt("1700000100", "c"),
		trainAt("1700000000", "d"),
	}

	for i := range trains {
		epoch, err := strconv.ParseInt(trains[i].ExpectedTime, 10, 64)
		if err != nil {
			t.Fatal(err)
		}

		trains[i].Expected = time.Unix(epoch, 0)
	}

	for _, mode := range []string{config.SortLexical, config.SortNumeric} {
		var got []string
		for _, train := range SortTrains(trains, mode) {
			got = append(got, train.Trip)
		}

		if strings.Join(got, "") != "bdac" {
			t.Errorf("%s sort not stable: %v", mode, got)
		}
	}
}

func TestSortTrains_Numeric(t *testing.T) {
	trains := []models.Train{
		{ExpectedTime: "99", Expected: time.Unix(99, 0), Trip: "late"},
		{ExpectedTime: "100", Expected: time.Unix(100, 0), Trip: "early"},
	}

	sorted := SortTrains(trains, config.SortNumeric)

	if sorted[0].ExpectedTime != "99" {
		t.Errorf("numeric sort should place 99 first, got %s", sorted[0].ExpectedTime)
	}
}

func TestFilterOrigin(t *testing.T) {
	trains := []models.Train{
		{Origin: "North Station", Trip: "1"},
		{Origin: "South Station", Trip: "2"},
		{Origin: "south station", Trip: "3"},
	}

	kept := FilterOrigin(trains, "South Station")
	if len(kept) != 1 || kept[0].Trip != "2" {
		t.Errorf("FilterOrigin() = %+v", kept)
	}

	if len(FilterOrigin(nil, "South Station")) != 0 {
		t.Error("FilterOrigin(nil) should be empty")
	}
}
