// Package convert orchestrates the conversion pipeline: extraction, line
// parsing, calendar rendering, validation, and output.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sahil-d-patel/AggieAce/internal/extract"
	"github.com/sahil-d-patel/AggieAce/internal/ics"
	"github.com/sahil-d-patel/AggieAce/internal/schedule"
	"github.com/sahil-d-patel/AggieAce/internal/semester"
	"github.com/sahil-d-patel/AggieAce/internal/telemetry"
)

// ErrNoResolvableEvents is returned when every extracted line was skipped.
// An empty calendar is not valid output, so this is fatal for the batch even
// though each individual skip was not.
var ErrNoResolvableEvents = errors.New("no resolvable events in extraction output")

// Extractor produces raw event text for a syllabus. Implemented by
// extract.Client; faked in tests.
type Extractor interface {
	Extract(ctx context.Context, req extract.Request) (string, error)
}

// Options describes one conversion.
type Options struct {
	PDFPath   string
	ClassName string
	Section   string
	Start     string // MM/DD/YYYY
	End       string // MM/DD/YYYY
	Timezone  string

	// OutputPath, when set, is where the validated calendar is written.
	// Parent directories are created as needed.
	OutputPath string
}

// Title is the display name used for the calendar and event summaries.
func (o Options) Title() string {
	return fmt.Sprintf("%s (%s)", o.ClassName, o.Section)
}

// Converter runs the extract-parse-render-validate pipeline. It holds no
// state across calls; separate conversions may run concurrently.
type Converter struct {
	extractor Extractor
}

func New(e Extractor) *Converter {
	return &Converter{extractor: e}
}

// Run performs one conversion and returns the rendered calendar text. Fatal
// errors carry the failing stage; per-line problems are logged skips inside
// the parser and never abort the batch.
func (c *Converter) Run(ctx context.Context, opts Options) (string, error) {
	started := time.Now()

	text, events, err := c.run(ctx, opts)
	if err != nil {
		telemetry.RecordConversion(ctx, "error", 0, time.Since(started))
		return "", err
	}

	telemetry.RecordConversion(ctx, "ok", events, time.Since(started))
	return text, nil
}

func (c *Converter) run(ctx context.Context, opts Options) (string, int, error) {
	window, err := semester.ParseWindow(opts.Start, opts.End)
	if err != nil {
		return "", 0, fmt.Errorf("semester window: %w", err)
	}

	raw, err := c.extractor.Extract(ctx, extract.Request{
		PDFPath:       opts.PDFPath,
		ClassName:     opts.ClassName,
		Section:       opts.Section,
		SemesterStart: opts.Start,
		SemesterEnd:   opts.End,
		Timezone:      opts.Timezone,
	})
	if err != nil {
		return "", 0, fmt.Errorf("extraction: %w", err)
	}

	events := schedule.ParseLines(raw, window)
	if len(events) == 0 {
		return "", 0, ErrNoResolvableEvents
	}
	slog.InfoContext(ctx, "Parsed events from extraction", "count", len(events), "class", opts.Title())

	text, err := ics.Render(events, ics.Meta{CalendarName: opts.Title(), Timezone: opts.Timezone})
	if err != nil {
		return "", 0, fmt.Errorf("render: %w", err)
	}

	if err := ics.Validate(text); err != nil {
		return "", 0, fmt.Errorf("validate: %w", err)
	}

	if opts.OutputPath != "" {
		if err := WriteFile(opts.OutputPath, text); err != nil {
			return "", 0, err
		}
		slog.InfoContext(ctx, "Calendar saved", "path", opts.OutputPath)
	}

	return text, len(events), nil
}

// WriteFile persists calendar text, creating parent directories as needed.
func WriteFile(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save calendar: %w", err)
	}
	return nil
}
