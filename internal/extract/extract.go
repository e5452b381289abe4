// Package extract talks to the external extraction collaborator: it uploads
// a syllabus PDF to OpenAI and asks for one pipe-delimited event line per
// scheduled item. The output format is a loose contract; downstream parsing
// treats it as untrusted text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// Config selects credentials and model for the extraction call. The caller
// supplies these explicitly; this package never reads process environment.
type Config struct {
	APIKey string
	Model  string
}

// Request describes one extraction. The semester dates and timezone are
// prompt context only, so the model can estimate relative references like
// "Week 5" or "Finals Week".
type Request struct {
	PDFPath       string
	ClassName     string
	Section       string
	SemesterStart string
	SemesterEnd   string
	Timezone      string
}

// Client performs extractions against the OpenAI API.
type Client struct {
	cli   openai.Client
	model openai.ChatModel
}

func New(cfg Config) *Client {
	model := openai.ChatModel(cfg.Model)
	if model == "" {
		model = openai.ChatModelGPT4_1
	}
	return &Client{
		cli:   openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model: model,
	}
}

// Extract uploads the syllabus and runs a single completion over it. It
// fails when the upload or completion fails, or when the model returns an
// empty extraction.
func (c *Client) Extract(ctx context.Context, req Request) (string, error) {
	f, err := os.Open(req.PDFPath)
	if err != nil {
		return "", fmt.Errorf("open syllabus: %w", err)
	}
	defer f.Close()

	slog.InfoContext(ctx, "Uploading syllabus", "path", req.PDFPath)
	uploaded, err := c.cli.Files.New(ctx, openai.FileNewParams{
		File:    f,
		Purpose: openai.FilePurposeUserData,
	})
	if err != nil {
		return "", fmt.Errorf("upload syllabus: %w", err)
	}

	slog.InfoContext(ctx, "Extracting events", "class", req.ClassName, "section", req.Section, "model", c.model)
	resp, err := c.cli.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
					FileID: openai.String(uploaded.ID),
				}),
				openai.TextContentPart(prompt(req)),
			}),
		},
	})
	if err != nil {
		return "", fmt.Errorf("extract events: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by OpenAI")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("no events extracted from syllabus; it may be empty or unreadable")
	}
	return out, nil
}

func prompt(req Request) string {
	return fmt.Sprintf(`Analyze this syllabus and extract ALL scheduled events for SECTION %[2]s of %[1]s.

SEMESTER INFORMATION (for calculating dates):
- Semester Start: %[3]s
- Semester End: %[4]s
- Timezone: %[5]s

SECTION-SPECIFIC EXTRACTION:
- If the syllabus contains multiple sections with different schedules, extract ONLY events for Section %[2]s
- If the syllabus only has one section or doesn't specify sections, extract all events

HANDLING DATES:
1. For SPECIFIC DATES: use the exact date in MM/DD/YYYY format
2. For VAGUE/RELATIVE DATES (e.g. "Week 5", "Mid-semester", "Finals Week"): estimate from the semester start/end dates
3. For MISSING/TBA DATES: SKIP the event entirely ("TBA", "See Canvas", "Check online", etc.)

HANDLING TIMES:
- Convert all times to 24-hour format (e.g. 7:00 PM = 19:00)
- If no time is specified, use "all-day"

Extract regular class meetings (with days of the week), exams, assignment deadlines,
recurring office hours, and any other scheduled events.

FORMAT: one event per line, pipe-separated:
EventName | Date(s) | Time | Location

Use "Monday-Wednesday-Friday" style for recurring days, MM/DD/YYYY for single dates.
Location defaults to the lecture room, or "TBA" if unknown.

Example output:
Lecture | Monday-Wednesday-Friday | 11:30-12:30 | ROOM101
Midterm Exam | 10/15/2025 | 19:00-21:00 | ROOM101
Project Deadline | 11/20/2025 | 23:59 | Online
Final Exam | 12/12/2025 | all-day | TBA`,
		req.ClassName, req.Section, req.SemesterStart, req.SemesterEnd, req.Timezone)
}
