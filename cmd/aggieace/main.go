package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sahil-d-patel/AggieAce/internal/convert"
	"github.com/sahil-d-patel/AggieAce/internal/extract"
	"github.com/sahil-d-patel/AggieAce/internal/server"
	"github.com/sahil-d-patel/AggieAce/internal/telemetry"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "aggieace",
		Usage: "Convert course syllabus PDFs into iCalendar (.ics) files.",
		Commands: []*cli.Command{
			convertCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a single syllabus PDF into an .ics calendar.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pdf", Required: true, Usage: "Path to the syllabus PDF"},
			&cli.StringFlag{Name: "class-name", Required: true, Usage: `Class name (e.g. "CSCE 120")`},
			&cli.StringFlag{Name: "section", Required: true, Usage: `Section number (e.g. "520")`},
			&cli.StringFlag{Name: "start-date", Required: true, Usage: "Semester start date (MM/DD/YYYY)"},
			&cli.StringFlag{Name: "end-date", Required: true, Usage: "Semester end date (MM/DD/YYYY)"},
			&cli.StringFlag{Name: "timezone", Value: server.DefaultTimezone, Usage: "Timezone label for the calendar"},
			&cli.StringFlag{Name: "output", Required: true, Usage: "Output .ics file path"},
		},
		Action: func(c *cli.Context) error {
			setupLogger(os.Getenv("LOG_LEVEL"))
			telemetry.Init()

			conv := convert.New(extractorFromEnv())

			_, err := conv.Run(c.Context, convert.Options{
				PDFPath:    c.String("pdf"),
				ClassName:  c.String("class-name"),
				Section:    c.String("section"),
				Start:      c.String("start-date"),
				End:        c.String("end-date"),
				Timezone:   c.String("timezone"),
				OutputPath: c.String("output"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Calendar saved to %s\n", c.String("output"))
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the converter over HTTP.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "listen", Value: ":8080", Usage: "HTTP listen address"},
		},
		Action: func(c *cli.Context) error {
			setupLogger(os.Getenv("LOG_LEVEL"))
			telemetry.Init()

			srv := server.New(convert.New(extractorFromEnv()))

			slog.Info("Starting the server", "listen", c.String("listen"))
			return http.ListenAndServe(c.String("listen"), srv.Handler())
		},
	}
}

// extractorFromEnv builds the extraction client from process environment.
// Credentials are read here, at the edge, and passed down explicitly.
func extractorFromEnv() *extract.Client {
	return extract.New(extract.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  os.Getenv("OPENAI_MODEL"),
	})
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
