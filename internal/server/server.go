// Package server exposes the converter over HTTP: one stateless conversion
// per request, multipart PDF in, .ics blob out.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sahil-d-patel/AggieAce/internal/convert"
	"github.com/sahil-d-patel/AggieAce/internal/httpx"
	"github.com/sahil-d-patel/AggieAce/internal/semester"
	"github.com/sahil-d-patel/AggieAce/internal/telemetry"
)

const maxUploadBytes = 32 << 20

// DefaultTimezone is used when a request does not name one.
const DefaultTimezone = "America/Chicago"

type Server struct {
	conv *convert.Converter
}

func New(conv *convert.Converter) *Server {
	return &Server{conv: conv}
}

// Handler builds the HTTP routing for the serve mode.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(
		httpx.Logger(),
		httpx.Recovery(),
	)

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", telemetry.GetMetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/v1/convert", s.convert).Methods(http.MethodPost)

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = fmt.Fprint(w, "ok")
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("syllabus")
	if err != nil {
		http.Error(w, "missing syllabus file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	opts := convert.Options{
		ClassName: r.FormValue("class_name"),
		Section:   r.FormValue("section"),
		Start:     r.FormValue("semester_start"),
		End:       r.FormValue("semester_end"),
		Timezone:  r.FormValue("timezone"),
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}
	if opts.ClassName == "" || opts.Section == "" {
		http.Error(w, "class_name and section are required", http.StatusBadRequest)
		return
	}

	// The extraction collaborator works from a file path, so stage the
	// upload in a temp file for the duration of the request.
	tmp, err := os.CreateTemp("", "syllabus-*.pdf")
	if err != nil {
		http.Error(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		http.Error(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	opts.PDFPath = tmp.Name()

	text, err := s.conv.Run(r.Context(), opts)
	if err != nil {
		slog.ErrorContext(r.Context(), "Conversion failed", "class", opts.Title(), "error", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename(opts)))
	_, _ = io.WriteString(w, text)
}

// statusFor maps conversion failures to response codes: malformed caller
// input is a 400, everything else (unreadable syllabus, empty extraction,
// validation) is a 422.
func statusFor(err error) int {
	var fe *semester.FormatError
	if errors.As(err, &fe) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func filename(opts convert.Options) string {
	return strings.ReplaceAll(opts.ClassName, " ", "") + "_" + opts.Section + ".ics"
}
