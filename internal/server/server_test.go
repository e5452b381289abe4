package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sahil-d-patel/AggieAce/internal/convert"
	"github.com/sahil-d-patel/AggieAce/internal/extract"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, req extract.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

const sampleExtraction = `Lecture | Monday-Wednesday-Friday | 11:30-12:30 | ROOM101
Final Exam | 12/12/2025 | all-day | TBA`

func newRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if withFile {
		fw, err := w.CreateFormFile("syllabus", "syllabus.pdf")
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := fw.Write([]byte("%PDF-1.4 test")); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/convert", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"class_name":     "CSCE 311",
		"section":        "546",
		"semester_start": "08/25/2025",
		"semester_end":   "12/16/2025",
		"timezone":       "America/Chicago",
	}
}

func TestServerConvert(t *testing.T) {
	t.Run("returns the rendered calendar", func(t *testing.T) {
		ext := new(MockExtractor)
		ext.On("Extract", mock.Anything, mock.Anything).Return(sampleExtraction, nil)
		handler := New(convert.New(ext)).Handler()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, validFields(), true))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
			t.Errorf("unexpected content type %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "CSCE311_546.ics") {
			t.Errorf("unexpected content disposition %q", cd)
		}

		body, _ := io.ReadAll(rec.Body)
		if got := strings.Count(string(body), "BEGIN:VEVENT"); got != 2 {
			t.Errorf("expected 2 events in response, got %d", got)
		}
	})

	t.Run("requires the syllabus file", func(t *testing.T) {
		ext := new(MockExtractor)
		handler := New(convert.New(ext)).Handler()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, validFields(), false))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	})

	t.Run("requires class name and section", func(t *testing.T) {
		fields := validFields()
		delete(fields, "class_name")

		handler := New(convert.New(new(MockExtractor))).Handler()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, fields, true))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed semester dates", func(t *testing.T) {
		fields := validFields()
		fields["semester_start"] = "Fall 2025"

		handler := New(convert.New(new(MockExtractor))).Handler()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, fields, true))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("reports unprocessable extractions", func(t *testing.T) {
		ext := new(MockExtractor)
		ext.On("Extract", mock.Anything, mock.Anything).Return("nothing useful here", nil)
		handler := New(convert.New(ext)).Handler()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, validFields(), true))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("reports upstream extraction failures", func(t *testing.T) {
		ext := new(MockExtractor)
		ext.On("Extract", mock.Anything, mock.Anything).Return("", errors.New("upstream unavailable"))
		handler := New(convert.New(ext)).Handler()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, validFields(), true))

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("defaults the timezone", func(t *testing.T) {
		ext := new(MockExtractor)
		ext.On("Extract", mock.Anything, mock.MatchedBy(func(req extract.Request) bool {
			return req.Timezone == DefaultTimezone
		})).Return(sampleExtraction, nil)
		handler := New(convert.New(ext)).Handler()

		fields := validFields()
		delete(fields, "timezone")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, fields, true))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		ext.AssertExpectations(t)
	})
}

func TestServerHealth(t *testing.T) {
	handler := New(convert.New(new(MockExtractor))).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
