package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/localxi/local-xi-backend/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var envelope googleResponseEnvelope
	if err := jsoniter.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	return envelope
}

func TestWriteSuccess_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, map[string]string{"hello": "world"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected apiVersion: %q", envelope.APIVersion)
	}
	if envelope.Error != nil {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["hello"] != "world" {
		t.Fatalf("unexpected data: %+v", envelope.Data)
	}
}

func TestWriteError_MapsSentinels(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantReason string
		wantCode   string
	}{
		{fmt.Errorf("%w: slots are required", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
		{fmt.Errorf("%w: no lineup for match 9", usecase.ErrNotFound), http.StatusNotFound, "notFound", "NOT_FOUND"},
		{errors.New("boom"), http.StatusInternalServerError, "internalError", "INTERNAL"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tc.err)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: unexpected status %d", tc.err, rec.Code)
		}

		envelope := decodeEnvelope(t, rec)
		if envelope.Error == nil {
			t.Fatalf("%v: missing error body", tc.err)
		}
		if envelope.Error.Code != tc.wantStatus {
			t.Fatalf("%v: unexpected error code %d", tc.err, envelope.Error.Code)
		}
		if envelope.Error.Status != tc.wantCode {
			t.Fatalf("%v: unexpected error status %q", tc.err, envelope.Error.Status)
		}
		if len(envelope.Error.Errors) != 1 || envelope.Error.Errors[0].Reason != tc.wantReason {
			t.Fatalf("%v: unexpected error items %+v", tc.err, envelope.Error.Errors)
		}
		if envelope.Error.Errors[0].Domain != "local-xi" {
			t.Fatalf("%v: unexpected error domain %q", tc.err, envelope.Error.Errors[0].Domain)
		}
	}
}

func TestWriteInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(context.Background(), rec)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Message != "internal server error" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}
