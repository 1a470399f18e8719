// Package contact forwards contact-form submissions to the spreadsheet-backed
// form processor and submits forms to that forwarder.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// DefaultForwardURL is the form processor submissions go to.
const DefaultForwardURL = "https://script.google.com/macros/s/AKfycbxCaEQWft1iItNEauWhgqTTCOCRJ7ZdtY9j-ETE0tt2gESRjzFxVDGTqMzryiQiimus/exec"

const maxBodyBytes = 1 << 20

//go:generate go tool mockgen -destination=./mocks/doer_mock.go -package=mocks . Doer

// Doer sends one HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Forwarder is the contact endpoint: it accepts a JSON POST, forwards the
// body once to the form processor and relays the processor's JSON answer.
type Forwarder struct {
	url    string
	client Doer
	logger *slog.Logger
}

func NewForwarder(url string, client Doer, logger *slog.Logger) *Forwarder {
	if url == "" {
		url = DefaultForwardURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Forwarder{url: url, client: client, logger: logger}
}

// Envelope is the error body of the endpoint. Successful responses are the
// processor's own JSON.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (f *Forwarder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		f.logger.DebugContext(ctx, "contact: method not allowed", "method", r.Method)
		writeJSON(w, http.StatusMethodNotAllowed, Envelope{Success: false, Error: "Method Not Allowed"})
		return
	}

	id := uuid.NewString()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		f.fail(ctx, w, id, fmt.Errorf("read request: %w", err))
		return
	}

	reply, err := f.Forward(ctx, body)
	if err != nil {
		f.fail(ctx, w, id, err)
		return
	}
	f.logger.InfoContext(ctx, "contact forwarded", "request_id", id, "bytes", len(body))
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(reply)
}

// Forward posts body to the processor and returns its JSON response. An
// empty body is sent as {}. It never retries.
func (f *Forwarder) Forward(ctx context.Context, body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build forward request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read forward response: %w", err)
	}
	if !json.Valid(reply) {
		return nil, fmt.Errorf("forward response is not JSON (status %d)", resp.StatusCode)
	}
	return reply, nil
}

func (f *Forwarder) fail(ctx context.Context, w http.ResponseWriter, id string, err error) {
	f.logger.ErrorContext(ctx, "contact forward failed", "request_id", id, "err", err)
	writeJSON(w, http.StatusInternalServerError, Envelope{Success: false, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
