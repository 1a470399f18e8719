package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotSent is wrapped by every failed submission.
var ErrNotSent = errors.New("contact message not sent")

// ErrInvalidMessage is returned before sending a form with empty fields.
var ErrInvalidMessage = errors.New("invalid contact message")

// Message is the contact form.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMessage)
	case !strings.Contains(m.Email, "@"):
		return fmt.Errorf("%w: email %q", ErrInvalidMessage, m.Email)
	case strings.TrimSpace(m.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidMessage)
	}
	return nil
}

// Status is the outcome shown to the visitor.
type Status int

const (
	StatusFailed Status = iota
	StatusSent
)

func (s Status) String() string {
	if s == StatusSent {
		return "sent"
	}
	return "failed"
}

// Notice is the text shown after a submission. A failure never reads as sent.
func Notice(s Status) string {
	if s == StatusSent {
		return "Message sent successfully! We'll get back to you within 24 hours."
	}
	return "Your message could not be sent. Please try again or email us directly."
}

// Client submits contact forms to the forwarder endpoint.
type Client struct {
	endpoint string
	http     Doer
}

func NewClient(endpoint string, doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: doer}
}

// Submit posts msg and reports StatusSent only for a 200 answer whose body is
// JSON and does not carry success:false.
func (c *Client) Submit(ctx context.Context, msg Message) (Status, error) {
	if err := msg.Validate(); err != nil {
		return StatusFailed, err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return StatusFailed, fmt.Errorf("%w: %v", ErrNotSent, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return StatusFailed, fmt.Errorf("%w: %v", ErrNotSent, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return StatusFailed, fmt.Errorf("%w: %v", ErrNotSent, err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return StatusFailed, fmt.Errorf("%w: read response: %v", ErrNotSent, err)
	}

	if !json.Valid(reply) {
		return StatusFailed, fmt.Errorf("%w: status %d, response is not JSON", ErrNotSent, resp.StatusCode)
	}
	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	// ответ обработчика форм может быть любым JSON, не только объектом
	_ = json.Unmarshal(reply, &env)

	if resp.StatusCode != http.StatusOK {
		return StatusFailed, fmt.Errorf("%w: status %d: %s", ErrNotSent, resp.StatusCode, env.Error)
	}
	if env.Success != nil && !*env.Success {
		return StatusFailed, fmt.Errorf("%w: %s", ErrNotSent, env.Error)
	}
	return StatusSent, nil
}
