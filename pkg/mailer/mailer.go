package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// Mailer delivers transactional email through the Resend HTTP API.
type Mailer struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

func New(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWithBaseURL is used by tests to point the mailer at a stub server.
func NewWithBaseURL(apiKey, from, baseURL string) *Mailer {
	m := New(apiKey, from)
	m.baseURL = baseURL
	return m
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) Send(to, subject, html string) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
