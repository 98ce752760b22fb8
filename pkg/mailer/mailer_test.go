package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	m := NewWithBaseURL("test-api-key", "Inkwell <hello@inkwell.example.com>", server.URL)

	err := m.Send("reader@example.com", "Welcome!", "<p>Hi</p>")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "Inkwell <hello@inkwell.example.com>", gotPayload["from"])
	assert.Equal(t, "Welcome!", gotPayload["subject"])
	assert.Equal(t, []interface{}{"reader@example.com"}, gotPayload["to"])
}

func TestSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	m := NewWithBaseURL("test-api-key", "not-an-address", server.URL)

	err := m.Send("reader@example.com", "Welcome!", "<p>Hi</p>")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSend_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	m := NewWithBaseURL("test-api-key", "hello@inkwell.example.com", server.URL)

	err := m.Send("reader@example.com", "Welcome!", "<p>Hi</p>")

	assert.Error(t, err)
}
