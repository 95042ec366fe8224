package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vincentqiao/medflow/internal/models"
)

func generateContentResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func newTestClient(serverURL string) *Client {
	return &Client{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    serverURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetch_ParsesAdvice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("API key not passed in query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(generateContentResponse(`{"message": "Nice work, keep it up!", "type": "encouragement"}`)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	advice := client.Fetch(context.Background(), "supplement: assorted vitamins", nil)

	if advice.Message != "Nice work, keep it up!" {
		t.Errorf("message = %q", advice.Message)
	}
	if advice.Type != models.AdviceEncouragement {
		t.Errorf("type = %q", advice.Type)
	}
}

func TestFetch_StripsMarkdownFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := "```json\n{\"message\": \"Stay hydrated today.\", \"type\": \"info\"}\n```"
		w.Write([]byte(generateContentResponse(text)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	advice := client.Fetch(context.Background(), "daily hello", nil)

	if advice.Message != "Stay hydrated today." {
		t.Errorf("message = %q", advice.Message)
	}
	if advice.Type != models.AdviceInfo {
		t.Errorf("type = %q", advice.Type)
	}
}

func TestFetch_MissingKeyUsesFallback(t *testing.T) {
	client := NewClient("")

	advice := client.Fetch(context.Background(), "daily hello", nil)

	if advice != Fallback() {
		t.Errorf("expected fallback advice, got %+v", advice)
	}
}

func TestFetch_ServerErrorUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	advice := client.Fetch(context.Background(), "daily hello", nil)

	if advice != Fallback() {
		t.Errorf("expected fallback advice, got %+v", advice)
	}
}

func TestFetch_MalformedAdviceUsesFallback(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "take your meds!"},
		{"empty message", `{"message": "", "type": "info"}`},
		{"unknown type", `{"message": "hi", "type": "banter"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(generateContentResponse(tc.text)))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			advice := client.Fetch(context.Background(), "daily hello", nil)

			if advice != Fallback() {
				t.Errorf("expected fallback advice, got %+v", advice)
			}
		})
	}
}

func TestFetch_EmptyCandidatesUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	advice := client.Fetch(context.Background(), "daily hello", nil)

	if advice != Fallback() {
		t.Errorf("expected fallback advice, got %+v", advice)
	}
}

func TestFetch_SendsRecentHistoryOnly(t *testing.T) {
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Write([]byte(generateContentResponse(`{"message": "ok", "type": "info"}`)))
	}))
	defer server.Close()

	base := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	entries := make([]models.DoseEntry, 10)
	for i := range entries {
		entries[i] = models.DoseEntry{
			ID:           "e",
			Timestamp:    base.Add(time.Duration(-i) * time.Hour).UnixMilli(),
			MedicineName: "assorted vitamins",
			MedicineType: models.MedTypeSupplement,
		}
	}

	client := newTestClient(server.URL)
	client.Fetch(context.Background(), "supplement: assorted vitamins", entries)

	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	if prompt == "" {
		t.Fatal("prompt is empty")
	}
	if got := strings.Count(prompt, "2026-"); got != 5 {
		t.Errorf("prompt should include the 5 most recent check-ins, found %d timestamps", got)
	}
}

func TestFallback(t *testing.T) {
	advice := Fallback()

	if advice.Message == "" {
		t.Error("fallback message must not be empty")
	}
	if advice.Type != models.AdviceEncouragement {
		t.Errorf("fallback type = %q, want encouragement", advice.Type)
	}
}
