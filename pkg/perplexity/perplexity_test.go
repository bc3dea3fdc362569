package perplexity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-orchestrator/pkg/perplexity"
)

func TestSearch(t *testing.T) {
	var gotAuth string
	var gotReq map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Курс доллара сегодня составляет 92 рубля."}}],
			"citations": ["https://cbr.ru", "https://example.com/rates"]
		}`))
	}))
	defer ts.Close()

	client, err := perplexity.New(perplexity.Config{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	answer, err := client.Search(context.Background(), "какой курс доллара")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotReq["model"] != perplexity.DefaultModel {
		t.Errorf("unexpected model: %v", gotReq["model"])
	}
	if gotReq["search_recency_filter"] != "month" {
		t.Errorf("unexpected recency filter: %v", gotReq["search_recency_filter"])
	}

	messages := gotReq["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(messages))
	}
	user := messages[1].(map[string]any)
	if user["role"] != "user" || user["content"] != "какой курс доллара" {
		t.Errorf("unexpected user message: %v", user)
	}

	if answer.Content != "Курс доллара сегодня составляет 92 рубля." {
		t.Errorf("unexpected content: %q", answer.Content)
	}
	if len(answer.Citations) != 2 || answer.Citations[0] != "https://cbr.ru" {
		t.Errorf("unexpected citations: %v", answer.Citations)
	}
}

func TestSearch_CapsCitations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Ответ."}}],
			"citations": ["https://a", "https://b", "https://c", "https://d", "https://e"]
		}`))
	}))
	defer ts.Close()

	client, _ := perplexity.New(perplexity.Config{APIKey: "k", BaseURL: ts.URL})

	answer, err := client.Search(context.Background(), "вопрос")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answer.Citations) != 3 {
		t.Errorf("expected 3 citations, got %d", len(answer.Citations))
	}
}

func TestSearch_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": [], "citations": []}`))
	}))
	defer ts.Close()

	client, _ := perplexity.New(perplexity.Config{APIKey: "k", BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "вопрос"); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestSearch_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer ts.Close()

	client, _ := perplexity.New(perplexity.Config{APIKey: "bad", BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "вопрос"); err == nil {
		t.Error("expected error for 401 response")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := perplexity.New(perplexity.Config{}); err == nil {
		t.Error("expected error for missing APIKey")
	}
}
