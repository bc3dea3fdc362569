package duckduckgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-orchestrator/pkg/duckduckgo"
)

func TestSearch(t *testing.T) {
	var gotQuery, gotFormat string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotFormat = r.URL.Query().Get("format")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"AbstractText": "Золото: драгоценный металл жёлтого цвета.",
			"AbstractURL": "https://ru.wikipedia.org/wiki/Золото",
			"Definition": "",
			"Answer": "",
			"RelatedTopics": [
				{"Text": "Золотой стандарт"},
				{"Text": ""},
				{"Text": "Проба золота"},
				{"Text": "Добыча золота"},
				{"Text": "Лишняя тема за пределами лимита"}
			]
		}`))
	}))
	defer ts.Close()

	client, err := duckduckgo.New(duckduckgo.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	answer, err := client.Search(context.Background(), "что такое золото")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "что такое золото" {
		t.Errorf("unexpected q param: %q", gotQuery)
	}
	if gotFormat != "json" {
		t.Errorf("unexpected format param: %q", gotFormat)
	}

	if answer.Abstract != "Золото: драгоценный металл жёлтого цвета." {
		t.Errorf("unexpected abstract: %q", answer.Abstract)
	}
	if answer.SourceURL != "https://ru.wikipedia.org/wiki/Золото" {
		t.Errorf("unexpected source URL: %q", answer.SourceURL)
	}

	// Пустые темы пропускаются, длина ограничена MaxRelatedTopics
	if len(answer.Related) != duckduckgo.MaxRelatedTopics {
		t.Fatalf("expected %d related topics, got %d", duckduckgo.MaxRelatedTopics, len(answer.Related))
	}
	if answer.Related[0] != "Золотой стандарт" || answer.Related[1] != "Проба золота" {
		t.Errorf("unexpected related topics: %v", answer.Related)
	}
}

func TestSearch_NoInstantAnswer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText": "", "AbstractURL": "", "Definition": "", "Answer": "", "RelatedTopics": []}`))
	}))
	defer ts.Close()

	client, _ := duckduckgo.New(duckduckgo.Config{BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "очень редкий запрос"); err == nil {
		t.Error("expected error when the API has no instant answer")
	}
}

func TestSearch_QuickAnswerOnly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText": "", "Answer": "42", "RelatedTopics": []}`))
	}))
	defer ts.Close()

	client, _ := duckduckgo.New(duckduckgo.Config{BaseURL: ts.URL})

	answer, err := client.Search(context.Background(), "ответ на главный вопрос")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.QuickText != "42" {
		t.Errorf("unexpected quick text: %q", answer.QuickText)
	}
}

func TestSearch_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, _ := duckduckgo.New(duckduckgo.Config{BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "что такое золото"); err == nil {
		t.Error("expected error for 500 response")
	}
}
