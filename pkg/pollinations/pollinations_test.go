package pollinations_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-orchestrator/pkg/pollinations"
)

func TestGenerate(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client, err := pollinations.New(pollinations.Config{BaseURL: ts.URL, Width: 512, Height: 256})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	image, err := client.Generate(context.Background(), "кот в шляпе")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Проверка доступности делается HEAD-запросом
	if gotMethod != http.MethodHead {
		t.Errorf("expected HEAD probe, got %s", gotMethod)
	}
	if gotPath != "/кот в шляпе" {
		t.Errorf("unexpected prompt path: %q", gotPath)
	}
	if got := gotQuery["width"]; len(got) != 1 || got[0] != "512" {
		t.Errorf("unexpected width param: %v", got)
	}
	if got := gotQuery["height"]; len(got) != 1 || got[0] != "256" {
		t.Errorf("unexpected height param: %v", got)
	}

	if image.Prompt != "кот в шляпе" {
		t.Errorf("unexpected prompt: %q", image.Prompt)
	}
	if !strings.HasPrefix(image.URL, ts.URL+"/") {
		t.Errorf("image URL does not point at the service: %q", image.URL)
	}
}

func TestGenerate_ServiceDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client, _ := pollinations.New(pollinations.Config{BaseURL: ts.URL})

	if _, err := client.Generate(context.Background(), "пейзаж"); err == nil {
		t.Error("expected error for 502 response")
	}
}
