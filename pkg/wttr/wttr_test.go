package wttr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-orchestrator/pkg/wttr"
)

const conditionsFixture = `{
	"current_condition": [{
		"temp_C": "-5",
		"FeelsLikeC": "-9",
		"humidity": "81",
		"windspeedKmph": "14",
		"weatherDesc": [{"value": "Light snow"}]
	}]
}`

func TestCurrent(t *testing.T) {
	var gotPath, gotFormat string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormat = r.URL.Query().Get("format")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(conditionsFixture))
	}))
	defer ts.Close()

	client, err := wttr.New(wttr.Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	conditions, err := client.Current(context.Background(), wttr.City{Query: "Saint Petersburg", NameRu: "Санкт-Петербурге"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/Saint Petersburg" {
		t.Errorf("unexpected request path: %q", gotPath)
	}
	if gotFormat != "j1" {
		t.Errorf("expected j1 format, got %q", gotFormat)
	}

	if conditions.City != "Санкт-Петербурге" {
		t.Errorf("unexpected city name: %q", conditions.City)
	}
	if conditions.TempC != "-5" || conditions.FeelsLikeC != "-9" {
		t.Errorf("unexpected temperatures: %q / %q", conditions.TempC, conditions.FeelsLikeC)
	}
	if conditions.Description != "Light snow" {
		t.Errorf("unexpected description: %q", conditions.Description)
	}
	if conditions.Humidity != "81" || conditions.WindKmph != "14" {
		t.Errorf("unexpected humidity/wind: %q / %q", conditions.Humidity, conditions.WindKmph)
	}
}

func TestCurrent_EmptyConditions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_condition": []}`))
	}))
	defer ts.Close()

	client, _ := wttr.New(wttr.Config{BaseURL: ts.URL})

	if _, err := client.Current(context.Background(), wttr.DefaultCity); err == nil {
		t.Error("expected error for empty current_condition")
	}
}

func TestCurrent_MissingDescription(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_condition": [{"temp_C": "3", "FeelsLikeC": "0", "humidity": "70", "windspeedKmph": "5", "weatherDesc": []}]}`))
	}))
	defer ts.Close()

	client, _ := wttr.New(wttr.Config{BaseURL: ts.URL})

	conditions, err := client.Current(context.Background(), wttr.DefaultCity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conditions.Description != "" {
		t.Errorf("expected empty description, got %q", conditions.Description)
	}
}

func TestCurrent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client, _ := wttr.New(wttr.Config{BaseURL: ts.URL})

	if _, err := client.Current(context.Background(), wttr.DefaultCity); err == nil {
		t.Error("expected error for 503 response")
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"nominative", "какая погода в городе Казань", "Kazan"},
		{"declension", "погода в Казани сегодня", "Kazan"},
		{"longest alias wins", "прогноз погоды в Томске", "Tomsk"},
		{"short alias", "погода спб", "Saint Petersburg"},
		{"unknown city falls back", "какая сегодня погода", "Moscow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := wttr.ExtractCity(tt.query)
			if city.Query != tt.want {
				t.Errorf("ExtractCity(%q) = %q, want %q", tt.query, city.Query, tt.want)
			}
		})
	}
}
