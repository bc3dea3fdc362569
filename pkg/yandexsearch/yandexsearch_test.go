package yandexsearch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-orchestrator/pkg/yandexsearch"
)

const searchFixture = `<?xml version="1.0" encoding="utf-8"?>
<yandexsearch version="1.0">
<response>
<results>
<grouping>
<group>
<doc>
<url>https://example.com/rates</url>
<title>Курс <hlword>доллара</hlword> сегодня</title>
<passages>
<passage>Официальный курс <hlword>доллара</hlword> &amp; евро на сегодня &lt;выше&gt; вчерашнего</passage>
<passage>Второй пассаж не должен попасть в сниппет</passage>
</passages>
</doc>
<doc>
<url>https://example.com/empty-title</url>
<title></title>
<passages><passage>Документ без заголовка пропускается</passage></passages>
</doc>
<doc>
<url>https://example.com/news</url>
<title>Новости валютного рынка</title>
<passages><passage>Рубль укрепился к основным валютам</passage></passages>
</doc>
</group>
</grouping>
</results>
</response>
</yandexsearch>`

func TestSearch(t *testing.T) {
	var gotQuery, gotKey, gotUser string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("key")
		gotUser = r.URL.Query().Get("user")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(searchFixture))
	}))
	defer ts.Close()

	client, err := yandexsearch.New(yandexsearch.Config{
		APIKey:  "test-key",
		User:    "test-user",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	results, err := client.Search(context.Background(), "курс доллара")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "курс доллара" {
		t.Errorf("unexpected query param: %q", gotQuery)
	}
	if gotKey != "test-key" || gotUser != "test-user" {
		t.Errorf("credentials not sent: key=%q user=%q", gotKey, gotUser)
	}

	// Документ с пустым заголовком пропускается
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Title != "Курс доллара сегодня" {
		t.Errorf("highlight tags not stripped from title: %q", first.Title)
	}
	if first.Snippet != `Официальный курс доллара & евро на сегодня <выше> вчерашнего` {
		t.Errorf("entities not unescaped in snippet: %q", first.Snippet)
	}
	if first.URL != "https://example.com/rates" {
		t.Errorf("unexpected URL: %q", first.URL)
	}

	if results[1].Title != "Новости валютного рынка" {
		t.Errorf("unexpected second result: %q", results[1].Title)
	}
}

func TestSearch_CapsResults(t *testing.T) {
	body := `<?xml version="1.0"?><yandexsearch><response><results><grouping><group>`
	for i := 0; i < 6; i++ {
		body += `<doc><url>https://example.com/x</url><title>Заголовок</title><passages><passage>Текст</passage></passages></doc>`
	}
	body += `</group></grouping></results></response></yandexsearch>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer ts.Close()

	client, _ := yandexsearch.New(yandexsearch.Config{APIKey: "k", BaseURL: ts.URL})

	results, err := client.Search(context.Background(), "что угодно")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != yandexsearch.MaxResults {
		t.Errorf("expected %d results, got %d", yandexsearch.MaxResults, len(results))
	}
}

func TestSearch_NoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><yandexsearch><response><results><grouping></grouping></results></response></yandexsearch>`))
	}))
	defer ts.Close()

	client, _ := yandexsearch.New(yandexsearch.Config{APIKey: "k", BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "пустой запрос"); err == nil {
		t.Error("expected error for empty result set")
	}
}

func TestSearch_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid key"))
	}))
	defer ts.Close()

	client, _ := yandexsearch.New(yandexsearch.Config{APIKey: "bad", BaseURL: ts.URL})

	if _, err := client.Search(context.Background(), "курс доллара"); err == nil {
		t.Error("expected error for 403 response")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := yandexsearch.New(yandexsearch.Config{}); err == nil {
		t.Error("expected error for missing APIKey")
	}
}
