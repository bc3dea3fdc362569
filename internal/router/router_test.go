package router

import (
	"context"
	"testing"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestClassify_ImageGeneration(t *testing.T) {
	r := New(noopLogger{})

	tests := []struct {
		name       string
		message    string
		wantPrompt string
	}{
		{"plain command", "нарисуй кота в шляпе", "кота в шляпе"},
		{"uppercase command", "Нарисуй закат над морем", "закат над морем"},
		{"slash command", "/draw neon city", "neon city"},
		{"compound command", "создай изображение старого замка", "старого замка"},
		{"bare command falls back to default", "нарисуй", DefaultImagePrompt},
		{"visualize", "визуализируй дракона", "дракона"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Classify(context.Background(), tt.message, nil)
			if d.Intent != IntentImageGeneration {
				t.Fatalf("Expected IMAGE_GENERATION, got %s", d.Intent)
			}
			if d.Prompt != tt.wantPrompt {
				t.Errorf("Expected prompt %q, got %q", tt.wantPrompt, d.Prompt)
			}
		})
	}
}

func TestClassify_SearchAugmented(t *testing.T) {
	r := New(noopLogger{})

	tests := []struct {
		name         string
		message      string
		wantCategory Category
	}{
		{"weather", "какая погода в Москве завтра", CategoryWeather},
		{"temporal marker wins over financial", "какой сейчас курс доллара", CategoryTemporal},
		{"financial without temporal marker", "курс доллара к рублю", CategoryFinancial},
		{"news", "последние новости спорта", CategoryNews},
		{"encyclopedic", "что такое квантовый компьютер", CategoryGeneric},
		{"sports", "результаты матча и счет", CategorySports},
		{"location", "время работы музея", CategoryLocation},
		{"tech", "когда выйдет последняя версия ядра", CategoryTech},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Classify(context.Background(), tt.message, nil)
			if d.Intent != IntentSearchAugmented {
				t.Fatalf("Expected SEARCH_AUGMENTED, got %s", d.Intent)
			}
			if d.Category != tt.wantCategory {
				t.Errorf("Expected category %s, got %s", tt.wantCategory, d.Category)
			}
			if d.Query != tt.message {
				t.Errorf("Expected query to carry the utterance, got %q", d.Query)
			}
		})
	}
}

func TestClassify_ImageWinsOverSearch(t *testing.T) {
	r := New(noopLogger{})

	// "погода" alone would be a weather search, but the draw command makes
	// it a deliberate image request
	d := r.Classify(context.Background(), "нарисуй какая сегодня погода", nil)
	if d.Intent != IntentImageGeneration {
		t.Fatalf("Expected IMAGE_GENERATION on a combined match, got %s", d.Intent)
	}
}

func TestClassify_Conversational(t *testing.T) {
	r := New(noopLogger{})

	for _, message := range []string{
		"привет, как дела?",
		"расскажи анекдот",
		"помоги придумать имя для собаки",
	} {
		d := r.Classify(context.Background(), message, nil)
		if d.Intent != IntentConversational {
			t.Errorf("Expected CONVERSATIONAL for %q, got %s", message, d.Intent)
		}
		if d.EmptyInput {
			t.Errorf("Expected EmptyInput unset for %q", message)
		}
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	r := New(noopLogger{})

	for _, message := range []string{"", "   ", "\n\t"} {
		d := r.Classify(context.Background(), message, nil)
		if d.Intent != IntentConversational {
			t.Errorf("Expected CONVERSATIONAL for empty input, got %s", d.Intent)
		}
		if !d.EmptyInput {
			t.Error("Expected EmptyInput flag for empty input")
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	r := New(noopLogger{})

	first := r.Classify(context.Background(), "покажи новости про биткоин", nil)
	for i := 0; i < 10; i++ {
		next := r.Classify(context.Background(), "покажи новости про биткоин", nil)
		if next != first {
			t.Fatalf("Expected identical decisions, got %+v vs %+v", first, next)
		}
	}
}
