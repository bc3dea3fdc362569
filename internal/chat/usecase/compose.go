package usecase

import (
	"fmt"
	"strings"

	"chat-orchestrator/internal/chat"
	"chat-orchestrator/pkg/provider"
)

// Composition is total and deterministic: identical inputs always yield
// byte-identical envelopes.

func composeText(result *provider.Result) chat.ResponseEnvelope {
	return chat.ResponseEnvelope{
		Kind:     chat.EnvelopeText,
		Text:     result.Text,
		Provider: result.Provider,
	}
}

func composeImage(result *provider.Result) chat.ResponseEnvelope {
	return chat.ResponseEnvelope{
		Kind:     chat.EnvelopeImage,
		Text:     fmt.Sprintf(MessageImageCreated, result.ImagePrompt),
		ImageURL: result.ImageURL,
		Prompt:   result.ImagePrompt,
		Provider: result.Provider,
	}
}

// composeSearch merges the conversational answer with the retrieved
// snippets. Citation markers are interleaved into the answer at sentence
// boundaries rather than appended after it, so the reader sees each
// source next to the claim it backs.
func composeSearch(answer, search *provider.Result) chat.ResponseEnvelope {
	citations := make([]chat.Citation, 0, len(search.Snippets))
	for i, s := range search.Snippets {
		citations = append(citations, chat.Citation{
			Index:    i + 1,
			Provider: search.Provider,
			URL:      s.URL,
			Title:    s.Title,
		})
	}

	return chat.ResponseEnvelope{
		Kind:      chat.EnvelopeSearchAugmentedText,
		Text:      interleaveCitations(answer.Text, len(citations)),
		Provider:  answer.Provider,
		Citations: citations,
	}
}

// interleaveCitations places the markers [1]..[n] into the text, one per
// sentence. Markers left over after the last sentence attach to it.
func interleaveCitations(text string, n int) string {
	if n == 0 || text == "" {
		return text
	}

	sentences := splitSentences(text)

	var b strings.Builder
	next := 1
	for i, sentence := range sentences {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sentence)
		if next <= n {
			b.WriteString(fmt.Sprintf(" [%d]", next))
			next++
		}
		// remaining markers pile onto the final sentence
		if i == len(sentences)-1 {
			for ; next <= n; next++ {
				b.WriteString(fmt.Sprintf(" [%d]", next))
			}
		}
	}
	return b.String()
}

// splitSentences cuts text after ".", "!" or "?" followed by whitespace.
// The delimiter stays with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\n' {
			continue
		}
		sentences = append(sentences, strings.TrimRight(string(runes[start:i+1]), " "))
		for i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\n') {
			i++
		}
		start = i + 1
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	if len(sentences) == 0 {
		sentences = []string{text}
	}
	return sentences
}

// searchContext renders a search result into the block of text handed to
// the conversational provider
func searchContext(result *provider.Result) string {
	var b strings.Builder

	if result.Text != "" {
		b.WriteString(result.Text)
	}

	for _, s := range result.Snippets {
		if s.Text == "" || s.Text == result.Text {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(s.Title)
			b.WriteString(": ")
		}
		b.WriteString(s.Text)
		if s.URL != "" {
			b.WriteString(" (")
			b.WriteString(s.URL)
			b.WriteString(")")
		}
	}

	return b.String()
}
