package router

import (
	"context"
	"strings"
)

// Classify determines user intent from message.
// Precedence: image triggers first, then search categories in table order,
// else conversational. When both image and search keywords match, image
// wins since it is the more deliberate request.
func (r *KeywordRouter) Classify(ctx context.Context, message string, conversationHistory []string) Decision {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Decision{Intent: IntentConversational, EmptyInput: true}
	}

	lower := strings.ToLower(trimmed)

	if matchesAny(lower, imageTriggers) {
		prompt := extractImagePrompt(trimmed)
		r.l.Infof(ctx, "%s: Classified as %s (prompt: %q)", LogPrefixClassify, IntentImageGeneration, prompt)
		return Decision{Intent: IntentImageGeneration, Prompt: prompt}
	}

	for _, entry := range categoryTable {
		if matchesAny(lower, entry.keywords) {
			r.l.Infof(ctx, "%s: Classified as %s (category: %s)", LogPrefixClassify, IntentSearchAugmented, entry.category)
			return Decision{Intent: IntentSearchAugmented, Query: trimmed, Category: entry.category}
		}
	}

	r.l.Debugf(ctx, "%s: Classified as %s", LogPrefixClassify, IntentConversational)
	return Decision{Intent: IntentConversational}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractImagePrompt strips generation commands from the utterance and
// returns what remains as the image description
func extractImagePrompt(message string) string {
	prompt := message
	for _, command := range imageCommands {
		for {
			idx := indexFold(prompt, command)
			if idx < 0 {
				break
			}
			prompt = prompt[:idx] + prompt[idx+len(command):]
		}
	}

	prompt = strings.Trim(prompt, " ,:.-")
	prompt = strings.Join(strings.Fields(prompt), " ")

	if prompt == "" {
		return DefaultImagePrompt
	}
	return prompt
}

// indexFold is a case-insensitive strings.Index that works for Cyrillic
// input too
func indexFold(s, substr string) int {
	lower := strings.ToLower(s)
	sub := strings.ToLower(substr)
	idx := strings.Index(lower, sub)
	if idx < 0 {
		return -1
	}
	return idx
}
