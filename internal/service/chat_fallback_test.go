package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackResponseTopics(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"closure question", "How do closures work?", "Closures in JavaScript"},
		{"react question", "explain react components", "React Hooks"},
		{"hook question", "what is a Hook?", "React Hooks"},
		{"typescript question", "TypeScript interfaces please", "TypeScript Basics"},
		{"unknown topic", "tell me about cooking", "What would you like to learn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackResponse(tt.message)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestFallbackResponseCaseInsensitive(t *testing.T) {
	upper := fallbackResponse("CLOSURE")
	lower := fallbackResponse("closure")
	assert.Equal(t, lower, upper)
}

func TestChatTitleTruncation(t *testing.T) {
	short := "How do closures work?"
	assert.Equal(t, short, chatTitle(short))

	long := strings.Repeat("a", 80)
	got := chatTitle(long)
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)

	// multi-byte input must not be split mid-rune
	wide := strings.Repeat("ñ", 60)
	assert.Equal(t, strings.Repeat("ñ", 50)+"...", chatTitle(wide))
}
