package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func replyFor(t *testing.T, keyword string) string {
	t.Helper()
	for _, r := range Rules {
		if r.Keyword == keyword {
			return r.Reply
		}
	}
	t.Fatalf("no rule for %q", keyword)
	return ""
}

func TestRespond(t *testing.T) {
	tests := []struct {
		message string
		keyword string
	}{
		{"I want a weight loss plan", "weight loss"},
		{"How do I manage WEIGHT GAIN?", "weight gain"},
		{"what is my bmi", "bmi"},
		{"Best workout for exercise beginners?", "workout"},
		{"Is yoga a good diet companion?", "yoga"},
		{"how many calories in an apple", "calories"},
		{"exercise tips", "exercise"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, replyFor(t, tt.keyword), Respond(tt.message))
		})
	}
}

func TestRespondFallback(t *testing.T) {
	assert.Equal(t, Fallback, Respond(""))
	assert.Equal(t, Fallback, Respond("tell me about my weight"), "bare 'weight' is not a keyword")
}

func TestMatchFirstRuleWins(t *testing.T) {
	rules := []Rule{{"weight", "generic"}, {"weight loss", "specific"}}
	assert.Equal(t, "generic", Match(rules, "weight loss"))

	rules[0], rules[1] = rules[1], rules[0]
	assert.Equal(t, "specific", Match(rules, "weight loss"))
}
