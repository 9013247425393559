package feedback

import (
	"regexp"
	"strings"
	"unicode"
)

// Mode выбирает набор ключевых слов для фильтрации предложений.
type Mode string

const (
	Strength    Mode = "strength"
	Improvement Mode = "improvement"
)

// MaxBullets caps how many sentences Extract returns.
const MaxBullets = 5

var keywords = map[Mode]*regexp.Regexp{
	Strength:    regexp.MustCompile(`(?i)strong|good|excellent|solid|understanding|experience|skill`),
	Improvement: regexp.MustCompile(`(?i)lack|struggle|improve|gap|weak|better|depth`),
}

// ParseMode accepts the mode names used by forms and the JSON API.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength", "strengths":
		return Strength, true
	case "improvement", "improvements", "improve":
		return Improvement, true
	}
	return "", false
}

// Extract returns up to MaxBullets sentences of text that mention a keyword of mode,
// in their original order. Unknown modes and empty text yield nil.
func Extract(text string, mode Mode) []string {
	re, ok := keywords[mode]
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, s := range Sentences(text) {
		if re.MatchString(s) {
			out = append(out, s)
			if len(out) == MaxBullets {
				break
			}
		}
	}
	return out
}

// Sentences splits text after '.', '!' or '?' when whitespace follows.
// Pieces are trimmed; empty pieces are dropped.
func Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		out = appendTrimmed(out, string(runes[start:i+1]))
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = appendTrimmed(out, string(runes[start:]))
	}
	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}
