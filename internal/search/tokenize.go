package search

import (
	"regexp"
	"strings"
)

var reAlphanumeric = regexp.MustCompile(`[a-z0-9_.-]+`)

func isHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// tokenize splits text into lowercase index terms: words and version-like
// strings such as "go-redis" or "1.18", plus CJK unigrams and bigrams.
// Terms are unique and kept in first-seen order.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var tokens []string
	add := func(token string) {
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, token := range reAlphanumeric.FindAllString(lower, -1) {
		token = strings.Trim(token, ".")
		if token == "" {
			continue
		}
		add(token)
		if strings.ContainsAny(token, "-_") {
			for _, part := range strings.FieldsFunc(token, func(r rune) bool { return r == '-' || r == '_' }) {
				add(part)
			}
		}
	}

	runes := []rune(lower)
	for _, r := range runes {
		if isHan(r) {
			add(string(r))
		}
	}
	for i := 0; i+1 < len(runes); i++ {
		if isHan(runes[i]) && isHan(runes[i+1]) {
			add(string(runes[i : i+2]))
		}
	}

	return tokens
}

// weightedTokens scores title terms above content terms. A term found in
// both keeps the title weight.
func weightedTokens(title, content string) map[string]float64 {
	weights := make(map[string]float64)
	for _, token := range tokenize(title) {
		weights[token] = WeightTitle
	}
	for _, token := range tokenize(content) {
		if _, ok := weights[token]; !ok {
			weights[token] = WeightContent
		}
	}
	return weights
}
