// Package similar implements the "find cheaper" matching engine: it turns
// free-text product titles into normalized token sets and searches the
// marketplace for cheaper functional equivalents of a reference item using
// staged relaxation of the acceptance gates.
package similar

import (
	"strings"
	"unicode"
)

// Normalizer reduces a token to its morphological normal form. The analyzer
// is optional equipment: the engine works without it, just with coarser
// token equality, so implementations must never fail.
type Normalizer interface {
	NormalForm(token string) string
}

// IdentityNormalizer is the default no-op Normalizer.
type IdentityNormalizer struct{}

func (IdentityNormalizer) NormalForm(token string) string { return token }

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stopWords = map[string]struct{}{
	"для": {}, "или": {}, "без": {}, "под": {}, "это": {}, "при": {},
	"как": {}, "что": {}, "она": {}, "они": {},
	"the": {}, "and": {}, "with": {},
}

// tokenSynonyms collapses domain variants (declined forms, transliterations)
// to one canonical token so that e.g. "часы" and "iwatch" compare equal.
var tokenSynonyms = map[string]string{
	"часы": "watch", "часов": "watch", "часами": "watch", "часам": "watch",
	"час": "watch", "смартчасы": "watch", "iwatch": "watch",
	"эпл": "apple", "апл": "apple",
	"айфон":  "iphone",
	"сяоми":  "xiaomi",
	"ксиоми": "xiaomi",
	"redmi":  "xiaomi",
	"галакси": "galaxy",
	"кабель": "cable", "провод": "cable", "шнур": "cable",
	"зарядка": "charge", "зарядки": "charge", "зарядное": "charge",
	"зарядные": "charge", "зарядный": "charge",
	"блок": "power", "питание": "power", "питания": "power",
	"адаптер":     "adapter",
	"аккумулятор": "battery",
	"станция":     "station",
	"яндекс":      "yandex",
	"charger":     "charge",
	"charging":    "charge",
	"remeshok":    "strap",
	"ремешок":     "strap",
}

// Tokenizer turns free text into normalized tokens. Safe for concurrent use.
type Tokenizer struct {
	norm Normalizer
}

// NewTokenizer builds a Tokenizer. A nil normalizer means identity.
func NewTokenizer(norm Normalizer) *Tokenizer {
	if norm == nil {
		norm = IdentityNormalizer{}
	}
	return &Tokenizer{norm: norm}
}

// Tokenize lowercases the text, strips punctuation and returns every token
// that is at least 3 characters long, not purely numeric and not a stopword.
// Cyrillic tokens go through the morphological normalizer, then every token
// through the synonym map.
func (t *Tokenizer) Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunct, r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, text)

	var out []string
	for _, token := range strings.Fields(cleaned) {
		if isCyrillicToken(token) {
			token = t.norm.NormalForm(token)
		}
		if canonical, ok := tokenSynonyms[token]; ok {
			token = canonical
		}
		if len([]rune(token)) < 3 || isAllDigits(token) {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		out = append(out, token)
	}
	return out
}

// TokenSet returns the tokens of the text as a set.
func (t *Tokenizer) TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range t.Tokenize(text) {
		set[token] = struct{}{}
	}
	return set
}

func isCyrillicToken(token string) bool {
	for _, r := range token {
		if (r >= 'а' && r <= 'я') || r == 'ё' {
			return true
		}
	}
	return false
}

func isAllDigits(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return token != ""
}

func isLatinOrDigitToken(token string) bool {
	for _, r := range token {
		if (r >= 'a' && r <= 'z') || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// TokensMatch reports fuzzy token equality. Prefix matching works well for
// latin/model tokens (yndx-00051, usbc) but is too noisy for short cyrillic
// stems ("маркер" vs "маркиратор"), so cyrillic tokens need a longer shared
// prefix. Exact equality always matches.
func TokensMatch(left, right string) bool {
	if left == right {
		return true
	}

	lr, rr := []rune(left), []rune(right)
	if isCyrillicToken(left) || isCyrillicToken(right) {
		return len(lr) >= 6 && len(rr) >= 6 && string(lr[:6]) == string(rr[:6])
	}
	return len(lr) >= 4 && len(rr) >= 4 && string(lr[:4]) == string(rr[:4])
}

// matchCount counts base tokens that fuzzy-match at least one candidate token.
func matchCount(base, candidate map[string]struct{}) int {
	if len(base) == 0 || len(candidate) == 0 {
		return 0
	}

	matched := 0
	for token := range base {
		for other := range candidate {
			if TokensMatch(token, other) {
				matched++
				break
			}
		}
	}
	return matched
}

// matchPercent is the share of base tokens matched, truncated to an int.
func matchPercent(base, candidate map[string]struct{}) int {
	if len(base) == 0 {
		return 0
	}
	return matchCount(base, candidate) * 100 / len(base)
}

// overlapScore counts left tokens with any fuzzy match on the right.
func overlapScore(left, right map[string]struct{}) int {
	return matchCount(left, right)
}
