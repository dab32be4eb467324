package similar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tok := NewTokenizer(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"lowercase and punctuation",
			"Смарт-Часы XIAOMI (Band)!",
			[]string{"смарт", "watch", "xiaomi", "band"},
		},
		{
			"short and numeric tokens dropped",
			"Note 12 5G ab",
			[]string{"note"},
		},
		{
			"stopwords dropped",
			"чехол для телефона",
			[]string{"чехол", "телефона"},
		},
		{
			"synonyms collapse",
			"айфон зарядка кабель",
			[]string{"iphone", "charge", "cable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokenize(tt.text))
		})
	}
}

func TestTokensMatch(t *testing.T) {
	tests := []struct {
		left, right string
		want        bool
	}{
		{"iphone", "iphone", true},
		{"airpods", "airpo", true},
		{"usbc", "usbcable", true},
		{"abc", "abcd", false}, // left shorter than 4 runes
		{"маркер", "маркиратор", false},
		{"кроссовки", "кроссовок", true},
		{"часы", "часов", false}, // cyrillic needs 6 shared runes
	}

	for _, tt := range tests {
		t.Run(tt.left+"/"+tt.right, func(t *testing.T) {
			assert.Equal(t, tt.want, TokensMatch(tt.left, tt.right))
		})
	}
}

func TestMatchPercentTruncates(t *testing.T) {
	tok := NewTokenizer(nil)

	base := tok.TokenSet("alpha bravo charlie")
	candidate := tok.TokenSet("alpha delta")

	// 1 of 3 matched: 33, not 33.33 rounded up.
	assert.Equal(t, 33, matchPercent(base, candidate))
	assert.Equal(t, 0, matchPercent(map[string]struct{}{}, candidate))
}
