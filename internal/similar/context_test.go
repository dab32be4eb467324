package similar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectGender(t *testing.T) {
	tok := NewTokenizer(nil)

	tests := []struct {
		text string
		want string
	}{
		{"Мужская футболка хлопок", GenderMale},
		{"Женские кроссовки летние", GenderFemale},
		{"Кроссовки men спортивные", GenderMale},
		{"Футболка унисекс мужская", ""},
		{"Кроссовки беговые", ""},
		{"Мужская женская парная пижама", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.DetectGender(tt.text))
		})
	}
}

func TestExtractModelTokens(t *testing.T) {
	models := ExtractModelTokens("Наушники Sony WH-1000XM4 black")
	require.Len(t, models, 1)
	assert.Contains(t, models, "wh-1000xm4")

	assert.Empty(t, ExtractModelTokens("Galaxy S23 Ultra"))
	assert.Empty(t, ExtractModelTokens("просто ремешок"))
}

func TestBuildContext(t *testing.T) {
	tok := NewTokenizer(nil)

	mc := tok.BuildContext("Умные часы Xiaomi Smart Band 8", "Смарт-часы", "Xiaomi")

	assert.Equal(t, "xiaomi", mc.Ecosystem)
	assert.Contains(t, mc.Tokens, "xiaomi")
	assert.Contains(t, mc.Tokens, "watch")
	assert.Contains(t, mc.BrandTokens, "xiaomi")

	// watch and смарт are generic, the rest anchor the product.
	assert.NotContains(t, mc.AnchorTokens, "watch")
	assert.Contains(t, mc.AnchorTokens, "band")
	assert.GreaterOrEqual(t, mc.StrongAnchorCount, 2)
	assert.Equal(t, 2, mc.RequiredAnchorMatches)
}

func TestBuildContext_BrandGate(t *testing.T) {
	tok := NewTokenizer(nil)

	// Brand absent from the title: noisy metadata, must not gate candidates.
	mc := tok.BuildContext("Кружка керамическая белая", "Посуда", "ООО Ромашка Трейд")
	assert.Empty(t, mc.BrandTokens)
}

func TestRequiredAnchorMatches(t *testing.T) {
	tok := NewTokenizer(nil)

	// Single weak anchor: one match required.
	mc := tok.BuildContext("Кружка керамическая", "", "")
	assert.Equal(t, 1, mc.RequiredAnchorMatches)

	// No anchors at all.
	mc = tok.BuildContext("часы", "", "")
	assert.Equal(t, 0, mc.RequiredAnchorMatches)
}

func TestEcosystemCompatible(t *testing.T) {
	tok := NewTokenizer(nil)

	appleTokens := tok.TokenSet("ремешок apple watch series")
	xiaomiTokens := tok.TokenSet("ремешок xiaomi miband")
	neutralTokens := tok.TokenSet("ремешок силиконовый черный")

	assert.True(t, ecosystemCompatible("", appleTokens))
	assert.True(t, ecosystemCompatible("apple", appleTokens))
	assert.True(t, ecosystemCompatible("apple", neutralTokens))
	assert.False(t, ecosystemCompatible("apple", xiaomiTokens))
}

func TestModelTokensCompatible(t *testing.T) {
	tok := NewTokenizer(nil)

	base := ExtractModelTokens("Наушники Sony WH-1000XM4")
	require.NotEmpty(t, base)

	ok := modelTokensCompatible(base, "Sony WH-1000XM4 чехол", tok.TokenSet("Sony WH-1000XM4 чехол"))
	assert.True(t, ok)

	ok = modelTokensCompatible(base, "Sony беспроводные наушники", tok.TokenSet("Sony беспроводные наушники"))
	assert.False(t, ok)

	// No base models: nothing to require.
	assert.True(t, modelTokensCompatible(map[string]struct{}{}, "anything", nil))
}
