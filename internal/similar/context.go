package similar

import (
	"regexp"
	"strings"
)

var (
	genderMalePrefixes   = []string{"муж"}
	genderFemalePrefixes = []string{"жен"}

	genderMaleWords = map[string]struct{}{
		"men": {}, "male": {}, "man": {}, "boy": {}, "boys": {},
	}
	genderFemaleWords = map[string]struct{}{
		"women": {}, "woman": {}, "female": {}, "girl": {}, "girls": {},
	}
	genderUnisexWords = map[string]struct{}{
		"unisex": {}, "унисекс": {},
	}
)

// genericProductTokens are commodity words too common to discriminate
// between products; they are excluded from the anchor set.
var genericProductTokens = map[string]struct{}{
	"кабель": {}, "провод": {}, "зарядка": {}, "зарядное": {}, "зарядный": {},
	"устройство": {}, "устройства": {}, "устройств": {}, "адаптер": {},
	"телефон": {}, "телефона": {}, "телефонов": {}, "смартфон": {}, "смартфона": {},
	"часы": {}, "часов": {}, "смарт": {}, "умный": {}, "умных": {},
	"ремешок": {}, "аксессуар": {}, "аксессуары": {}, "чехол": {}, "кейс": {},
	"комплект": {}, "набор": {}, "зарядки": {},
	"usb": {}, "type": {}, "micro": {}, "lightning": {},
	"charger": {}, "cable": {}, "charge": {},
}

// ecosystemTokens maps brand/product-line keyword families to an ecosystem
// label. A candidate that belongs to a different known ecosystem than the
// reference is rejected (an Apple strap is not a Xiaomi strap).
var ecosystemTokens = map[string]map[string]struct{}{
	"apple":   {"apple": {}, "iphone": {}, "iwatch": {}, "airpods": {}, "watchos": {}, "ios": {}},
	"xiaomi":  {"xiaomi": {}, "redmi": {}, "miband": {}},
	"samsung": {"samsung": {}, "galaxy": {}},
	"huawei":  {"huawei": {}, "honor": {}},
	"yandex":  {"yandex": {}, "яндекс": {}, "yndx": {}, "alice": {}, "алиса": {}, "станция": {}},
}

// typeTokens name a product type; when the reference has one, candidates
// must share at least one.
var typeTokens = map[string]struct{}{
	"cable": {}, "charge": {}, "adapter": {}, "power": {}, "supply": {},
	"battery": {}, "station": {}, "remeshok": {}, "strap": {}, "case": {},
	"cover": {}, "glass": {},
}

// modelTokenRE matches hyphenated alphanumeric model numbers (yndx-0005).
// Applied to the raw text to preserve exact model spelling.
var modelTokenRE = regexp.MustCompile(`(?i)\b[a-z0-9]{2,}(?:-[a-z0-9]{2,})+\b`)

// Gender labels detected in titles. Empty means unknown or unisex.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// MatchContext is the per-search state derived once from the reference
// product's title and category text, reused across all candidate
// evaluations and relaxation passes.
type MatchContext struct {
	Gender                string
	Tokens                map[string]struct{} // characteristic tokens
	BrandTokens           map[string]struct{}
	AnchorTokens          map[string]struct{}
	TypeTokens            map[string]struct{}
	ModelTokens           map[string]struct{}
	Ecosystem             string
	RequiredAnchorMatches int
	StrongAnchorCount     int
}

func isMaleToken(token string) bool {
	if _, ok := genderMaleWords[token]; ok {
		return true
	}
	for _, prefix := range genderMalePrefixes {
		if len(token) >= len(prefix) && token[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func isFemaleToken(token string) bool {
	if _, ok := genderFemaleWords[token]; ok {
		return true
	}
	for _, prefix := range genderFemalePrefixes {
		if len(token) >= len(prefix) && token[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// DetectGender returns GenderMale/GenderFemale when the text leans one way
// exclusively; unisex markers or mixed signals yield "".
func (t *Tokenizer) DetectGender(text string) string {
	var hasUnisex, hasMale, hasFemale bool
	for _, token := range t.Tokenize(text) {
		if _, ok := genderUnisexWords[token]; ok {
			hasUnisex = true
		}
		if isMaleToken(token) {
			hasMale = true
		}
		if isFemaleToken(token) {
			hasFemale = true
		}
	}

	switch {
	case hasUnisex:
		return ""
	case hasMale && !hasFemale:
		return GenderMale
	case hasFemale && !hasMale:
		return GenderFemale
	default:
		return ""
	}
}

// CharacteristicTokens is the token set minus gender indicators.
func (t *Tokenizer) CharacteristicTokens(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, token := range t.Tokenize(text) {
		if _, ok := genderUnisexWords[token]; ok {
			continue
		}
		if isMaleToken(token) || isFemaleToken(token) {
			continue
		}
		out[token] = struct{}{}
	}
	return out
}

// ExtractModelTokens pulls literal model numbers from raw (unnormalized) text.
func ExtractModelTokens(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, m := range modelTokenRE.FindAllString(text, -1) {
		out[strings.ToLower(m)] = struct{}{}
	}
	return out
}

func anchorTokens(tokens map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for token := range tokens {
		if _, generic := genericProductTokens[token]; !generic {
			out[token] = struct{}{}
		}
	}
	return out
}

// requiredAnchorMatches decides how many anchor tokens a candidate must hit:
// two when the reference has two strong (latin/digit) anchors or four anchors
// overall, one otherwise, zero when there are no anchors at all.
func requiredAnchorMatches(anchors map[string]struct{}) int {
	if len(anchors) == 0 {
		return 0
	}
	if strongAnchorCount(anchors) >= 2 || len(anchors) >= 4 {
		return 2
	}
	return 1
}

func strongAnchorCount(anchors map[string]struct{}) int {
	n := 0
	for token := range anchors {
		if isLatinOrDigitToken(token) {
			n++
		}
	}
	return n
}

func detectEcosystem(tokens map[string]struct{}) string {
	// Iterate in a fixed order so detection is deterministic.
	for _, name := range []string{"apple", "xiaomi", "samsung", "huawei", "yandex"} {
		family := ecosystemTokens[name]
		for token := range tokens {
			if _, ok := family[token]; ok {
				return name
			}
		}
	}
	return ""
}

func ecosystemCompatible(base string, candidateTokens map[string]struct{}) bool {
	if base == "" {
		return true
	}
	candidate := detectEcosystem(candidateTokens)
	return candidate == "" || candidate == base
}

// BuildContext derives the MatchContext from the reference title, category
// entity text and brand. Brand tokens gate candidates only when they overlap
// the characteristic tokens, otherwise noisy brand metadata would reject
// everything.
func (t *Tokenizer) BuildContext(title, entity, brand string) *MatchContext {
	text := title + " " + entity
	tokens := t.CharacteristicTokens(text)

	rawBrand := t.TokenSet(brand)
	brandTokens := map[string]struct{}{}
	if len(rawBrand) > 0 && matchCount(rawBrand, tokens) > 0 {
		brandTokens = rawBrand
	}

	anchors := anchorTokens(tokens)
	types := make(map[string]struct{})
	for token := range tokens {
		if _, ok := typeTokens[token]; ok {
			types[token] = struct{}{}
		}
	}

	return &MatchContext{
		Gender:                t.DetectGender(text),
		Tokens:                tokens,
		BrandTokens:           brandTokens,
		AnchorTokens:          anchors,
		TypeTokens:            types,
		ModelTokens:           ExtractModelTokens(text),
		Ecosystem:             detectEcosystem(tokens),
		RequiredAnchorMatches: requiredAnchorMatches(anchors),
		StrongAnchorCount:     strongAnchorCount(anchors),
	}
}

// modelTokensCompatible reports whether the candidate carries one of the
// reference's literal model tokens, either in its raw text or among its
// normalized tokens.
func modelTokensCompatible(base map[string]struct{}, candidateText string, candidateTokens map[string]struct{}) bool {
	if len(base) == 0 {
		return true
	}

	candidateModels := ExtractModelTokens(candidateText)
	for token := range base {
		if _, ok := candidateModels[token]; ok {
			return true
		}
		if _, ok := candidateTokens[token]; ok {
			return true
		}
	}
	return false
}
