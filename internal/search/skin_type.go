// internal/search/skin_type.go
package search

import (
	"strings"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

// Products carry no skin-type tags. Suitability is inferred from keywords in
// the descriptions and key ingredients.
var skinTypeKeywords = map[models.SkinType][]string{
	models.SkinTypeSensitive:   {"sensitive", "gentle"},
	models.SkinTypeDry:         {"dry", "hydrat", "moistur"},
	models.SkinTypeOily:        {"oily", "oil control", "sebum"},
	models.SkinTypeCombination: {"combination", "balance"},
	models.SkinTypeAcneProne:   {"acne", "breakout", "salicylic"},
}

// normalExclusions are the keywords whose absence marks a product as suitable
// for normal skin.
var normalExclusions = []string{"sensitive", "dry", "oily"}

// SkinTypes lists the tags in the order they are offered to shoppers.
var SkinTypes = []models.SkinType{
	models.SkinTypeSensitive,
	models.SkinTypeDry,
	models.SkinTypeOily,
	models.SkinTypeCombination,
	models.SkinTypeAcneProne,
	models.SkinTypeNormal,
}

// MatchesSkinType reports whether p is inferred suitable for tag t. Unknown
// tags match nothing.
func MatchesSkinType(p models.Product, t models.SkinType) bool {
	text := skinTypeText(p)

	if t == models.SkinTypeNormal {
		return !containsAny(text, normalExclusions)
	}
	keywords, ok := skinTypeKeywords[t]
	if !ok {
		return false
	}
	return containsAny(text, keywords)
}

// ParseSkinType resolves a tag case-insensitively. The second result is false
// for tags outside the vocabulary.
func ParseSkinType(s string) (models.SkinType, bool) {
	for _, t := range SkinTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return models.SkinType(s), false
}

func skinTypeText(p models.Product) string {
	return strings.ToLower(p.Description + " " + p.LongDescription + " " + strings.Join(p.KeyIngredients, " "))
}

func matchesAnySkinType(p models.Product, tags []models.SkinType) bool {
	for _, t := range tags {
		if MatchesSkinType(p, t) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
