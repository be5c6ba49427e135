// Package entities contains domain entities used across the application.
package entities

// TranslationPair is one vocabulary entry: a term in the source language
// and its translation in the target language.
type TranslationPair struct {
	Term        string `json:"term"`        // prompt shown to the player (Russian)
	Translation string `json:"translation"` // expected answer (French)
}

// DistinctTranslations returns the number of different translation strings in pairs.
func DistinctTranslations(pairs []TranslationPair) int {
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		seen[p.Translation] = struct{}{}
	}
	return len(seen)
}
