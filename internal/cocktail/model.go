package cocktail

import "strings"

// Theme is the session-wide presentation mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Mode selects how recipes are generated.
type Mode string

const (
	// ModeGuided constrains generation to the user's selected ingredients.
	ModeGuided Mode = "guided"
	// ModeSurprise gives the model full creative latitude.
	ModeSurprise Mode = "surprise"
)

// SelectionState holds the user's ingredient choices. Free-text fields left
// empty are treated as "Any" when the prompt is built.
type SelectionState struct {
	SelectedAlcohols []string `json:"selected_alcohols"`
	Liqueurs         string   `json:"liqueurs"`
	Mixers           string   `json:"mixers"`
	OtherIngredients string   `json:"other_ingredients"`
}

// HasIngredients reports whether at least one selection field is usable.
// Guided-mode requests with nothing selected must be rejected before any
// provider call.
func (s SelectionState) HasIngredients() bool {
	for _, a := range s.SelectedAlcohols {
		if strings.TrimSpace(a) != "" {
			return true
		}
	}
	return strings.TrimSpace(s.Liqueurs) != "" ||
		strings.TrimSpace(s.Mixers) != "" ||
		strings.TrimSpace(s.OtherIngredients) != ""
}

// Recipe is one generated cocktail. ImageURL stays empty until illustration
// succeeds for this recipe, and stays empty permanently if it fails.
type Recipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Garnish      string   `json:"garnish"`
	ImageURL     string   `json:"image_url,omitempty"`
}
