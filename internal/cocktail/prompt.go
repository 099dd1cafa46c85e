package cocktail

import (
	"fmt"
	"strings"
)

// anyToken stands in for selection fields the user left empty.
const anyToken = "Any"

const surprisePrompt = "You are an expert mixologist. Invent between 2 and 4 cocktail recipes of your own choosing. " +
	"Include at least one recognizable classic cocktail. " +
	"Every recipe must have a unique name."

// BuildPrompt turns the selection into the natural-language prompt for the
// text-generation provider. Surprise mode ignores the selection entirely.
// Guided mode assumes the caller already validated the selection via
// HasIngredients; an all-empty selection still produces a prompt, it just
// asks for cocktails made from "Any" everything.
func BuildPrompt(sel SelectionState, mode Mode) string {
	if mode == ModeSurprise {
		return surprisePrompt
	}

	var b strings.Builder
	b.WriteString("You are an expert mixologist. Create between 2 and 4 cocktail recipes using these ingredients:\n")
	fmt.Fprintf(&b, "Base spirits: %s\n", joinOrAny(sel.SelectedAlcohols))
	fmt.Fprintf(&b, "Liqueurs: %s\n", orAny(sel.Liqueurs))
	fmt.Fprintf(&b, "Mixers: %s\n", orAny(sel.Mixers))
	fmt.Fprintf(&b, "Other ingredients: %s\n", orAny(sel.OtherIngredients))
	b.WriteString("\nIf the ingredients support a well-known classic cocktail, include at least one classic. ")
	b.WriteString("Creative recipes should use as many of the provided ingredients as possible. ")
	b.WriteString("Every recipe must have a unique name.")
	return b.String()
}

func joinOrAny(items []string) string {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return anyToken
	}
	return strings.Join(kept, ", ")
}

func orAny(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return anyToken
	}
	return s
}
