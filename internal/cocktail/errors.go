package cocktail

import "errors"

var (
	// ErrMissingAPIKey means no provider credential is configured. No network
	// call is ever attempted in this state.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")

	// ErrNoIngredients means a guided request arrived with every selection
	// field empty.
	ErrNoIngredients = errors.New("no ingredients selected")

	// ErrRecipeGeneration covers every failure of the text-generation step:
	// transport errors, malformed JSON, schema violations. The underlying
	// cause is logged, never surfaced.
	ErrRecipeGeneration = errors.New("recipe generation failed")

	// ErrNoBatch is returned when carousel navigation is attempted outside
	// the Success state.
	ErrNoBatch = errors.New("no result batch to navigate")

	// ErrIndexOutOfRange is returned for an explicit jump past the batch.
	ErrIndexOutOfRange = errors.New("recipe index out of range")
)

// User-facing messages. These are the only strings an error state ever shows;
// internal detail stays in the server log.
const (
	MsgNoIngredients    = "Please select a spirit or provide some ingredients to get started."
	MsgGenerationFailed = "Sorry, something went wrong while mixing your cocktails. Please try again."
	MsgNotConfigured    = "The cocktail generator is not configured. Set GEMINI_API_KEY and restart the server."
)
