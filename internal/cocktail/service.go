package cocktail

import (
	"context"
	"log"
)

// RecipeGenerator is the text-generation provider boundary.
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, prompt string) ([]Recipe, error)
}

// Service runs the generation pipeline: validate, build the prompt, fetch
// recipes, illustrate them, publish the batch to the session.
type Service struct {
	recipes     RecipeGenerator
	illustrator *Illustrator
	session     *Session
}

// NewService wires the pipeline. recipes may be nil when no provider
// credential is configured; every generation attempt then reports the
// configuration error without touching the network.
func NewService(recipes RecipeGenerator, illustrator *Illustrator, session *Session) *Service {
	return &Service{recipes: recipes, illustrator: illustrator, session: session}
}

// Generate runs one full guided or surprise request and blocks until the
// pipeline settles. The returned view reflects the session after this
// request's outcome, unless a newer submission took over mid-flight.
//
// Image failures never surface here: a batch whose every illustration failed
// still publishes as Success.
func (s *Service) Generate(ctx context.Context, sel SelectionState, mode Mode) (View, error) {
	if mode == ModeGuided && !sel.HasIngredients() {
		s.session.Reject(MsgNoIngredients)
		return s.session.Snapshot(), ErrNoIngredients
	}
	if s.recipes == nil {
		s.session.Reject(MsgNotConfigured)
		return s.session.Snapshot(), ErrMissingAPIKey
	}

	token := s.session.Begin()

	batch, err := s.recipes.GenerateRecipes(ctx, BuildPrompt(sel, mode))
	if err != nil {
		log.Printf("recipe generation failed: %v", err)
		s.session.Fail(token, MsgGenerationFailed)
		return s.session.Snapshot(), ErrRecipeGeneration
	}

	s.session.AdvanceToImages(token)
	batch = s.illustrator.IllustrateBatch(ctx, batch)

	if !s.session.Publish(token, batch) {
		log.Printf("discarding stale batch of %d recipes", len(batch))
	}
	return s.session.Snapshot(), nil
}

// Session exposes the underlying session for navigation and theme handlers.
func (s *Service) Session() *Session {
	return s.session
}
