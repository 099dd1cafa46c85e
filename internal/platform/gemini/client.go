package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/cocktail"
)

const (
	textModel  = "gemini-1.5-flash"
	imageModel = "gemini-2.0-flash-preview-image-generation"
)

// Client talks to the Gemini API for both recipe text and recipe images.
type Client struct {
	text  *genai.GenerativeModel
	image *genai.GenerativeModel
}

// NewClient creates a Gemini client. The text model is constrained to emit a
// JSON array matching the recipe shape; this is enforced provider-side via
// the response schema, not by prompt wording alone.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	text := client.GenerativeModel(textModel)
	text.ResponseMIMEType = "application/json"
	text.ResponseSchema = recipeSchema()

	image := client.GenerativeModel(imageModel)
	image.SetCandidateCount(1)

	return &Client{text: text, image: image}, nil
}

// recipeSchema is the formal output contract for recipe generation: an array
// of flat objects, strings and string arrays only.
func recipeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":         {Type: genai.TypeString},
				"description":  {Type: genai.TypeString},
				"ingredients":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"instructions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"garnish":      {Type: genai.TypeString},
			},
			Required: []string{"name", "description", "ingredients", "instructions", "garnish"},
		},
	}
}

// GenerateRecipes sends the prompt and parses the JSON array out of the
// response. Every failure mode wraps cocktail.ErrRecipeGeneration so callers
// can match it without seeing provider detail.
func (c *Client) GenerateRecipes(ctx context.Context, prompt string) ([]cocktail.Recipe, error) {
	resp, err := c.text.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cocktail.ErrRecipeGeneration, err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cocktail.ErrRecipeGeneration, err)
	}

	recipes, err := decodeRecipes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cocktail.ErrRecipeGeneration, err)
	}
	return recipes, nil
}

// GenerateImage requests one square photographic image and returns its raw
// bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.image.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return blob.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("no image data in response")
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part %T", resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}

// recipePayload uses pointers so a field the model omitted is distinguishable
// from one it left empty.
type recipePayload struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Garnish      *string  `json:"garnish"`
}

// decodeRecipes trims and parses the raw response text. Any array length is
// accepted; the 2-4 bound lives in the prompt instructions and the provider
// is trusted for it.
func decodeRecipes(raw string) ([]cocktail.Recipe, error) {
	var payload []recipePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return nil, fmt.Errorf("parse recipes: %v", err)
	}

	recipes := make([]cocktail.Recipe, 0, len(payload))
	for i, p := range payload {
		if p.Name == nil || *p.Name == "" {
			return nil, fmt.Errorf("recipe %d: missing name", i)
		}
		if p.Description == nil || p.Garnish == nil {
			return nil, fmt.Errorf("recipe %d: missing required field", i)
		}
		if p.Ingredients == nil || p.Instructions == nil {
			return nil, fmt.Errorf("recipe %d: missing ingredients or instructions", i)
		}
		recipes = append(recipes, cocktail.Recipe{
			Name:         *p.Name,
			Description:  *p.Description,
			Ingredients:  p.Ingredients,
			Instructions: p.Instructions,
			Garnish:      *p.Garnish,
		})
	}
	return recipes, nil
}
