package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/cocktail"
)

// CocktailService defines the interface for running a generation request.
type CocktailService interface {
	Generate(ctx context.Context, sel cocktail.SelectionState, mode cocktail.Mode) (cocktail.View, error)
}

// GenerateRequest is the body of a generation submission.
type GenerateRequest struct {
	SelectedAlcohols []string `json:"selected_alcohols"`
	Liqueurs         string   `json:"liqueurs"`
	Mixers           string   `json:"mixers"`
	OtherIngredients string   `json:"other_ingredients"`
	Mode             string   `json:"mode"`
}

// GoToRequest is the body of an explicit carousel jump.
type GoToRequest struct {
	Index int `json:"index"`
}

// Handler handles HTTP requests.
type Handler struct {
	Service CocktailService
	Session *cocktail.Session
	Timeout time.Duration
}

// NewHandler creates a new Handler.
func NewHandler(service CocktailService, session *cocktail.Session, timeout time.Duration) *Handler {
	return &Handler{Service: service, Session: session, Timeout: timeout}
}

// Generate runs the full pipeline for a guided or surprise submission and
// responds with the resulting session view.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}

	mode := cocktail.Mode(req.Mode)
	if mode != cocktail.ModeGuided && mode != cocktail.ModeSurprise {
		c.String(http.StatusBadRequest, "mode must be \"guided\" or \"surprise\"")
		return
	}

	sel := cocktail.SelectionState{
		SelectedAlcohols: req.SelectedAlcohols,
		Liqueurs:         req.Liqueurs,
		Mixers:           req.Mixers,
		OtherIngredients: req.OtherIngredients,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	view, err := h.Service.Generate(ctx, sel, mode)
	switch {
	case errors.Is(err, cocktail.ErrNoIngredients):
		c.JSON(http.StatusBadRequest, view)
	case errors.Is(err, cocktail.ErrMissingAPIKey):
		c.JSON(http.StatusServiceUnavailable, view)
	case errors.Is(err, cocktail.ErrRecipeGeneration):
		c.JSON(http.StatusBadGateway, view)
	case err != nil:
		c.String(http.StatusInternalServerError, "internal error")
	default:
		c.JSON(http.StatusOK, view)
	}
}

// GetSession returns the current session view.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Snapshot())
}

// Next advances the result carousel, wrapping at the end.
func (h *Handler) Next(c *gin.Context) {
	h.respondNavigation(c, func() (cocktail.View, error) { return h.Session.Next() })
}

// Previous steps the result carousel back, wrapping at the start.
func (h *Handler) Previous(c *gin.Context) {
	h.respondNavigation(c, func() (cocktail.View, error) { return h.Session.Previous() })
}

// GoTo jumps to an explicit recipe index.
func (h *Handler) GoTo(c *gin.Context) {
	var req GoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}
	h.respondNavigation(c, func() (cocktail.View, error) { return h.Session.GoTo(req.Index) })
}

func (h *Handler) respondNavigation(c *gin.Context, nav func() (cocktail.View, error)) {
	view, err := nav()
	switch {
	case errors.Is(err, cocktail.ErrNoBatch):
		c.String(http.StatusConflict, "no results to navigate")
	case errors.Is(err, cocktail.ErrIndexOutOfRange):
		c.String(http.StatusBadRequest, "recipe index out of range")
	case err != nil:
		c.String(http.StatusInternalServerError, "internal error")
	default:
		c.JSON(http.StatusOK, view)
	}
}

// ToggleTheme flips the light/dark theme.
func (h *Handler) ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.ToggleTheme())
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
