package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/api"
	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/cocktail"
	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/config"
	"github.com/SiDdHaRtHrAjDaSh/AI-Cocktail-recipe-generator/internal/platform/gemini"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	session := cocktail.NewSession(func(theme cocktail.Theme) {
		log.Printf("theme switched to %s", theme)
	})

	var service *cocktail.Service
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY is not set; generation requests will report a configuration error")
		service = cocktail.NewService(nil, nil, session)
	} else {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("error creating gemini client: %v", err)
		}
		service = cocktail.NewService(client, cocktail.NewIllustrator(client), session)
	}

	handler := api.NewHandler(service, session, cfg.GenerateTimeout)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/api/cocktails", handler.Generate)
	r.GET("/api/session", handler.GetSession)
	r.POST("/api/session/next", handler.Next)
	r.POST("/api/session/previous", handler.Previous)
	r.POST("/api/session/goto", handler.GoTo)
	r.POST("/api/session/theme", handler.ToggleTheme)
	r.GET("/api/healthz", handler.Health)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
