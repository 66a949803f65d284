package handlers

import (
	"fmt"
	"net/http"
	"time"

	_ "intellisql/docs" // Swagger docs
	"intellisql/logger"
	"intellisql/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the pages, the JSON API and the static assets.
func NewRouter(h *Handlers) (*gin.Engine, error) {
	pages, err := web.Pages()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))
	r.SetHTMLTemplate(pages)

	r.StaticFS("/static", http.FS(web.Static()))

	// Pages
	r.GET("/", h.HomePage)
	r.GET("/query", h.QueryPage)
	r.POST("/query", h.QuerySubmit)
	r.GET("/about", h.AboutPage)

	r.GET("/health", h.HealthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.POST("/translate", h.TranslateHandler)
	api.POST("/execute", h.ExecuteSQLHandler)
	api.POST("/query", h.QueryHandler)

	return r, nil
}
