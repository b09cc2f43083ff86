package main

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/particles"
	"github.com/Zachkp/portfolio/internal/profile"
)

type server struct {
	cfg     config.Config
	log     zerolog.Logger
	profile profile.Profile

	// streams counts open typewriter streams.
	streams atomic.Int64
}

func newServer(cfg config.Config, logger zerolog.Logger, p profile.Profile) *server {
	return &server{cfg: cfg, log: logger, profile: p}
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(s.log))
	r.SetHTMLTemplate(pageTemplates)
	r.StaticFS("/static", http.FS(staticFiles))

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":   s.profile,
			"particles": particles.Random(s.cfg.ParticleCount),
			"cursor":    "|",
		})
	})

	// Typewriter rotation, one SSE stream per visitor
	r.GET("/typewriter", s.typewriterInfo)
	r.GET("/typewriter/stream", s.typewriterStream)

	r.GET("/api/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.profile)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"streams": s.streams.Load(),
		})
	})

	return r
}
