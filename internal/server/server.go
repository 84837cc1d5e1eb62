package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-lima/connect4/internal/api/controller"
	"github.com/m-lima/connect4/internal/validator"
)

type Server struct {
	engine *gin.Engine
}

// NewServer builds the gin engine serving the game API.
func NewServer(gameController *controller.GameController) (*Server, error) {
	if err := validator.RegisterBinding(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	games := r.Group("/api/games")
	games.POST("", gameController.Create)
	games.GET("/:id", gameController.Get)
	games.POST("/:id/moves", gameController.Move)
	games.DELETE("/:id", gameController.Delete)

	return &Server{engine: r}, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "Request handled",
			"http.method", c.Request.Method,
			"http.route", c.FullPath(),
			"http.status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
