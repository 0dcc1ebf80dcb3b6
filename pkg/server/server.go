package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/pkg/auth"
	"github.com/mattgaskey/brewblog-api/pkg/repository"
)

// Server holds the injected collaborators for every handler. There is no
// process-wide state; the store handle is passed in explicitly.
type Server struct {
	store  repository.Store
	auth   *auth.Manager
	logger *zap.Logger
}

func New(store repository.Store, authManager *auth.Manager, logger *zap.Logger) *Server {
	return &Server{store: store, auth: authManager, logger: logger}
}

// RequestLogger logs one line per request with zap.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
