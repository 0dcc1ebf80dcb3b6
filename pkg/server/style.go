package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListStyles returns all styles. Styles are public reference data; this is
// the one route with no permission guard.
func (s *Server) ListStyles(c *gin.Context) {
	styles, err := s.store.ListStyles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	response := make([]StyleResponse, 0, len(styles))
	for _, style := range styles {
		response = append(response, StyleFromModel(style))
	}

	c.JSON(http.StatusOK, response)
}
