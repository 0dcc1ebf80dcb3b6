package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/pkg/model"
	"github.com/mattgaskey/brewblog-api/pkg/repository"
)

// ListBeersForBrewery returns every beer of the brewery. An unknown brewery
// id yields an empty list, not an error.
func (s *Server) ListBeersForBrewery(c *gin.Context) {
	breweryID := c.Param("brewery_id")

	beers, err := s.store.GetBeersForBrewery(c.Request.Context(), breweryID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	response := make([]BeerResponse, 0, len(beers))
	for _, beer := range beers {
		response = append(response, BeerFromModel(beer))
	}

	c.JSON(http.StatusOK, response)
}

// CreateBeer persists a new beer. The brewery must exist; the style is
// resolved eagerly so serialization always has a style name to join.
func (s *Server) CreateBeer(c *gin.Context) {
	data, ok := bindJSON(c)
	if !ok {
		return
	}

	breweryID := stringField(data, "brewery_id")

	brewery, err := s.store.GetBrewery(c.Request.Context(), breweryID)
	if err != nil {
		if errors.Is(err, repository.ErrBreweryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Brewery with ID %s not found.", breweryID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	styleID := intField(data, "style")

	style, err := s.store.GetStyle(c.Request.Context(), styleID)
	if err != nil {
		if errors.Is(err, repository.ErrStyleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Style with ID %d not found.", styleID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	beer := model.Beer{
		ID:          intField(data, "id"),
		Name:        stringField(data, "name"),
		Description: stringField(data, "description"),
		BreweryID:   brewery.ID,
		StyleID:     style.ID,
	}

	created, err := s.store.CreateBeer(c.Request.Context(), beer)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	created.Style = *style

	s.logger.Info("beer created", zap.Int("beer_id", created.ID), zap.String("brewery_id", created.BreweryID))

	c.JSON(http.StatusCreated, BeerFromModel(created))
}

// DeleteBeer removes a beer and reports its name and former brewery so the
// caller can refresh its brewery view without a second fetch.
func (s *Server) DeleteBeer(c *gin.Context) {
	beerID, err := strconv.Atoi(c.Param("beer_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Beer with id %s not found.", c.Param("beer_id"))})

		return
	}

	beer, err := s.store.DeleteBeer(c.Request.Context(), beerID)
	if err != nil {
		if errors.Is(err, repository.ErrBeerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Beer with id %d not found.", beerID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	s.logger.Info("beer deleted", zap.Int("beer_id", beer.ID), zap.String("brewery_id", beer.BreweryID))

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Beer %s deleted successfully.", beer.Name),
		"brewery_id": beer.BreweryID,
	})
}

func intField(data map[string]interface{}, field string) int {
	value, _ := data[field].(float64)

	return int(value)
}
