package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattgaskey/brewblog-api/pkg/model"
	"github.com/mattgaskey/brewblog-api/pkg/repository"
)

// Field-check order is part of the create/edit contract: the first missing
// field in this order is the one named in the error.
var (
	breweryCreateFields = []string{"id", "name", "address", "city", "state", "phone", "website_link"}
	breweryEditFields   = []string{"name", "address", "city", "state", "phone", "website_link"}
)

// ListBreweries returns all breweries grouped by (city, state). Groups are
// emitted in first-seen order during a single pass, never sorted.
func (s *Server) ListBreweries(c *gin.Context) {
	breweries, err := s.store.ListBreweries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	type area struct {
		city, state string
	}

	var order []area

	groups := make(map[area][]BreweryResponse)

	for _, brewery := range breweries {
		key := area{city: brewery.City, state: brewery.State}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}

		groups[key] = append(groups[key], BreweryFromModel(brewery))
	}

	response := make([]AreaResponse, 0, len(order))
	for _, key := range order {
		response = append(response, AreaResponse{
			City:      key.city,
			State:     key.state,
			Breweries: groups[key],
		})
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) CreateBrewery(c *gin.Context) {
	data, ok := bindJSON(c)
	if !ok {
		return
	}

	if missing := firstMissingField(data, breweryCreateFields); missing != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + missing})

		return
	}

	brewery := model.Brewery{
		ID:          stringField(data, "id"),
		Name:        stringField(data, "name"),
		Address:     stringField(data, "address"),
		City:        stringField(data, "city"),
		State:       stringField(data, "state"),
		Phone:       stringField(data, "phone"),
		WebsiteLink: stringField(data, "website_link"),
	}

	created, err := s.store.CreateBrewery(c.Request.Context(), brewery)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBrewery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Brewery with ID %s already exists.", brewery.ID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	s.logger.Info("brewery created", zap.String("brewery_id", created.ID))

	c.JSON(http.StatusCreated, BreweryFromModel(created))
}

func (s *Server) ShowBrewery(c *gin.Context) {
	breweryID := c.Param("brewery_id")

	brewery, err := s.store.GetBrewery(c.Request.Context(), breweryID)
	if err != nil {
		if errors.Is(err, repository.ErrBreweryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Brewery with id %s not found.", breweryID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, BreweryFromModel(brewery))
}

// EditBrewery applies all fields unconditionally (full replace).
func (s *Server) EditBrewery(c *gin.Context) {
	breweryID := c.Param("brewery_id")

	brewery, err := s.store.GetBrewery(c.Request.Context(), breweryID)
	if err != nil {
		if errors.Is(err, repository.ErrBreweryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Brewery with id %s not found.", breweryID)})

			return
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	data, ok := bindJSON(c)
	if !ok {
		return
	}

	if missing := firstMissingField(data, breweryEditFields); missing != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + missing})

		return
	}

	brewery.Name = stringField(data, "name")
	brewery.Address = stringField(data, "address")
	brewery.City = stringField(data, "city")
	brewery.State = stringField(data, "state")
	brewery.Phone = stringField(data, "phone")
	brewery.WebsiteLink = stringField(data, "website_link")

	if err := s.store.UpdateBrewery(c.Request.Context(), brewery); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, BreweryFromModel(brewery))
}

func bindJSON(c *gin.Context) (map[string]interface{}, bool) {
	var data map[string]interface{}

	if err := c.ShouldBindJSON(&data); err != nil || data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request does not contain a valid JSON body"})

		return nil, false
	}

	return data, true
}

func firstMissingField(data map[string]interface{}, fields []string) string {
	for _, field := range fields {
		if _, found := data[field]; !found {
			return field
		}
	}

	return ""
}

func stringField(data map[string]interface{}, field string) string {
	value, _ := data[field].(string)

	return value
}
