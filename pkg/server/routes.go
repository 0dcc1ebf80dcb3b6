package server

import (
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with every API route registered. Each guarded
// route names the single permission it requires; styles are public.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(s.logger), gin.Recovery())

	api := router.Group("/api")

	api.GET("/breweries", s.auth.RequirePermission("get:breweries"), s.ListBreweries)
	api.POST("/breweries/create", s.auth.RequirePermission("create:breweries"), s.CreateBrewery)
	api.GET("/breweries/:brewery_id", s.auth.RequirePermission("get:breweries"), s.ShowBrewery)
	api.POST("/breweries/:brewery_id/edit", s.auth.RequirePermission("edit:breweries"), s.EditBrewery)
	api.PATCH("/breweries/:brewery_id/edit", s.auth.RequirePermission("edit:breweries"), s.EditBrewery)
	api.GET("/breweries/:brewery_id/beers", s.auth.RequirePermission("get:breweries"), s.ListBeersForBrewery)
	api.POST("/beers/create", s.auth.RequirePermission("create:beers"), s.CreateBeer)
	api.POST("/beers/:beer_id/delete", s.auth.RequirePermission("delete:beers"), s.DeleteBeer)
	api.GET("/styles", s.ListStyles)

	return router
}
