package server

import (
	"github.com/mattgaskey/brewblog-api/pkg/model"
)

type BeerSummary struct {
	BeerID          int    `json:"beer_id"`
	BeerName        string `json:"beer_name"`
	BeerStyle       string `json:"beer_style"`
	BeerDescription string `json:"beer_description"`
}

type BreweryResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Phone       string        `json:"phone"`
	WebsiteLink string        `json:"website_link"`
	Beers       []BeerSummary `json:"beers"`
	BeersCount  int           `json:"beers_count"`
}

type AreaResponse struct {
	City      string            `json:"city"`
	State     string            `json:"state"`
	Breweries []BreweryResponse `json:"breweries"`
}

type BeerResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Style       string `json:"style"`
	Description string `json:"description"`
	BreweryID   string `json:"brewery_id"`
}

type StyleResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BreweryFromModel serializes a brewery with its beer summaries and count,
// computed fresh from the loaded beer collection.
func BreweryFromModel(brewery *model.Brewery) BreweryResponse {
	beers := make([]BeerSummary, 0, len(brewery.Beers))
	for i := range brewery.Beers {
		beer := &brewery.Beers[i]
		beers = append(beers, BeerSummary{
			BeerID:          beer.ID,
			BeerName:        beer.Name,
			BeerStyle:       beer.Style.Name,
			BeerDescription: beer.Description,
		})
	}

	return BreweryResponse{
		ID:          brewery.ID,
		Name:        brewery.Name,
		Address:     brewery.Address,
		City:        brewery.City,
		State:       brewery.State,
		Phone:       brewery.Phone,
		WebsiteLink: brewery.WebsiteLink,
		Beers:       beers,
		BeersCount:  len(beers),
	}
}

func BeerFromModel(beer *model.Beer) BeerResponse {
	return BeerResponse{
		ID:          beer.ID,
		Name:        beer.Name,
		Style:       beer.Style.Name,
		Description: beer.Description,
		BreweryID:   beer.BreweryID,
	}
}

func StyleFromModel(style *model.Style) StyleResponse {
	return StyleResponse{ID: style.ID, Name: style.Name}
}
