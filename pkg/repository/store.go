package repository

import (
	"context"
	"errors"

	"github.com/mattgaskey/brewblog-api/pkg/model"
)

var (
	ErrBreweryNotFound  = errors.New("brewery not found")
	ErrDuplicateBrewery = errors.New("brewery already exists")
	ErrBeerNotFound     = errors.New("beer not found")
	ErrStyleNotFound    = errors.New("style not found")
)

// Store is the persistence surface consumed by the HTTP handlers.
type Store interface {
	ListBreweries(ctx context.Context) ([]*model.Brewery, error)
	GetBrewery(ctx context.Context, breweryID string) (*model.Brewery, error)
	CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error)
	UpdateBrewery(ctx context.Context, brewery *model.Brewery) error
	GetBeersForBrewery(ctx context.Context, breweryID string) ([]*model.Beer, error)
	CreateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID int) (*model.Beer, error)
	GetStyle(ctx context.Context, styleID int) (*model.Style, error)
	ListStyles(ctx context.Context) ([]*model.Style, error)
}

var _ Store = (*Repository)(nil)
