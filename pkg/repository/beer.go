package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mattgaskey/brewblog-api/pkg/model"
)

func (r *Repository) GetBeersForBrewery(ctx context.Context, breweryID string) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).
		Joins("Style").
		Where("brewery_id = ?", breweryID).
		Find(&beers)
	if result.Error != nil {
		r.Logger.Error("error getting beers for brewery", zap.String("brewery_id", breweryID), zap.Error(result.Error))

		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) CreateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&beer); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		r.Logger.Error("error creating beer", zap.String("name", beer.Name), zap.Error(err))

		return nil, err
	}

	return &beer, nil
}

// DeleteBeer removes the beer row and returns it so callers can report the
// deleted name and former brewery without a second fetch.
func (r *Repository) DeleteBeer(ctx context.Context, beerID int) (*model.Beer, error) {
	var beer model.Beer

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", beerID).First(&beer)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrBeerNotFound
			}

			return result.Error
		}

		if result := tx.Delete(&model.Beer{}, beerID); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBeerNotFound) {
			r.Logger.Error("error deleting beer", zap.Int("beer_id", beerID), zap.Error(err))
		}

		return nil, err
	}

	return &beer, nil
}
