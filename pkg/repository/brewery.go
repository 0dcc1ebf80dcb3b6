package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mattgaskey/brewblog-api/pkg/model"
)

// ListBreweries returns every brewery with its beers and their styles loaded.
// No ordering is applied; callers group rows in the order the store returns them.
func (r *Repository) ListBreweries(ctx context.Context) ([]*model.Brewery, error) {
	var breweries []*model.Brewery

	result := r.DB.WithContext(ctx).
		Preload("Beers").
		Preload("Beers.Style").
		Find(&breweries)
	if result.Error != nil {
		r.Logger.Error("error listing breweries", zap.Error(result.Error))

		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBrewery(ctx context.Context, breweryID string) (*model.Brewery, error) {
	var brewery model.Brewery

	result := r.DB.WithContext(ctx).
		Preload("Beers").
		Preload("Beers.Style").
		Where("id = ?", breweryID).
		First(&brewery)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return &brewery, nil
}

// CreateBrewery inserts the brewery inside a single transaction. The duplicate
// check runs in the same transaction so a conflicting insert rolls back cleanly.
func (r *Repository) CreateBrewery(ctx context.Context, brewery model.Brewery) (*model.Brewery, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Brewery

		result := tx.Where("id = ?", brewery.ID).First(&existing)
		if result.Error == nil {
			return ErrDuplicateBrewery
		}

		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		if result := tx.Create(&brewery); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateBrewery) {
			r.Logger.Error("error creating brewery", zap.String("brewery_id", brewery.ID), zap.Error(err))
		}

		return nil, err
	}

	return &brewery, nil
}

// UpdateBrewery writes every column of the brewery row (full replace).
func (r *Repository) UpdateBrewery(ctx context.Context, brewery *model.Brewery) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Brewery{}).Where("id = ?", brewery.ID).
			Updates(map[string]interface{}{
				"name":         brewery.Name,
				"address":      brewery.Address,
				"city":         brewery.City,
				"state":        brewery.State,
				"phone":        brewery.Phone,
				"website_link": brewery.WebsiteLink,
			})

		return result.Error
	})
	if err != nil {
		r.Logger.Error("error updating brewery", zap.String("brewery_id", brewery.ID), zap.Error(err))

		return err
	}

	return nil
}
