package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mattgaskey/brewblog-api/pkg/model"
)

func (r *Repository) GetStyle(ctx context.Context, styleID int) (*model.Style, error) {
	var style model.Style

	result := r.DB.WithContext(ctx).Where("id = ?", styleID).First(&style)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStyleNotFound
		}

		return nil, result.Error
	}

	return &style, nil
}

func (r *Repository) ListStyles(ctx context.Context) ([]*model.Style, error) {
	var styles []*model.Style

	if result := r.DB.WithContext(ctx).Distinct().Find(&styles); result.Error != nil {
		r.Logger.Error("error listing styles", zap.Error(result.Error))

		return nil, result.Error
	}

	return styles, nil
}

func (r *Repository) CountStyles(ctx context.Context) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Style{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// AddStyle is used by seeding only; styles have no API write surface.
func (r *Repository) AddStyle(ctx context.Context, name string) (*model.Style, error) {
	style := model.Style{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&style); result.Error != nil {
		return nil, result.Error
	}

	return &style, nil
}
