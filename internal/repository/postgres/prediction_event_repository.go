package postgres

import (
	"context"
	"fmt"

	"predictBot/domain"

	"gorm.io/gorm"
)

type PredictionEventRepository struct {
	DB *gorm.DB
}

func NewPredictionEventRepository(db *gorm.DB) *PredictionEventRepository {
	return &PredictionEventRepository{DB: db}
}

func (r *PredictionEventRepository) SavePrediction(ctx context.Context, event domain.PredictionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save prediction event: %w", err)
	}

	return nil
}

func (r *PredictionEventRepository) SaveFeedback(ctx context.Context, event domain.FeedbackEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save feedback event: %w", err)
	}

	return nil
}
