package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fightpulse/combat-api/internal/models"
	apperrors "github.com/fightpulse/combat-api/pkg/errors"
)

// ListFighters returns a page of fighters ordered by name, with the
// total count for pagination
func (r *Repository) ListFighters(ctx context.Context, limit, offset int) ([]models.Fighter, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Fighter{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to count fighters")
	}

	var fighters []models.Fighter
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&fighters).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to list fighters")
	}
	return fighters, total, nil
}

// GetFighter fetches a fighter by ID
func (r *Repository) GetFighter(ctx context.Context, id string) (*models.Fighter, error) {
	var fighter models.Fighter
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&fighter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "fighter not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to get fighter")
	}
	return &fighter, nil
}

// ListEvents returns a page of events ordered by start date ascending
func (r *Repository) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to count events")
	}

	var events []models.Event
	err := r.db.WithContext(ctx).
		Order("start_at ASC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to list events")
	}
	return events, total, nil
}

// GetEvent fetches an event by ID
func (r *Repository) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "event not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to get event")
	}
	return &event, nil
}

// ListNews returns a page of news articles, newest first
func (r *Repository) ListNews(ctx context.Context, limit, offset int) ([]models.News, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to count news")
	}

	var articles []models.News
	err := r.db.WithContext(ctx).
		Order("publish_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to list news")
	}
	return articles, total, nil
}

// GetNews fetches a news article by ID
func (r *Repository) GetNews(ctx context.Context, id string) (*models.News, error) {
	var article models.News
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "news article not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to get news article")
	}
	return &article, nil
}

// ListClubs returns a page of clubs ordered by name
func (r *Repository) ListClubs(ctx context.Context, limit, offset int) ([]models.Club, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to count clubs")
	}

	var clubs []models.Club
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&clubs).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to list clubs")
	}
	return clubs, total, nil
}

// GetClub fetches a club by ID
func (r *Repository) GetClub(ctx context.Context, id string) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "club not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "failed to get club")
	}
	return &club, nil
}
