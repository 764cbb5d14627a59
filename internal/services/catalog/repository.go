package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/fightpulse/combat-api/internal/models"
	"github.com/fightpulse/combat-api/internal/services/search"
)

// Repository is the GORM-backed record store. It implements both the
// search gateway's DataSource contract and the Store interface the
// entity routes consume. Soft-deleted records are excluded by GORM's
// deleted_at handling on every query.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// FindFighters matches the query text against name, nickname and
// country; the location filter narrows by country
func (r *Repository) FindFighters(ctx context.Context, l search.Lookup) ([]search.FighterRecord, error) {
	pattern := likePattern(l.Text)
	q := r.db.WithContext(ctx).Model(&models.Fighter{}).
		Where(r.db.Where("name LIKE ?", pattern).
			Or("nickname LIKE ?", pattern).
			Or("country LIKE ?", pattern))

	if len(l.Locations) > 0 {
		loc := r.db.Where("country LIKE ?", likePattern(l.Locations[0]))
		for _, location := range l.Locations[1:] {
			loc = loc.Or("country LIKE ?", likePattern(location))
		}
		q = q.Where(loc)
	}

	var rows []models.Fighter
	if err := q.Limit(l.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]search.FighterRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, search.FighterRecord{
			ID:          row.ID,
			Name:        row.Name,
			Nickname:    row.Nickname,
			Country:     row.Country,
			WeightClass: row.WeightClass,
			ImageURL:    row.ImageURL,
		})
	}
	return records, nil
}

// FindEvents matches name, city and country; the location filter
// narrows by city or country and the date filters bound start_at
func (r *Repository) FindEvents(ctx context.Context, l search.Lookup) ([]search.EventRecord, error) {
	pattern := likePattern(l.Text)
	q := r.db.WithContext(ctx).Model(&models.Event{}).
		Where(r.db.Where("name LIKE ?", pattern).
			Or("city LIKE ?", pattern).
			Or("country LIKE ?", pattern))

	if len(l.Locations) > 0 {
		first := likePattern(l.Locations[0])
		loc := r.db.Where("city LIKE ?", first).Or("country LIKE ?", first)
		for _, location := range l.Locations[1:] {
			locPattern := likePattern(location)
			loc = loc.Or("city LIKE ?", locPattern).Or("country LIKE ?", locPattern)
		}
		q = q.Where(loc)
	}
	if l.From != nil {
		q = q.Where("start_at >= ?", *l.From)
	}
	if l.To != nil {
		q = q.Where("start_at <= ?", *l.To)
	}

	var rows []models.Event
	if err := q.Limit(l.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]search.EventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, search.EventRecord{
			ID:        row.ID,
			Name:      row.Name,
			City:      row.City,
			Country:   row.Country,
			StartAt:   row.StartAt,
			PosterURL: row.PosterURL,
		})
	}
	return records, nil
}

// FindNews matches title, content and author name; the category
// filter is an exact case-insensitive match and the date filters
// bound publish_at. Results come newest first.
func (r *Repository) FindNews(ctx context.Context, l search.Lookup) ([]search.NewsRecord, error) {
	pattern := likePattern(l.Text)
	q := r.db.WithContext(ctx).Model(&models.News{}).
		Where(r.db.Where("title LIKE ?", pattern).
			Or("content LIKE ?", pattern).
			Or("author_name LIKE ?", pattern))

	if len(l.Categories) > 0 {
		// sqlite LIKE without wildcards gives the case-insensitive
		// equality the category filter wants
		cat := r.db.Where("category LIKE ?", l.Categories[0])
		for _, category := range l.Categories[1:] {
			cat = cat.Or("category LIKE ?", category)
		}
		q = q.Where(cat)
	}
	if l.From != nil {
		q = q.Where("publish_at >= ?", *l.From)
	}
	if l.To != nil {
		q = q.Where("publish_at <= ?", *l.To)
	}

	var rows []models.News
	if err := q.Order("publish_at DESC").Limit(l.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]search.NewsRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, search.NewsRecord{
			ID:        row.ID,
			Title:     row.Title,
			Excerpt:   row.Excerpt,
			Category:  row.Category,
			PublishAt: row.PublishAt,
			ImageURL:  row.ImageURL,
		})
	}
	return records, nil
}

// FindClubs matches name, city and country; the location filter
// narrows by city or country
func (r *Repository) FindClubs(ctx context.Context, l search.Lookup) ([]search.ClubRecord, error) {
	pattern := likePattern(l.Text)
	q := r.db.WithContext(ctx).Model(&models.Club{}).
		Where(r.db.Where("name LIKE ?", pattern).
			Or("city LIKE ?", pattern).
			Or("country LIKE ?", pattern))

	if len(l.Locations) > 0 {
		first := likePattern(l.Locations[0])
		loc := r.db.Where("city LIKE ?", first).Or("country LIKE ?", first)
		for _, location := range l.Locations[1:] {
			locPattern := likePattern(location)
			loc = loc.Or("city LIKE ?", locPattern).Or("country LIKE ?", locPattern)
		}
		q = q.Where(loc)
	}

	var rows []models.Club
	if err := q.Limit(l.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]search.ClubRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, search.ClubRecord{
			ID:          row.ID,
			Name:        row.Name,
			City:        row.City,
			Country:     row.Country,
			Description: row.Description,
			LogoURL:     row.LogoURL,
		})
	}
	return records, nil
}

// FindNames matches only the kind's primary name/title field, for
// autocomplete suggestions
func (r *Repository) FindNames(ctx context.Context, kind search.Kind, text string, limit int) ([]search.NameRef, error) {
	pattern := likePattern(text)
	var refs []search.NameRef

	var err error
	switch kind {
	case search.KindFighter:
		err = r.db.WithContext(ctx).Model(&models.Fighter{}).
			Select("id", "name AS text").
			Where("name LIKE ?", pattern).
			Limit(limit).Scan(&refs).Error
	case search.KindEvent:
		err = r.db.WithContext(ctx).Model(&models.Event{}).
			Select("id", "name AS text").
			Where("name LIKE ?", pattern).
			Limit(limit).Scan(&refs).Error
	case search.KindNews:
		err = r.db.WithContext(ctx).Model(&models.News{}).
			Select("id", "title AS text").
			Where("title LIKE ?", pattern).
			Limit(limit).Scan(&refs).Error
	case search.KindClub:
		err = r.db.WithContext(ctx).Model(&models.Club{}).
			Select("id", "name AS text").
			Where("name LIKE ?", pattern).
			Limit(limit).Scan(&refs).Error
	}
	if err != nil {
		return nil, err
	}
	return refs, nil
}
