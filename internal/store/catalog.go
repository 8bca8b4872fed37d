package store

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// MaxCatalogLimit caps the number of listings returned by list queries.
const MaxCatalogLimit = 50

// ServiceOpts holds parameters for creating a catalog listing.
type ServiceOpts struct {
	Title       string
	Price       float64
	Description string
	Category    string // defaults to "general"
	Countries   []string
}

// ServiceFilters holds optional filters for listing services.
type ServiceFilters struct {
	Category string
	Search   string // substring match on title
	Limit    int    // defaults to 10, capped at MaxCatalogLimit
}

// slugRe matches runs of characters that are not slug-safe.
var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a listing title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CreateService creates a catalog listing. The slug is derived from the title
// and de-duplicated with a numeric suffix when taken.
func CreateService(db *gorm.DB, opts ServiceOpts) (*models.Service, error) {
	if opts.Title == "" {
		return nil, fmt.Errorf("store: service: title is required")
	}
	if opts.Price <= 0 {
		return nil, fmt.Errorf("store: service: price must be positive")
	}
	if opts.Category == "" {
		opts.Category = "general"
	}

	slug, err := uniqueSlug(db, Slugify(opts.Title))
	if err != nil {
		return nil, err
	}

	countries := "[]"
	if len(opts.Countries) > 0 {
		data, err := json.Marshal(opts.Countries)
		if err != nil {
			return nil, fmt.Errorf("store: service: marshal countries: %w", err)
		}
		countries = string(data)
	}

	service := models.Service{
		Title:       opts.Title,
		Slug:        slug,
		Price:       opts.Price,
		Description: opts.Description,
		Category:    opts.Category,
		Countries:   countries,
		Active:      true,
	}
	if err := db.Create(&service).Error; err != nil {
		return nil, fmt.Errorf("store: service: create: %w", err)
	}
	return &service, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free.
func uniqueSlug(db *gorm.DB, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&models.Service{}).
			Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", fmt.Errorf("store: service: check slug %q: %w", slug, err)
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// ListServices returns active listings with optional category and search
// filters and a capped limit.
func ListServices(db *gorm.DB, filters ServiceFilters) ([]models.Service, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxCatalogLimit {
		limit = MaxCatalogLimit
	}

	q := db.Where("active = ?", true)
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		q = q.Where("title LIKE ?", "%"+filters.Search+"%")
	}

	var services []models.Service
	if err := q.Order("category, title").Limit(limit).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("store: service: list: %w", err)
	}
	return services, nil
}

// CountByCategory groups active listings by category.
func CountByCategory(db *gorm.DB) (map[string]int, error) {
	var rows []struct {
		Category string
		Count    int
	}
	if err := db.Model(&models.Service{}).
		Where("active = ?", true).
		Select("category, COUNT(*) as count").
		Group("category").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: service: count by category: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
