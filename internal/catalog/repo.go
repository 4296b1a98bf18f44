package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomandblossom/florist-backend/pkg/db/models"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/bloomandblossom/florist-backend/pkg/pagination"
)

// Repository wires together plant and category persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreatePlant inserts a new plant row.
func (r *Repository) CreatePlant(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	if err := r.db.WithContext(ctx).Create(plant).Error; err != nil {
		return nil, err
	}
	return plant, nil
}

// UpdatePlant updates an existing plant row.
func (r *Repository) UpdatePlant(ctx context.Context, plant *models.Plant) (*models.Plant, error) {
	if err := r.db.WithContext(ctx).Save(plant).Error; err != nil {
		return nil, err
	}
	return plant, nil
}

// DeletePlant removes the plant row.
func (r *Repository) DeletePlant(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Plant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindPlantByID loads a plant with its category.
func (r *Repository) FindPlantByID(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.WithContext(ctx).Preload("Category").First(&plant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

// ListPlants returns the filtered plant page plus the unpaged total.
func (r *Repository) ListPlants(ctx context.Context, filters PlantListFilters, page pagination.Params, includeUnavailable bool) ([]models.Plant, int64, error) {
	page = pagination.Normalize(page)

	query := r.db.WithContext(ctx).Model(&models.Plant{})
	if !includeUnavailable {
		query = query.Where("status = ?", enums.PlantStatusAvailable)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if trimmed := strings.TrimSpace(filters.Query); trimmed != "" {
		like := "%" + strings.ToLower(trimmed) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(COALESCE(name_en, '')) LIKE ? OR LOWER(COALESCE(name_az, '')) LIKE ? OR LOWER(COALESCE(name_ru, '')) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plants []models.Plant
	if err := query.
		Preload("Category").
		Order(filters.Sort.orderClause()).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&plants).Error; err != nil {
		return nil, 0, err
	}
	return plants, total, nil
}

// CreateCategory inserts a new category row.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates an existing category row.
func (r *Repository) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category after detaching its plants, so the
// plants survive with a NULL category.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Plant{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindCategoryByID loads a single category.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns categories ordered by display_order. Inactive rows
// are only included on the admin path.
func (r *Repository) ListCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Model(&models.Category{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var categories []models.Category
	if err := query.Order("display_order ASC, created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateTranslationUsages appends provider usage rows.
func (r *Repository) CreateTranslationUsages(ctx context.Context, usages []models.TranslationUsage) error {
	if len(usages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&usages).Error
}
