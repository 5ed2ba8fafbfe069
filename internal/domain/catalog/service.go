// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/allithy/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product id does not exist.
var ErrNotFound = errors.New("product not found")

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	TitleAR       string   `json:"title_ar" binding:"required"`
	TitleEN       string   `json:"title_en" binding:"required"`
	DescriptionAR string   `json:"description_ar" binding:"required"`
	DescriptionEN string   `json:"description_en" binding:"required"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Icon          string   `json:"icon"`
	Images        []string `json:"images"`
	Active        *bool    `json:"active"`
}

// ProductUpdateRequest represents partial product update data
type ProductUpdateRequest struct {
	TitleAR       *string   `json:"title_ar"`
	TitleEN       *string   `json:"title_en"`
	DescriptionAR *string   `json:"description_ar"`
	DescriptionEN *string   `json:"description_en"`
	Price         *float64  `json:"price"`
	Category      *string   `json:"category"`
	Icon          *string   `json:"icon"`
	Images        *[]string `json:"images"`
	Active        *bool     `json:"active"`
}

// ListActive retrieves customer-facing products, newest first.
func (s *Service) ListActive() ([]Product, error) {
	var products []Product
	err := s.db.
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// ListAll retrieves every product for the admin view, inactive included.
func (s *Service) ListAll() ([]Product, error) {
	var products []Product
	err := s.db.
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// Get retrieves a single product by ID
func (s *Service) Get(id string) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// Create validates and inserts a new product
func (s *Service) Create(req *ProductCreateRequest) (*Product, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := Product{
		TitleAR:       req.TitleAR,
		TitleEN:       req.TitleEN,
		DescriptionAR: req.DescriptionAR,
		DescriptionEN: req.DescriptionEN,
		Price:         req.Price,
		Category:      req.Category,
		Icon:          req.Icon,
		Images:        ImageList(req.Images),
		Active:        active,
	}
	product.Normalize()

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// Update applies a partial update to an existing product
func (s *Service) Update(id string, req *ProductUpdateRequest) (*Product, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}

	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.TitleAR != nil {
		updates["title_ar"] = *req.TitleAR
	}
	if req.TitleEN != nil {
		updates["title_en"] = *req.TitleEN
	}
	if req.DescriptionAR != nil {
		updates["description_ar"] = *req.DescriptionAR
	}
	if req.DescriptionEN != nil {
		updates["description_en"] = *req.DescriptionEN
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Images != nil {
		updates["images"] = ImageList(*req.Images)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.Get(id)
}

// SoftDelete marks a product inactive. Customer listings stop showing it;
// the admin listing keeps it, flagged.
func (s *Service) SoftDelete(id string) error {
	result := s.db.Model(&Product{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PermanentDelete removes a record for good. Admin-only escape hatch;
// normal flows use SoftDelete.
func (s *Service) PermanentDelete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to permanently delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) validateCreate(req *ProductCreateRequest) error {
	if req.TitleAR == "" || req.TitleEN == "" {
		return fmt.Errorf("title is required in both languages")
	}
	if req.DescriptionAR == "" || req.DescriptionEN == "" {
		return fmt.Errorf("description is required in both languages")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if utf8.RuneCountInString(req.Icon) > 2 {
		return fmt.Errorf("icon must be at most 2 characters")
	}
	if len(req.Images) > s.config.Upload.MaxImages {
		return fmt.Errorf("maximum %d images allowed", s.config.Upload.MaxImages)
	}
	return nil
}

// validateUpdate rejects partial updates that would blank a required
// bilingual field. Titles and descriptions must stay non-empty in both
// languages; omitting a field leaves it untouched.
func (s *Service) validateUpdate(req *ProductUpdateRequest) error {
	if (req.TitleAR != nil && *req.TitleAR == "") || (req.TitleEN != nil && *req.TitleEN == "") {
		return fmt.Errorf("title is required in both languages")
	}
	if (req.DescriptionAR != nil && *req.DescriptionAR == "") || (req.DescriptionEN != nil && *req.DescriptionEN == "") {
		return fmt.Errorf("description is required in both languages")
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if req.Icon != nil && utf8.RuneCountInString(*req.Icon) > 2 {
		return fmt.Errorf("icon must be at most 2 characters")
	}
	if req.Images != nil && len(*req.Images) > s.config.Upload.MaxImages {
		return fmt.Errorf("maximum %d images allowed", s.config.Upload.MaxImages)
	}
	return nil
}
