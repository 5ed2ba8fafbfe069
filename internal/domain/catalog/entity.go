// internal/domain/catalog/entity.go
package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allithy/storefront-backend/internal/i18n"
	"gorm.io/gorm"
)

// ImageList stores the ordered product image URLs as a JSONB column.
// The first entry is the primary image.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for ImageList: %T", value)
	}

	return json.Unmarshal(data, l)
}

// Product represents a catalog record. Titles and descriptions are
// bilingual and both variants are required. A zero price means the price
// is quoted on request.
type Product struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TitleAR       string    `gorm:"not null;size:255" json:"title_ar"`
	TitleEN       string    `gorm:"not null;size:255" json:"title_en"`
	DescriptionAR string    `gorm:"type:text;not null" json:"description_ar"`
	DescriptionEN string    `gorm:"type:text;not null" json:"description_en"`
	Price         float64   `gorm:"type:numeric(10,2);default:0" json:"price"`
	Category      string    `gorm:"size:100" json:"category,omitempty"`
	Icon          string    `gorm:"size:8" json:"icon"`
	Images        ImageList `gorm:"type:jsonb" json:"images"`
	ImageURL      string    `gorm:"size:500" json:"image_url,omitempty"` // legacy single-image column
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// AfterFind normalizes legacy records at the data-access boundary: a
// record carrying only the old image_url column is folded into Images so
// callers never branch on which field is present.
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.Normalize()
	return nil
}

// Normalize guarantees a non-nil Images sequence, promoting the legacy
// single URL when the list is empty.
func (p *Product) Normalize() {
	if len(p.Images) == 0 && p.ImageURL != "" {
		p.Images = ImageList{p.ImageURL}
	}
	if p.Images == nil {
		p.Images = ImageList{}
	}
}

// PrimaryImage returns the first image URL, or "" for an imageless record.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.ImageURL
}

// HasPrice reports whether the product carries a quotable price.
// Zero and negative values mean "price on request".
func (p *Product) HasPrice() bool {
	return p.Price > 0
}

// Title returns the localized title.
func (p *Product) Title(lang i18n.Language) string {
	if lang == i18n.Arabic {
		return p.TitleAR
	}
	return p.TitleEN
}

// Description returns the localized description.
func (p *Product) Description(lang i18n.Language) string {
	if lang == i18n.Arabic {
		return p.DescriptionAR
	}
	return p.DescriptionEN
}
