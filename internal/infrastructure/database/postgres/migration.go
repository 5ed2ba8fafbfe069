// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/allithy/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("Running database auto-migrations...")

	models := []interface{}{
		&catalog.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_active_created ON products(active, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData inserts the starter catalog when the products table is
// empty. Intended for development environments only.
func (m *Migration) SeedInitialData() error {
	log.Println("Seeding initial data...")

	if err := m.seedStarterCatalog(); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Println("Initial data seeded")
	return nil
}

func (m *Migration) seedStarterCatalog() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Catalog already has %d products, skipping seed", count)
		return nil
	}

	products := []catalog.Product{
		{
			TitleAR:       "إكسسوارات فوتوغرافية",
			TitleEN:       "Photographic Accessories",
			DescriptionAR: "مجموعة شاملة من مستلزمات التصوير الفوتوغرافي الاحترافي ومعدات الاستوديو.",
			DescriptionEN: "A comprehensive range of professional photography essentials and studio equipment.",
			Icon:          "📸",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "مواد الطباعة",
			TitleEN:       "Printing Materials",
			DescriptionAR: "أحبار ومواد طباعة عالية الجودة لمختلف أنواع الطابعات الاحترافية.",
			DescriptionEN: "High-quality inks and printing substrates for various professional printer models.",
			Icon:          "🖨️",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "أفلام التغليف الحراري",
			TitleEN:       "Lamination Films",
			DescriptionAR: "أفلام حماية وتغليف حراري للمستندات والصور بلمسات مطفية ولامعة.",
			DescriptionEN: "Protective lamination films for documents and photos in matte and glossy finishes.",
			Icon:          "📄",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1626785774573-4b799315345d?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "ورق صور (إبسون)",
			TitleEN:       "Photo Paper (EPSON)",
			DescriptionAR: "ورق طباعة صور متخصص ومحسن لطابعات إبسون لضمان أفضل دقة ألوان.",
			DescriptionEN: "Specialized photo printing paper optimized for EPSON printers to ensure color accuracy.",
			Icon:          "🖼️",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1603484477859-abe6a73f9366?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "لاصق بوجهين",
			TitleEN:       "Double-sided Stickers",
			DescriptionAR: "لفائف لاصقة مزدوجة عالية القوة لتثبيت الصور واللوحات الفنية.",
			DescriptionEN: "High-strength double-sided adhesive rolls for mounting photos and artworks.",
			Icon:          "🎞️",
			Images:        catalog.ImageList{"/dbs.webp"},
			Active:        true,
		},
		{
			TitleAR:       "مواد صناعة الألبومات",
			TitleEN:       "Album Making Materials",
			DescriptionAR: "كل ما تحتاجه لصناعة ألبومات صور احترافية وفاخرة من الجلد والمخمل.",
			DescriptionEN: "Everything you need to craft professional luxury photo albums in leather and velvet.",
			Icon:          "📓",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1544377193-33dcf4d68fb5?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "ألبومات الأعراس الرقمية",
			TitleEN:       "Digital Wedding Albums",
			DescriptionAR: "تصاميم ومواد حصرية لألبومات حفلات الزفاف الرقمية الحديثة.",
			DescriptionEN: "Exclusive designs and materials for modern digital wedding ceremony albums.",
			Icon:          "💍",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1511285560929-80b456fea0bc?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
		{
			TitleAR:       "إطارات الصور",
			TitleEN:       "Photo Frames",
			DescriptionAR: "إطارات متنوعة كلاسيكية وحديثة تناسب جميع المقاسات والأذواق.",
			DescriptionEN: "Diverse classic and modern photo frames catering to all sizes and tastes.",
			Icon:          "🖼️",
			Images:        catalog.ImageList{"https://images.unsplash.com/photo-1513519245088-0e12902e5a38?auto=format&fit=crop&q=80&w=800"},
			Active:        true,
		},
	}

	for _, p := range products {
		product := p
		if err := m.db.Create(&product).Error; err != nil {
			return err
		}
		log.Printf("Created product: %s", product.TitleEN)
	}

	return nil
}

// DropAllTables drops every managed table. Used by development tooling only.
func (m *Migration) DropAllTables() error {
	return m.db.Migrator().DropTable(&catalog.Product{})
}
