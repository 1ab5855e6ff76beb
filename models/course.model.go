package models

import "gorm.io/gorm"

// Course represents a sellable course in the catalog
type Course struct {
	gorm.Model
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Price            int     `json:"price" gorm:"default:0"` // integer currency units
	ThumbnailURL     string  `json:"thumbnail_url"`
	Category         string  `json:"category" gorm:"default:'General'"`
	Rating           float64 `json:"rating" gorm:"default:4.8"`
	IsPublished      bool    `json:"is_published" gorm:"default:false"`
	ShopifyProductID string  `json:"shopify_product_id" gorm:"index"`
	ShopifyVariantID string  `json:"shopify_variant_id"`
	IsDeleted        bool    `gorm:"default:false"`
}

// ApplyDefaults fills the effective catalog defaults for rows created
// without a category or rating.
func (course *Course) ApplyDefaults() {
	if course.Category == "" {
		course.Category = "General"
	}
	if course.Rating == 0 {
		course.Rating = 4.8
	}
}
