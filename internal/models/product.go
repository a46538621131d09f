// internal/models/product.go
package models

import (
	"math"
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID            string         `json:"id" gorm:"primaryKey;size:64"`
	Name          string         `json:"name" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" gorm:"type:decimal(10,2)"`
	Category      string         `json:"category" gorm:"size:100;index"`
	Image         string         `json:"image" gorm:"size:512"`
	Images        pq.StringArray `json:"images,omitempty" gorm:"type:text[]"`
	Stock         int            `json:"stock" gorm:"default:0"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int64          `json:"reviewCount" gorm:"default:0"`
	Tags          pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Valid reports whether the product reference is structurally usable.
// Persisted snapshots can carry entries from older schema versions; anything
// without an id or a primary image is treated as stale.
func (p *Product) Valid() bool {
	return p.ID != "" && p.Image != ""
}

// Sellable reports whether the product can enter a cart at all.
func (p *Product) Sellable() bool {
	return p.ID != "" && !math.IsNaN(p.Price) && !math.IsInf(p.Price, 0)
}

// Clone returns a by-value copy, including the array columns.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append(pq.StringArray(nil), p.Images...)
	}
	if p.Tags != nil {
		out.Tags = append(pq.StringArray(nil), p.Tags...)
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}
