// Package domain contains core types for the product catalog.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the moderation state of a submitted product.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Product is a community-submitted project awaiting or past moderation.
// SubmittedAt is assigned once at creation and is the ordering key for
// every listing.
type Product struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Slug        string       `gorm:"not null;index" json:"slug"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `gorm:"not null" json:"description"`
	Category    string       `gorm:"not null;index" json:"category"`
	Country     string       `gorm:"not null;index" json:"country"`
	Logo        string       `gorm:"not null" json:"logo"`
	Website     *string      `json:"website,omitempty"`
	Twitter     *string      `json:"twitter,omitempty"`
	Github      *string      `json:"github,omitempty"`
	Status      Status       `gorm:"not null;index" json:"status"`
	SubmittedAt time.Time    `gorm:"column:submitted_at;not null;index" json:"submitted_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// PublicProduct is the field subset served to anonymous clients. Moderation
// state never leaves the admin surface.
type PublicProduct struct {
	ID          snowflake.ID `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Country     string       `json:"country"`
	Logo        string       `json:"logo"`
	Website     *string      `json:"website,omitempty"`
	Twitter     *string      `json:"twitter,omitempty"`
	Github      *string      `json:"github,omitempty"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// Public projects the record onto its public-safe subset.
func (p Product) Public() PublicProduct {
	return PublicProduct{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Country:     p.Country,
		Logo:        p.Logo,
		Website:     p.Website,
		Twitter:     p.Twitter,
		Github:      p.Github,
		SubmittedAt: p.SubmittedAt,
	}
}
