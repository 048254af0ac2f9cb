// Package domain contains core types for found-item inventory.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Categories a found item can be filed under.
const (
	CategoryWallets     = "wallets"
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryJewelry     = "jewelry"
	CategoryKeys        = "keys"
	CategoryDocuments   = "documents"
	CategoryBags        = "bags"
	CategoryOther       = "other"
)

// Lifecycle statuses for a found item.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusClaimed  = "claimed"
	StatusReturned = "returned"
	StatusDonated  = "donated"
	StatusDisposed = "disposed"
	StatusArchived = "archived"
)

// Categories lists the accepted item categories.
var Categories = []string{
	CategoryWallets,
	CategoryElectronics,
	CategoryClothing,
	CategoryJewelry,
	CategoryKeys,
	CategoryDocuments,
	CategoryBags,
	CategoryOther,
}

// Statuses lists the accepted item statuses.
var Statuses = []string{
	StatusPending,
	StatusActive,
	StatusClaimed,
	StatusReturned,
	StatusDonated,
	StatusDisposed,
	StatusArchived,
}

// MinDateFound bounds how far back a found date may be recorded.
var MinDateFound = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func IsValidCategory(value string) bool {
	for _, category := range Categories {
		if category == value {
			return true
		}
	}
	return false
}

func IsValidStatus(value string) bool {
	for _, status := range Statuses {
		if status == value {
			return true
		}
	}
	return false
}

// Item is a single found object registered at a location.
type Item struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	LocationID       uuid.UUID    `gorm:"column:location_id;type:uuid;not null;index" json:"location_id"`
	AddedByUserID    uuid.UUID    `gorm:"column:added_by_user_id;type:uuid;not null" json:"added_by_user_id"`
	Title            string       `gorm:"not null" json:"title"`
	Category         string       `gorm:"not null" json:"category"`
	FoundAt          string       `gorm:"column:found_at" json:"found_at"`
	DateFound        time.Time    `gorm:"column:date_found;not null" json:"date_found"`
	BriefDescription string       `gorm:"column:brief_description" json:"brief_description"`
	StaffDetails     string       `gorm:"column:staff_details" json:"staff_details"`
	Status           string       `gorm:"not null;default:pending" json:"status"`
	IsPublic         bool         `gorm:"column:is_public;not null;default:false" json:"is_public"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "items" }

// PublicItem is the customer-facing projection. Staff notes stay private.
type PublicItem struct {
	ID               snowflake.ID `json:"id"`
	LocationID       uuid.UUID    `json:"location_id"`
	Title            string       `json:"title"`
	Category         string       `json:"category"`
	FoundAt          string       `json:"found_at"`
	DateFound        time.Time    `json:"date_found"`
	BriefDescription string       `json:"brief_description"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Public strips staff-only fields from an item.
func (i Item) Public() PublicItem {
	return PublicItem{
		ID:               i.ID,
		LocationID:       i.LocationID,
		Title:            i.Title,
		Category:         i.Category,
		FoundAt:          i.FoundAt,
		DateFound:        i.DateFound,
		BriefDescription: i.BriefDescription,
		CreatedAt:        i.CreatedAt,
	}
}
