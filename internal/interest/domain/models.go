// Package domain contains types for marketing interest capture.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// InterestedParty is an email captured from the marketing page.
type InterestedParty struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	EmailAddress string       `gorm:"column:email_address;not null" json:"email_address"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (InterestedParty) TableName() string { return "interested_parties" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, party *InterestedParty) error
}

type Service interface {
	Register(ctx context.Context, email string) (InterestedParty, error)
}

var ErrInvalidEmail = errors.New("invalid_interest_email")
