package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("client not found")

// Client is a borrower. Purely referential: it carries no financial state.
type Client struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	ClientID     string         `gorm:"size:32;uniqueIndex:ux_clients_client_id_active" json:"client_id"`
	Name         string         `gorm:"size:255" json:"name"`
	NationalID   string         `gorm:"size:64;index" json:"national_id"`
	Phone        string         `gorm:"size:32" json:"phone"`
	Email        string         `gorm:"size:255" json:"email,omitempty"`
	Address      string         `gorm:"type:text" json:"address,omitempty"`
	ReferredBy   string         `gorm:"size:255" json:"referred_by,omitempty"`
	RegisteredAt time.Time      `json:"registered_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clients" }
