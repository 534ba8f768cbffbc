package models

import (
	"time"

	"gorm.io/gorm"
)

// NotificationType classifies notifications for filtering on the client.
type NotificationType string

const (
	NotifyGeneral        NotificationType = "general"
	NotifyPaymentDue     NotificationType = "pago pendiente"
	NotifyContractExpiry NotificationType = "contrato por vencer"
)

// Notification represents notifications table. Every notification references
// at least one of tenant or contract.
type Notification struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	TenantID   *uint            `gorm:"index" json:"tenant_id"`
	ContractID *uint            `gorm:"index" json:"contract_id"`
	Type       NotificationType `gorm:"size:30;not null;default:'general'" json:"type"`
	Title      string           `gorm:"size:150;not null" json:"title"`
	Message    string           `gorm:"type:text;not null" json:"message"`
	IsRead     bool             `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Image represents images table. The row tracks a file written to the
// images directory by the upload collaborator.
type Image struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomID       uint      `gorm:"not null;index" json:"room_id"`
	FileName     string    `gorm:"size:150;not null" json:"file_name"`
	OriginalName string    `gorm:"size:150" json:"original_name"`
	URL          string    `gorm:"size:255" json:"url"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Image) TableName() string {
	return "images"
}
