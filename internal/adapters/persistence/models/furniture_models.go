package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// FurnitureCondition is the physical state of a furniture item in a room.
type FurnitureCondition string

const (
	ConditionGood        FurnitureCondition = "bueno"
	ConditionFair        FurnitureCondition = "regular"
	ConditionPoor        FurnitureCondition = "malo"
	ConditionNeedsRepair FurnitureCondition = "requiere reparacion"
)

func (c FurnitureCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionPoor, ConditionNeedsRepair:
		return true
	}
	return false
}

// NormalizeCondition lower-cases and trims a caller-supplied condition.
func NormalizeCondition(v string) FurnitureCondition {
	return FurnitureCondition(strings.ToLower(strings.TrimSpace(v)))
}

// FurnitureCatalog represents furniture_catalog table
type FurnitureCatalog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FurnitureCatalog) TableName() string {
	return "furniture_catalog"
}

// RoomFurniture represents room_furniture table. One row per (room, catalog
// item) pair.
type RoomFurniture struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	RoomID    uint               `gorm:"not null;index:idx_room_catalog,unique" json:"room_id"`
	CatalogID uint               `gorm:"not null;index:idx_room_catalog,unique" json:"catalog_id"`
	Quantity  int                `gorm:"not null" json:"quantity"`
	Condition FurnitureCondition `gorm:"size:30;not null;default:'bueno'" json:"condition"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Room    *Room             `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Catalog *FurnitureCatalog `gorm:"foreignKey:CatalogID" json:"catalog,omitempty"`
}

func (RoomFurniture) TableName() string {
	return "room_furniture"
}
