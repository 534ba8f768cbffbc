package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Status values
// ============================================================

// RoomStatus is the occupancy status of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "disponible"
	RoomOccupied    RoomStatus = "ocupado"
	RoomMaintenance RoomStatus = "mantenimiento"
)

// Valid reports whether the status is one of the known values.
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// NormalizeRoomStatus lower-cases and trims a caller-supplied status.
func NormalizeRoomStatus(v string) RoomStatus {
	return RoomStatus(strings.ToLower(strings.TrimSpace(v)))
}

// ContractStatus is the lifecycle status of a contract.
type ContractStatus string

const (
	ContractActive    ContractStatus = "activo"
	ContractFinalized ContractStatus = "finalizado"
)

func (s ContractStatus) Valid() bool {
	return s == ContractActive || s == ContractFinalized
}

// NormalizeContractStatus lower-cases and trims a caller-supplied status.
func NormalizeContractStatus(v string) ContractStatus {
	return ContractStatus(strings.ToLower(strings.TrimSpace(v)))
}

// PaymentStatus is the settlement status of a payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completado"
	PaymentPending   PaymentStatus = "pendiente"
	PaymentCancelled PaymentStatus = "cancelado"
	PaymentRejected  PaymentStatus = "rechazado"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentCompleted, PaymentPending, PaymentCancelled, PaymentRejected:
		return true
	}
	return false
}

// NormalizePaymentStatus lower-cases and trims a caller-supplied status.
func NormalizePaymentStatus(v string) PaymentStatus {
	return PaymentStatus(strings.ToLower(strings.TrimSpace(v)))
}

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "efectivo"
	MethodTransfer PaymentMethod = "transferencia"
	MethodCard     PaymentMethod = "tarjeta"
	MethodDeposit  PaymentMethod = "deposito"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard, MethodDeposit:
		return true
	}
	return false
}

// NormalizePaymentMethod lower-cases and trims a caller-supplied method.
func NormalizePaymentMethod(v string) PaymentMethod {
	return PaymentMethod(strings.ToLower(strings.TrimSpace(v)))
}

// MaintenanceStatus is the progress status of a maintenance ticket.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pendiente"
	MaintenanceInProgress MaintenanceStatus = "en proceso"
	MaintenanceCompleted  MaintenanceStatus = "completado"
	MaintenanceCancelled  MaintenanceStatus = "cancelado"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// NormalizeMaintenanceStatus lower-cases and trims a caller-supplied status.
func NormalizeMaintenanceStatus(v string) MaintenanceStatus {
	return MaintenanceStatus(strings.ToLower(strings.TrimSpace(v)))
}

// ============================================================
// Core entities
// ============================================================

// Owner represents owners table
type Owner struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100;not null" json:"last_name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Address   string         `gorm:"size:255" json:"address"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Owner) TableName() string {
	return "owners"
}

// FullName returns the owner's display name.
func (o *Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// Tenant represents tenants table
type Tenant struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	FirstName        string         `gorm:"size:100;not null" json:"first_name"`
	LastName         string         `gorm:"size:100;not null" json:"last_name"`
	Email            string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	INE              string         `gorm:"column:ine;uniqueIndex;size:20;not null" json:"ine"`
	Phone            string         `gorm:"size:20" json:"phone"`
	EmergencyContact string         `gorm:"size:100" json:"emergency_contact"`
	Occupation       string         `gorm:"size:100" json:"occupation"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// FullName returns the tenant's display name.
func (t *Tenant) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// Room represents rooms table
type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"not null;index" json:"owner_id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      RoomStatus     `gorm:"size:20;not null;default:'disponible'" json:"status"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Owner *Owner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}

// Contract represents contracts table
type Contract struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoomID    uint           `gorm:"not null;index" json:"room_id"`
	TenantID  uint           `gorm:"not null;index" json:"tenant_id"`
	StartDate time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time     `gorm:"type:date" json:"end_date"`
	Rent      float64        `gorm:"type:decimal(10,2);not null" json:"rent"`
	Deposit   float64        `gorm:"type:decimal(10,2)" json:"deposit"`
	Status    ContractStatus `gorm:"size:20;not null;default:'activo'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Room   *Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}

// IsActive reports whether the contract is still running: status activo and
// end date null or in the future.
func (c *Contract) IsActive(now time.Time) bool {
	if c.Status != ContractActive {
		return false
	}
	return c.EndDate == nil || c.EndDate.After(now)
}

// Payment represents payments table
type Payment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ContractID  uint           `gorm:"not null;index" json:"contract_id"`
	TenantID    uint           `gorm:"not null;index" json:"tenant_id"`
	Amount      float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method      PaymentMethod  `gorm:"size:20;not null" json:"method"`
	Status      PaymentStatus  `gorm:"size:20;not null;default:'pendiente'" json:"status"`
	PaymentDate time.Time      `gorm:"type:date;not null" json:"payment_date"`
	Reference   string         `gorm:"size:100" json:"reference"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// Maintenance represents maintenances table
type Maintenance struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	RoomID        uint              `gorm:"not null;index" json:"room_id"`
	Description   string            `gorm:"type:text;not null" json:"description"`
	ReportDate    time.Time         `gorm:"type:date;not null" json:"report_date"`
	AttentionDate *time.Time        `gorm:"type:date" json:"attention_date"`
	Cost          float64           `gorm:"type:decimal(10,2)" json:"cost"`
	Status        MaintenanceStatus `gorm:"size:20;not null;default:'pendiente'" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relations
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Maintenance) TableName() string {
	return "maintenances"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&Login{},
		&Owner{},
		&Tenant{},
		&Room{},
		&FurnitureCatalog{},
		&RoomFurniture{},
		&Contract{},
		&Payment{},
		&Maintenance{},
		&Notification{},
		&Image{},
		&History{},
	)
}
