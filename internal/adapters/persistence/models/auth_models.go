package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents roles table
type Role struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"uniqueIndex;size:50;not null" json:"title"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Role) TableName() string {
	return "roles"
}

// Well-known role titles seeded at startup.
const (
	RoleAdmin  = "ADMIN"
	RoleStaff  = "STAFF"
	RoleViewer = "VIEWER"
)

// User represents users table (staff accounts)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	RoleID    uint           `gorm:"not null" json:"role_id"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	RoleTitle string    `json:"role_title,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    u.RoleID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Role != nil {
		resp.RoleTitle = u.Role.Title
	}
	return resp
}

// Login represents logins table: portal credentials that may be linked to an
// owner or a tenant. A login with neither link is a guest account.
type Login struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	RoleID    uint           `gorm:"not null" json:"role_id"`
	OwnerID   *uint          `gorm:"index" json:"owner_id"`
	TenantID  *uint          `gorm:"index" json:"tenant_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Role   *Role   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Owner  *Owner  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Login) TableName() string {
	return "logins"
}

// LoginResponse DTO
type LoginResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	RoleID    uint      `json:"role_id"`
	OwnerID   *uint     `json:"owner_id"`
	TenantID  *uint     `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Login) ToResponse() *LoginResponse {
	return &LoginResponse{
		ID:        l.ID,
		Username:  l.Username,
		RoleID:    l.RoleID,
		OwnerID:   l.OwnerID,
		TenantID:  l.TenantID,
		CreatedAt: l.CreatedAt,
	}
}

// History represents history table: append-only audit log of lifecycle
// actions performed through the services.
type History struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	Entity      string    `gorm:"size:50;not null;index" json:"entity"`
	EntityID    uint      `gorm:"not null;index" json:"entity_id"`
	Detail      string    `gorm:"type:text" json:"detail"`
	PerformedBy string    `gorm:"size:100" json:"performed_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (History) TableName() string {
	return "history"
}

// History actions
const (
	ActionCreate   = "CREATE"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionFinalize = "FINALIZE"
)
