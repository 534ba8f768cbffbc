package repositories

import (
	"context"
	"time"

	"rentacuartos/internal/adapters/persistence/models"
)

// Exists* methods take an excludeID so update paths can re-check uniqueness
// while ignoring the record being updated. Pass 0 on create paths.

// OwnerRepository defines owner repository interface
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByID(ctx context.Context, id uint) (*models.Owner, error)
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)
	List(ctx context.Context) ([]*models.Owner, error)
	Update(ctx context.Context, owner *models.Owner) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}

// TenantRepository defines tenant repository interface
type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uint) (*models.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByINE(ctx context.Context, ine string, excludeID uint) (bool, error)
}

// RoomRepository defines room repository interface
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context) ([]*models.Room, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID uint, name string, excludeID uint) (bool, error)
	CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error)
}

// ContractRepository defines contract repository interface
type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	GetByID(ctx context.Context, id uint) (*models.Contract, error)
	List(ctx context.Context) ([]*models.Contract, error)
	ListByRoom(ctx context.Context, roomID uint) ([]*models.Contract, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*models.Contract, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]*models.Contract, error)
	Update(ctx context.Context, contract *models.Contract) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsActiveByRoom(ctx context.Context, roomID uint, excludeID uint, now time.Time) (bool, error)
	ExistsActiveByTenant(ctx context.Context, tenantID uint, excludeID uint, now time.Time) (bool, error)
	ListActive(ctx context.Context, now time.Time) ([]*models.Contract, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// PaymentRepository defines payment repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	ListByContract(ctx context.Context, contractID uint) ([]*models.Payment, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uint) error
	SumByContract(ctx context.Context, contractID uint) (float64, error)
	SumByTenant(ctx context.Context, tenantID uint) (float64, error)
	SumByDateRange(ctx context.Context, from, to time.Time) (float64, error)
}

// MaintenanceRepository defines maintenance repository interface
type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.Maintenance) error
	GetByID(ctx context.Context, id uint) (*models.Maintenance, error)
	List(ctx context.Context) ([]*models.Maintenance, error)
	ListByRoom(ctx context.Context, roomID uint) ([]*models.Maintenance, error)
	ListByStatus(ctx context.Context, status models.MaintenanceStatus) ([]*models.Maintenance, error)
	Update(ctx context.Context, m *models.Maintenance) error
	Delete(ctx context.Context, id uint) error
	SumCostByStatus(ctx context.Context, status models.MaintenanceStatus) (float64, error)
}

// FurnitureCatalogRepository defines furniture catalog repository interface
type FurnitureCatalogRepository interface {
	Create(ctx context.Context, item *models.FurnitureCatalog) error
	GetByID(ctx context.Context, id uint) (*models.FurnitureCatalog, error)
	List(ctx context.Context) ([]*models.FurnitureCatalog, error)
	Update(ctx context.Context, item *models.FurnitureCatalog) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}

// RoomFurnitureRepository defines room furniture repository interface
type RoomFurnitureRepository interface {
	Create(ctx context.Context, rf *models.RoomFurniture) error
	GetByID(ctx context.Context, id uint) (*models.RoomFurniture, error)
	GetByRoomAndCatalog(ctx context.Context, roomID, catalogID uint) (*models.RoomFurniture, error)
	ListByRoom(ctx context.Context, roomID uint) ([]*models.RoomFurniture, error)
	Update(ctx context.Context, rf *models.RoomFurniture) error
	Delete(ctx context.Context, id uint) error
}

// RoleRepository defines role repository interface
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	GetByTitle(ctx context.Context, title string) (*models.Role, error)
	List(ctx context.Context) ([]*models.Role, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByTitle(ctx context.Context, title string, excludeID uint) (bool, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}

// LoginRepository defines login repository interface
type LoginRepository interface {
	Create(ctx context.Context, login *models.Login) error
	GetByID(ctx context.Context, id uint) (*models.Login, error)
	GetByUsername(ctx context.Context, username string) (*models.Login, error)
	List(ctx context.Context) ([]*models.Login, error)
	Update(ctx context.Context, login *models.Login) error
	Delete(ctx context.Context, id uint) error
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	List(ctx context.Context) ([]*models.Notification, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*models.Notification, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id uint) error
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
	CountUnreadByTenant(ctx context.Context, tenantID uint) (int64, error)
}

// ImageRepository defines image repository interface
type ImageRepository interface {
	Create(ctx context.Context, img *models.Image) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	ListByRoom(ctx context.Context, roomID uint) ([]*models.Image, error)
	Delete(ctx context.Context, id uint) error
}

// HistoryRepository defines history repository interface
type HistoryRepository interface {
	Create(ctx context.Context, h *models.History) error
	List(ctx context.Context, offset, limit int) ([]*models.History, int64, error)
	ListByEntity(ctx context.Context, entity string, entityID uint) ([]*models.History, error)
}
