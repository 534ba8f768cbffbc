package config

import (
	"log"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedMasterData seeds roles and the initial admin account
func SeedMasterData(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("Master data seeded")
	return nil
}

func seedRoles(db *gorm.DB) error {
	titles := []string{models.RoleAdmin, models.RoleStaff, models.RoleViewer}

	for _, title := range titles {
		var existing models.Role
		err := db.Where("title = ?", title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := db.Create(&models.Role{Title: title}).Error; err != nil {
			return err
		}
		log.Printf("   Created role: %s", title)
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var adminRole models.Role
	if err := db.Where("title = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hashed, err := password.Hash(getEnv("ADMIN_PASSWORD", "cambiame123"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@rentacuartos.mx"),
		Password: hashed,
		RoleID:   adminRole.ID,
		IsActive: true,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("   Created admin user: %s", admin.Username)
	return nil
}
