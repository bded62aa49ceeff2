package main

import (
	"fmt"

	"hireflow/internal/model"
	"hireflow/pkg/config"
	"hireflow/pkg/database"
	"hireflow/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.DepartmentModel{},
		&model.HiringRequestModel{},
		&model.NotificationModel{},
	); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	departments := []string{"Production", "Quality", "Maintenance", "Logistics", "Human Resources"}
	for _, name := range departments {
		var existing model.DepartmentModel
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&model.DepartmentModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create department %s: %w", name, err)
		}
		log.Info("Created department %s", name)
	}

	// Role strings match what the legacy data carries, including the
	// "plant manger" spelling and mixed casing.
	testUsers := []struct {
		email    string
		username string
		password string
		role     string
	}{
		{"alice@hireflow.local", "alice", "password123", "demander"},
		{"bob@hireflow.local", "bob", "password123", "responsable RH"},
		{"carol@hireflow.local", "carol", "password123", "responsable recrutement"},
		{"daniel@hireflow.local", "daniel", "password123", "drh"},
		{"erin@hireflow.local", "erin", "password123", "plant manger"},
	}

	for _, u := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.username, err)
		}

		user := model.UserModel{
			Email:    u.email,
			Username: u.username,
			Password: string(hashedPassword),
			Role:     u.role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		log.Info("Created user %s (%s)", u.username, u.role)
	}

	return nil
}
