package migrations

import (
	"log"
	"time"

	"lab_dashboard/internal/models"
	"lab_dashboard/internal/repository"
	"lab_dashboard/internal/services"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Force recreate all tables to ensure proper schema
	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.User{},
		&models.Client{},
		&models.ServiceOrder{},
		&models.LegacyOrder{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.ServiceOrder{},
		&models.LegacyOrder{},
	)
	if err != nil {
		return err
	}

	// Create default data
	err = createDefaultData(db)
	if err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData creates the default admin user and a demo client so a
// fresh install renders a non-empty dashboard.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	// Check if admin already exists
	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		log.Println("Admin user already exists")
		return nil
	}

	log.Println("Creating admin user...")
	admin := &models.User{
		Username:    "admin",
		Email:       "admin@lab.local",
		Role:        string(models.RoleAdmin),
		DisplayName: "Administrator",
		IsActive:    true,
	}

	err = userService.CreateUser(admin, "admin123")
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created successfully")
		log.Println("Username: admin")
		log.Println("Password: admin123")
	}

	// Demo client and order
	client := &models.Client{
		Name:               "Demo Laboratory Client",
		RepresentativeName: "Demo Rep",
		CoordinatorName:    "Demo Coordinator",
	}
	if err := db.Create(client).Error; err != nil {
		return err
	}

	intake := time.Now().AddDate(0, 0, -3)
	order := &models.ServiceOrder{
		OrderCode:   "1000",
		ClientID:    client.ID,
		IntakeDate:  &intake,
		SampleCount: 12,
		CreatedBy:   1,
	}
	if err := db.Create(order).Error; err != nil {
		return err
	}

	log.Println("Default data created successfully!")
	return nil
}
