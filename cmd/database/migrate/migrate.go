package migration

import (
	"MediAssist-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Prescription{}); err != nil {
		log.Fatalf("Error migrating prescription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Medicine{}); err != nil {
		log.Fatalf("Error migrating medicine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ChatMessage{}); err != nil {
		log.Fatalf("Error migrating chat message database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Alert{}); err != nil {
		log.Fatalf("Error migrating alert database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
