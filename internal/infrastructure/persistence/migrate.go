package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/recordkit/recordkit/internal/infrastructure/persistence/models"
)

// Migrate creates or updates the schema for every row model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UserModel{}, &models.OrderModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
