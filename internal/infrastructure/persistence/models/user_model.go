package models

import "time"

// UserModel is the GORM database model for users (infrastructure concern).
// Mapping to and from the domain entity lives in the user DAO.
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
