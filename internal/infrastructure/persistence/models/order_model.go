package models

import "time"

// OrderModel is the GORM database model for orders (infrastructure concern).
// Mapping to and from the domain entity lives in the order DAO.
type OrderModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	Item            string    `gorm:"not null;type:varchar(255)"`
	Quantity        int       `gorm:"not null;type:integer"`
	PriceCents      int64     `gorm:"not null;type:bigint"`
	Status          string    `gorm:"not null;type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}
