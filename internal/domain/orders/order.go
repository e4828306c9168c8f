package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Order status constants
const (
	StatusPending   = "pending"
	StatusPlaced    = "placed"
	StatusCancelled = "cancelled"
)

// Order entity
type Order struct {
	ID              string    `validate:"required,uuid4"`
	UserID          string    `validate:"required,uuid4"`
	Item            string    `validate:"required,min=1,max=255"`
	Quantity        int       `validate:"required,min=1"`
	PriceCents      int64     `validate:"required,min=1"`
	Status          string    `validate:"required,oneof=pending placed cancelled"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
