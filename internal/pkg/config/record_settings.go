package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default naming convention values
const (
	DefaultDaoPostfix = "Dao"
)

// RecordSettings holds the naming conventions the record factory uses to
// expand canonical short names into registered type names. Models and DAOs
// carry independent, symmetric conventions.
type RecordSettings struct {
	ModelPrefix  string `mapstructure:"model_prefix" validate:"excludesall=0x20"`
	ModelPostfix string `mapstructure:"model_postfix" validate:"excludesall=0x20"`
	DaoPrefix    string `mapstructure:"dao_prefix" validate:"excludesall=0x20"`
	DaoPostfix   string `mapstructure:"dao_postfix" validate:"excludesall=0x20"`
}

// DefaultRecordSettings returns the conventions used when none are configured.
func DefaultRecordSettings() RecordSettings {
	return RecordSettings{DaoPostfix: DefaultDaoPostfix}
}

// Validate checks that all fields in RecordSettings are valid
func (s *RecordSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RecordSettings: %w", err)
	}

	return nil
}
