package record

import "errors"

var (
	// ErrNoConnection is returned when a database-requiring operation runs
	// on a Factory that was constructed without a connection handle. This
	// is a wiring mistake, not a condition to recover from.
	ErrNoConnection = errors.New("no database connection configured")

	// ErrNotRegistered is returned when a fully-qualified type name has no
	// constructor in the factory registry.
	ErrNotRegistered = errors.New("type is not registered with the factory")

	// ErrAlreadyRegistered is returned when a type name is registered twice.
	ErrAlreadyRegistered = errors.New("type is already registered with the factory")

	// ErrEmptyTypeName is returned when an empty name is registered or resolved.
	ErrEmptyTypeName = errors.New("type name must not be empty")

	// ErrDAONameEmpty is returned when SetDAOName is called with an empty name.
	ErrDAONameEmpty = errors.New("dao name must not be empty")

	// ErrDAONameAlreadySet is returned when SetDAOName is called a second
	// time, regardless of whether the two names are equal.
	ErrDAONameAlreadySet = errors.New("dao name has already been set")

	// ErrNotADAO is returned when a resolved type does not implement DAO.
	ErrNotADAO = errors.New("resolved type is not a data-access object")

	// ErrNotAModel is returned when a resolved type does not implement Record.
	ErrNotAModel = errors.New("resolved type is not a model")
)
