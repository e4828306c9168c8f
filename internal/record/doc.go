// Package record implements a thin ActiveRecord-style data-access core.
// A shared Factory resolves short domain names to registered model and
// data-access-object (DAO) constructors, owns the database connection
// handle, and injects itself into everything it creates. Model and Dao
// are base types embedded by concrete domain types; they provide name
// derivation, lazy DAO resolution and transactional execution.
package record
