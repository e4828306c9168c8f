// Package persistence provides the GORM-backed database layer consumed by
// the record core: connection management for SQLite and PostgreSQL, the
// transactional connection adapter, and schema migration for the row models.
package persistence
