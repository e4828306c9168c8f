// Package models contains the GORM row models persisted by the database
// layer. They are kept free of domain imports so that domain packages can
// depend on the persistence layer without cycles.
package models
