package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/recordkit/recordkit/internal/record"
)

// GormConn adapts a *gorm.DB to the record.Conn contract. While a transaction
// started through Begin is active, DB returns the transaction session so that
// DAO operations invoked inside a unit of work run on it. The record layer is
// single-threaded per connection; concurrent use of one GormConn is the
// caller's concern.
type GormConn struct {
	db      *gorm.DB
	current *gorm.DB
}

var _ record.Conn = (*GormConn)(nil)

// NewGormConn wraps an open gorm handle for use by the record factory.
func NewGormConn(db *gorm.DB) *GormConn {
	return &GormConn{db: db}
}

// DB returns the session DAO operations should run on: the active transaction
// when one is open, the base handle otherwise.
func (c *GormConn) DB() *gorm.DB {
	if c.current != nil {
		return c.current
	}
	return c.db
}

// Begin opens a transaction and makes it the current session.
func (c *GormConn) Begin(ctx context.Context) (record.Tx, error) {
	tx := c.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	c.current = tx
	return &gormTx{conn: c, tx: tx}, nil
}

type gormTx struct {
	conn *GormConn
	tx   *gorm.DB
}

var _ record.Tx = (*gormTx)(nil)

// Commit finishes the transaction and restores the base session.
func (t *gormTx) Commit() error {
	t.conn.current = nil
	return t.tx.Commit().Error
}

// Rollback discards the transaction and restores the base session.
func (t *gormTx) Rollback() error {
	t.conn.current = nil
	return t.tx.Rollback().Error
}
