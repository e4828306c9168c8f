package record

import (
	"context"
	"fmt"

	"github.com/recordkit/recordkit/internal/pkg/logger"
)

// DAO is the behaviour every data-access object exposes to the model layer.
type DAO interface {
	Transactional(ctx context.Context, work func() error) error
}

// Dao is the base data-access object, embedded by concrete DAO types. It
// holds a back-reference to the Factory that created it and provides the
// transactional-execution primitive.
type Dao struct {
	factory *Factory
	log     logger.Logger
}

// NewDao creates the embeddable DAO base for a Factory.
func NewDao(f *Factory) *Dao {
	return &Dao{factory: f, log: f.Logger()}
}

// Factory returns the Factory this DAO was created by.
func (d *Dao) Factory() *Factory {
	return d.factory
}

// Transactional runs work inside a single database transaction. If work
// returns an error the transaction is rolled back and that error is returned
// unmodified. Otherwise the transaction is committed; a commit failure rolls
// back and returns the commit error. No retries at this layer and no
// savepoint layering: nested calls get the backing connection's semantics.
func (d *Dao) Transactional(ctx context.Context, work func() error) error {
	conn, err := d.factory.Conn()
	if err != nil {
		return err
	}
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			d.rollback(tx)
			panic(r)
		}
	}()
	if err := work(); err != nil {
		d.rollback(tx)
		return err
	}
	if err := tx.Commit(); err != nil {
		d.rollback(tx)
		return err
	}
	return nil
}

// rollback discards the transaction. A rollback failure is secondary to the
// error that caused it, so it is logged rather than returned.
func (d *Dao) rollback(tx Tx) {
	if err := tx.Rollback(); err != nil && d.log != nil {
		d.log.Error("transaction rollback failed: ", err)
	}
}
