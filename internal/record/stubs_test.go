//go:build unit
// +build unit

package record

import (
	"context"
	"testing"

	"github.com/recordkit/recordkit/internal/pkg/testutil"
)

// stubTx counts transaction outcomes and fails on demand.
type stubTx struct {
	commits     int
	rollbacks   int
	commitErr   error
	rollbackErr error
}

func (t *stubTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *stubTx) Rollback() error {
	t.rollbacks++
	return t.rollbackErr
}

// stubConn hands out a single stubTx and counts begins.
type stubConn struct {
	begins   int
	beginErr error
	tx       *stubTx
}

func (c *stubConn) Begin(_ context.Context) (Tx, error) {
	c.begins++
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return c.tx, nil
}

// stubDao is the minimal concrete DAO used by factory and model tests.
type stubDao struct {
	*Dao
}

func newStubDao(f *Factory) (any, error) {
	return &stubDao{Dao: NewDao(f)}, nil
}

// stubModel is the minimal concrete model used by factory and model tests.
type stubModel struct {
	*Model
}

func newTestFactory(t *testing.T, conn Conn, opts ...Option) *Factory {
	t.Helper()

	f, err := NewFactory(conn, testutil.SetupTestLogger(t), opts...)
	if err != nil {
		t.Fatalf("failed to create factory: %v", err)
	}
	return f
}
