package record

import "context"

// Conn is the minimal transactional contract the core consumes. The Factory
// stores it opaquely and never inspects the implementation; isolation and
// atomicity are the backing connection's concern.
type Conn interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single active transaction on a Conn.
type Tx interface {
	Commit() error
	Rollback() error
}
