package record

import (
	"context"
	"fmt"
)

// Record is the behaviour every concrete model exposes through its embedded
// Model base. Factory.CreateModel returns created instances as Records.
type Record interface {
	ModelName() string
	SetDAO(dao DAO)
	Transactional(ctx context.Context, work func() error) error
}

// Model is the base business-facing unit, embedded by concrete model types.
// It holds the shared Factory, the fully-qualified type name declared at
// construction, and at most one lazily resolved DAO at a time.
type Model struct {
	factory  *Factory
	fullName string
	daoName  string
	dao      DAO
}

// NewModel creates the embeddable model base. fullName is the type name the
// concrete model is registered under; the canonical model name is derived
// from it through the Factory's model naming convention.
func NewModel(f *Factory, fullName string) *Model {
	return &Model{factory: f, fullName: fullName}
}

// Factory returns the shared Factory this model resolves through.
func (m *Model) Factory() *Factory {
	return m.factory
}

// ModelName derives the canonical short name from the registered type name.
// Recomputed on every call; it is a pure function of the registered name and
// the Factory's naming configuration.
func (m *Model) ModelName() string {
	return m.factory.ModelNaming().Short(m.fullName)
}

// DAOName returns the configured DAO name, empty if none was set.
func (m *Model) DAOName() string {
	return m.daoName
}

// SetDAOName configures the DAO name exactly once. An empty name or a second
// call fails without mutating state, even when the names are equal.
func (m *Model) SetDAOName(name string) error {
	if name == "" {
		return fmt.Errorf("model %q: %w", m.ModelName(), ErrDAONameEmpty)
	}
	if m.daoName != "" {
		return fmt.Errorf("model %q: %w", m.ModelName(), ErrDAONameAlreadySet)
	}
	m.daoName = name
	return nil
}

// SetDAO injects a DAO directly, replacing any cached instance.
func (m *Model) SetDAO(dao DAO) {
	m.dao = dao
}

// DAO returns the cached DAO, creating it through the Factory on first use.
// Subsequent calls return the identical instance until ResetDAO or SetDAO.
func (m *Model) DAO() (DAO, error) {
	if m.dao != nil {
		return m.dao, nil
	}
	dao, err := m.CreateDAO("")
	if err != nil {
		return nil, err
	}
	m.dao = dao
	return m.dao, nil
}

// CreateDAO resolves a DAO through the Factory without caching it. An empty
// name falls back to the configured DAO name, then to the canonical model
// name.
func (m *Model) CreateDAO(name string) (DAO, error) {
	if name == "" {
		name = m.daoName
	}
	if name == "" {
		name = m.ModelName()
	}
	inst, err := m.factory.Create(name)
	if err != nil {
		return nil, err
	}
	dao, ok := inst.(DAO)
	if !ok {
		return nil, fmt.Errorf("create dao %q: %w", name, ErrNotADAO)
	}
	return dao, nil
}

// ResetDAO replaces the cached DAO with a freshly created instance. It never
// clears the reference to nil: the replacement is created eagerly.
func (m *Model) ResetDAO() (DAO, error) {
	dao, err := m.CreateDAO("")
	if err != nil {
		return nil, err
	}
	m.dao = dao
	return m.dao, nil
}

// CreateModel resolves a sibling model through the shared Factory. An empty
// name falls back to this model's canonical name. A non-nil dao seeds the
// new model's DAO reference.
func (m *Model) CreateModel(name string, dao DAO) (Record, error) {
	if name == "" {
		name = m.ModelName()
	}
	rec, err := m.factory.CreateModel(name)
	if err != nil {
		return nil, err
	}
	if dao != nil {
		rec.SetDAO(dao)
	}
	return rec, nil
}

// Transactional delegates to the lazily resolved DAO. The model adds no
// transaction semantics of its own.
func (m *Model) Transactional(ctx context.Context, work func() error) error {
	dao, err := m.DAO()
	if err != nil {
		return err
	}
	return dao.Transactional(ctx, work)
}
