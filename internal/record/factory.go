package record

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/pkg/logger"
)

// Constructor produces a concrete model or DAO instance. The Factory passes
// itself so the new instance can resolve its own dependencies.
type Constructor func(f *Factory) (any, error)

// Factory resolves canonical short names to registered constructors and owns
// the shared database connection handle. It is created once per request or
// session scope and passed explicitly to every Model and Dao it builds; it is
// not a process-wide singleton.
type Factory struct {
	conn        Conn
	log         logger.Logger
	daoNaming   Convention
	modelNaming Convention
	registry    map[string]Constructor
}

// Option configures a Factory at construction time. Naming conventions are
// immutable afterwards.
type Option func(*Factory)

// WithDAONaming overrides the DAO naming convention (default postfix "Dao").
func WithDAONaming(c Convention) Option {
	return func(f *Factory) { f.daoNaming = c }
}

// WithModelNaming overrides the model naming convention (default empty).
func WithModelNaming(c Convention) Option {
	return func(f *Factory) { f.modelNaming = c }
}

// NewFactory creates a Factory around a connection handle. A nil connection
// is permitted at construction; any operation that needs the database then
// fails with ErrNoConnection.
func NewFactory(conn Conn, log logger.Logger, opts ...Option) (*Factory, error) {
	f := &Factory{
		conn:        conn,
		log:         log,
		daoNaming:   Convention{Postfix: "Dao"},
		modelNaming: Convention{},
		registry:    make(map[string]Constructor),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Register binds a fully-qualified type name to a constructor. Registration
// happens once, at wiring time; duplicate names are a configuration error.
func (f *Factory) Register(fullName string, ctor Constructor) error {
	if fullName == "" {
		return fmt.Errorf("register: %w", ErrEmptyTypeName)
	}
	if _, ok := f.registry[fullName]; ok {
		return fmt.Errorf("register %q: %w", fullName, ErrAlreadyRegistered)
	}
	f.registry[fullName] = ctor
	return nil
}

// Create resolves a canonical short name through the DAO naming convention
// and instantiates the registered constructor, injecting this Factory.
func (f *Factory) Create(shortName string) (any, error) {
	return f.create(f.daoNaming.Expand(shortName))
}

// CreateModel resolves a canonical short name through the model naming
// convention and instantiates it. The result must implement Record.
func (f *Factory) CreateModel(shortName string) (Record, error) {
	inst, err := f.create(f.modelNaming.Expand(shortName))
	if err != nil {
		return nil, err
	}
	rec, ok := inst.(Record)
	if !ok {
		return nil, fmt.Errorf("create model %q: %w", shortName, ErrNotAModel)
	}
	return rec, nil
}

func (f *Factory) create(fullName string) (any, error) {
	if fullName == "" {
		return nil, fmt.Errorf("create: %w", ErrEmptyTypeName)
	}
	ctor, ok := f.registry[fullName]
	if !ok {
		return nil, fmt.Errorf("create %q: %w", fullName, ErrNotRegistered)
	}
	inst, err := ctor(f)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", fullName, err)
	}
	return inst, nil
}

// Conn returns the stored connection handle. A Factory constructed without
// one fails here with ErrNoConnection on first use.
func (f *Factory) Conn() (Conn, error) {
	if f.conn == nil {
		return nil, fmt.Errorf("factory: %w", ErrNoConnection)
	}
	return f.conn, nil
}

// Logger returns the logger the Factory injects into the DAOs it creates.
func (f *Factory) Logger() logger.Logger {
	return f.log
}

// DAONaming returns the convention used to expand DAO names.
func (f *Factory) DAONaming() Convention {
	return f.daoNaming
}

// ModelNaming returns the convention used to expand model names.
func (f *Factory) ModelNaming() Convention {
	return f.modelNaming
}
