package users

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recordkit/recordkit/internal/record"
)

// ModelName is the canonical short name user types register under.
const ModelName = "User"

// UserModel is the business-facing model for users.
type UserModel struct {
	*record.Model
}

// NewUserModel is the registry constructor for UserModel.
func NewUserModel(f *record.Factory) (any, error) {
	return &UserModel{
		Model: record.NewModel(f, f.ModelNaming().Expand(ModelName)),
	}, nil
}

// New resolves a UserModel through the factory registry.
func New(f *record.Factory) (*UserModel, error) {
	rec, err := f.CreateModel(ModelName)
	if err != nil {
		return nil, err
	}
	m, ok := rec.(*UserModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T for %q", rec, ModelName)
	}
	return m, nil
}

// dao returns the lazily resolved DAO with its concrete type.
func (m *UserModel) dao() (*UserDao, error) {
	d, err := m.DAO()
	if err != nil {
		return nil, err
	}
	ud, ok := d.(*UserDao)
	if !ok {
		return nil, fmt.Errorf("unexpected dao type %T for user model", d)
	}
	return ud, nil
}

// Create validates and persists a user. A missing ID or creation time is
// filled in before validation.
func (m *UserModel) Create(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.DateTimeCreated.IsZero() {
		user.DateTimeCreated = time.Now()
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	dao, err := m.dao()
	if err != nil {
		return err
	}
	return dao.Create(ctx, user)
}

// FindByID fetches a user by ID.
func (m *UserModel) FindByID(ctx context.Context, userID string) (*User, error) {
	dao, err := m.dao()
	if err != nil {
		return nil, err
	}
	return dao.GetByID(ctx, userID)
}

// List fetches all users ordered by creation time.
func (m *UserModel) List(ctx context.Context) ([]*User, error) {
	dao, err := m.dao()
	if err != nil {
		return nil, err
	}
	return dao.List(ctx)
}

// Remove deletes a user by ID.
func (m *UserModel) Remove(ctx context.Context, userID string) error {
	dao, err := m.dao()
	if err != nil {
		return err
	}
	return dao.DeleteByID(ctx, userID)
}
