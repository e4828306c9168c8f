package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recordkit/recordkit/internal/domain/users"
	"github.com/recordkit/recordkit/internal/record"
)

// ModelName is the canonical short name order types register under.
const ModelName = "Order"

// OrderModel is the business-facing model for orders.
type OrderModel struct {
	*record.Model
}

// NewOrderModel is the registry constructor for OrderModel.
func NewOrderModel(f *record.Factory) (any, error) {
	return &OrderModel{
		Model: record.NewModel(f, f.ModelNaming().Expand(ModelName)),
	}, nil
}

// New resolves an OrderModel through the factory registry.
func New(f *record.Factory) (*OrderModel, error) {
	rec, err := f.CreateModel(ModelName)
	if err != nil {
		return nil, err
	}
	m, ok := rec.(*OrderModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T for %q", rec, ModelName)
	}
	return m, nil
}

// dao returns the lazily resolved DAO with its concrete type.
func (m *OrderModel) dao() (*OrderDao, error) {
	d, err := m.DAO()
	if err != nil {
		return nil, err
	}
	od, ok := d.(*OrderDao)
	if !ok {
		return nil, fmt.Errorf("unexpected dao type %T for order model", d)
	}
	return od, nil
}

// Place validates an order, confirms the ordering user exists and persists
// the order, all inside a single transaction. The user model is resolved as
// a sibling through the shared factory.
func (m *OrderModel) Place(ctx context.Context, order *Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = StatusPlaced
	}
	if order.DateTimeCreated.IsZero() {
		order.DateTimeCreated = time.Now()
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return m.Transactional(ctx, func() error {
		rec, err := m.CreateModel(users.ModelName, nil)
		if err != nil {
			return err
		}
		userModel, ok := rec.(*users.UserModel)
		if !ok {
			return fmt.Errorf("unexpected model type %T for %q", rec, users.ModelName)
		}

		if _, err := userModel.FindByID(ctx, order.UserID); err != nil {
			return err
		}

		dao, err := m.dao()
		if err != nil {
			return err
		}
		return dao.Create(ctx, order)
	})
}

// FindByID fetches an order by ID.
func (m *OrderModel) FindByID(ctx context.Context, orderID string) (*Order, error) {
	dao, err := m.dao()
	if err != nil {
		return nil, err
	}
	return dao.GetByID(ctx, orderID)
}

// List fetches orders, optionally filtered by user ID.
func (m *OrderModel) List(ctx context.Context, userID string) ([]*Order, error) {
	dao, err := m.dao()
	if err != nil {
		return nil, err
	}
	return dao.ListByUserID(ctx, userID)
}

// Cancel marks an order cancelled inside a transaction.
func (m *OrderModel) Cancel(ctx context.Context, orderID string) error {
	return m.Transactional(ctx, func() error {
		dao, err := m.dao()
		if err != nil {
			return err
		}
		return dao.UpdateStatus(ctx, orderID, StatusCancelled)
	})
}
