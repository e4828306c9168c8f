package orders

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/recordkit/recordkit/internal/infrastructure/persistence"
	"github.com/recordkit/recordkit/internal/infrastructure/persistence/models"
	"github.com/recordkit/recordkit/internal/pkg/logger"
	"github.com/recordkit/recordkit/internal/record"
)

// ErrOrderNotFound is returned when an order ID does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderDao is the data-access object for the orders table.
type OrderDao struct {
	*record.Dao
	conn *persistence.GormConn
	log  logger.Logger
}

// NewOrderDao is the factory constructor for OrderDao. The factory's
// connection must be a GORM-backed one.
func NewOrderDao(f *record.Factory) (any, error) {
	conn, err := f.Conn()
	if err != nil {
		return nil, err
	}
	gc, ok := conn.(*persistence.GormConn)
	if !ok {
		return nil, fmt.Errorf("order dao requires a gorm connection, got %T", conn)
	}
	return &OrderDao{Dao: record.NewDao(f), conn: gc, log: f.Logger()}, nil
}

func (r *OrderDao) Create(ctx context.Context, order *Order) error {
	row := toOrderRow(order)

	if err := r.conn.DB().WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.log.Info("Created order with id ", order.ID)
	return nil
}

func (r *OrderDao) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var row models.OrderModel
	if err := r.conn.DB().WithContext(ctx).Where("id = ?", orderID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return toOrder(&row), nil
}

func (r *OrderDao) ListByUserID(ctx context.Context, userID string) ([]*Order, error) {
	var rows []*models.OrderModel
	dbQuery := r.conn.DB().WithContext(ctx).Order("date_time_created asc")
	if userID != "" {
		dbQuery = dbQuery.Where("user_id = ?", userID)
	}
	if err := dbQuery.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	list := make([]*Order, len(rows))
	for i, row := range rows {
		list[i] = toOrder(row)
	}
	return list, nil
}

func (r *OrderDao) UpdateStatus(ctx context.Context, orderID, status string) error {
	res := r.conn.DB().WithContext(ctx).Model(&models.OrderModel{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, ErrOrderNotFound)
	}

	r.log.Info("Updated order ", orderID, " to status ", status)
	return nil
}

func toOrderRow(o *Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		Item:            o.Item,
		Quantity:        o.Quantity,
		PriceCents:      o.PriceCents,
		Status:          o.Status,
		DateTimeCreated: o.DateTimeCreated,
	}
}

func toOrder(m *models.OrderModel) *Order {
	return &Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Item:            m.Item,
		Quantity:        m.Quantity,
		PriceCents:      m.PriceCents,
		Status:          m.Status,
		DateTimeCreated: m.DateTimeCreated,
	}
}
