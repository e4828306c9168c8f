package users

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

// ErrUserNotFound is returned when a user ID does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserDao is the data-access object for the users table.
type UserDao struct {
	*record.Dao
	conn *persistence.GormConn
	log  logger.Logger
}

// NewUserDao is the factory constructor for UserDao. The factory's connection
// must be a GORM-backed one.
func NewUserDao(f *record.Factory) (any, error) {
	conn, err := f.Conn()
	if err != nil {
		return nil, err
	}
	gc, ok := conn.(*persistence.GormConn)
	if !ok {
		return nil, fmt.Errorf("user dao requires a gorm connection, got %T", conn)
	}
	return &UserDao{Dao: record.NewDao(f), conn: gc, log: f.Logger()}, nil
}

func (r *UserDao) Create(ctx context.Context, user *User) error {
	row := toUserRow(user)

	if err := r.conn.DB().WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("Created user with id ", user.ID)
	return nil
}

func (r *UserDao) GetByID(ctx context.Context, userID string) (*User, error) {
	var row models.UserModel
	if err := r.conn.DB().WithContext(ctx).Where("id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return toUser(&row), nil
}

func (r *UserDao) List(ctx context.Context) ([]*User, error) {
	var rows []*models.UserModel
	if err := r.conn.DB().WithContext(ctx).Order("date_time_created asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	list := make([]*User, len(rows))
	for i, row := range rows {
		list[i] = toUser(row)
	}
	return list, nil
}

func (r *UserDao) DeleteByID(ctx context.Context, userID string) error {
	if err := r.conn.DB().WithContext(ctx).Where("id = ?", userID).Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.log.Info("Deleted user with id ", userID)
	return nil
}

func toUserRow(u *User) *models.UserModel {
	return &models.UserModel{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		DateTimeCreated: u.DateTimeCreated,
	}
}

func toUser(m *models.UserModel) *User {
	return &User{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		DateTimeCreated: m.DateTimeCreated,
	}
}
