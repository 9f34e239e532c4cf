package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jamtrips/internal/domain"
)

// ErrAdminExists is returned when the one-time admin bootstrap runs
// after an admin account was already created.
var ErrAdminExists = errors.New("admin already exists")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB {
	return r.db
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateFirstAdmin inserts the bootstrap admin inside one transaction.
// The admin-count re-check runs in the same transaction as the insert,
// so two racing bootstrap calls cannot both create a principal.
func (r *UserRepository) CreateFirstAdmin(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("role = ?", domain.RoleAdmin).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAdminExists
		}

		user.Role = domain.RoleAdmin
		return tx.Create(user).Error
	})
}

// CountAdmins reports how many admin accounts exist. The bootstrap
// endpoint refuses to run when this is non-zero.
func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", domain.RoleAdmin).
		Count(&count).Error
	return count, err
}
