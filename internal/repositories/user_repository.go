package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID uint) (*dbm.User, error)
	GetList(ctx context.Context) ([]dbm.User, error)
	FindByLogin(ctx context.Context, login string) (*dbm.User, error)
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	Add(ctx context.Context, user *dbm.User) (*dbm.User, error)
	Update(ctx context.Context, user *dbm.User) error
	Delete(ctx context.Context, userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, userID uint) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetList(ctx context.Context) ([]dbm.User, error) {
	var users []dbm.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Add(ctx context.Context, user *dbm.User) (*dbm.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *dbm.User) error {
	res := r.db.WithContext(ctx).Model(&dbm.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"full_name":       user.FullName,
			"passport_number": user.PassportNumber,
			"phone_number":    user.PhoneNumber,
			"email":           user.Email,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return utils.ErrEmailAlreadyExists
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Delete(&dbm.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}
