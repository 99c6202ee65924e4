package repositories

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"gorm.io/gorm"
)

// IUserRepository define os métodos de acesso a usuários
type IUserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error)
	List(ctx context.Context, page, limit int) ([]entities.User, int64, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create returns ErrDuplicate when the username or email is taken.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail ignores the user with excludeID, so updates can
// keep their own values.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user uniqueness: %w", err)
	}
	return count > 0, nil
}

// List pages through users ordered by id. A non-positive limit returns all.
func (r *UserRepository) List(ctx context.Context, page, limit int) ([]entities.User, int64, error) {
	users := []entities.User{}
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query = query.Order("id ASC")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// Update writes every mutable column, including zero values.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	res := r.db.WithContext(ctx).Model(user).
		Select("username", "email", "password_hash", "is_admin", "updated_at").
		Updates(user)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
