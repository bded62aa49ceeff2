package persistent

import (
	"errors"
	"fmt"
	"strings"

	"hireflow/internal/entity"
	"hireflow/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByRole(roleNames []string) ([]*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// GetByRole matches stored role strings case-insensitively, since the users
// table carries legacy spellings in mixed case.
func (r *userRepository) GetByRole(roleNames []string) ([]*entity.User, error) {
	lowered := make([]string, len(roleNames))
	for i, name := range roleNames {
		lowered[i] = strings.ToLower(name)
	}

	var userModels []model.UserModel
	if err := r.db.Where("LOWER(role) IN ? AND is_active = ?", lowered, true).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}
