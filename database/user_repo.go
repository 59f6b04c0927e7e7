package database

import (
	"errors"

	"github.com/brandforge/logo-backend/models"
	"gorm.io/gorm"
)

// UserRepo is kept for completeness of the storage interface; nothing in
// the request workflow reads or writes users. Its identifier counter is
// independent of the logo request counter.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	user.ID = 0
	return r.db.Create(user).Error
}

// FindByID returns a user by id, or (nil, nil) when no such user exists
func (r *UserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns a user by username, or (nil, nil) when absent
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
