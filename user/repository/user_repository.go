package repository

import (
	"errors"

	"terminally-dating/app/user/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	List(limit int) ([]models.User, error)
	Search(fragment string) ([]models.User, error)
	UpdateProfile(user *models.User) error
	NextAfter(id uint) (*models.User, error)
	PrevBefore(id uint) (*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns the newest users first, like the legacy `list` subcommand.
func (r *GormUserRepository) List(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Search(fragment string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username LIKE ?", "%"+fragment+"%").
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// UpdateProfile persists the editable profile columns only; credentials and
// account metadata are never touched by the editor.
func (r *GormUserRepository) UpdateProfile(user *models.User) error {
	return r.db.Model(user).
		Select("username", "name_font", "bio", "profile_link", "picture_path").
		Updates(user).Error
}

// NextAfter returns the first user with a greater ID, wrapping to the lowest
// ID at the end. Drives the explore loop's right-arrow navigation.
func (r *GormUserRepository) NextAfter(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("id > ?", id).Order("id ASC").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.Order("id ASC").First(&user).Error
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PrevBefore is the mirror of NextAfter for left-arrow navigation.
func (r *GormUserRepository) PrevBefore(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("id < ?", id).Order("id DESC").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.Order("id DESC").First(&user).Error
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
