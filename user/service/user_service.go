package service

import (
	"errors"
	"fmt"
	"strings"

	"terminally-dating/app/pkg/cache"
	apperrors "terminally-dating/app/pkg/errors"
	"terminally-dating/app/user/models"
	"terminally-dating/app/user/repository"

	"gorm.io/gorm"
)

// UserService handles registration, authentication and profile persistence
type UserService struct {
	repo  repository.UserRepository
	cache *cache.Cache
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, c *cache.Cache) *UserService {
	return &UserService{repo: repo, cache: c}
}

// Register creates a new user. A duplicate username or email is rejected as
// a conflict with nothing written; the password is hashed by the model's
// create hook.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperrors.NewValidationError("USERNAME_REQUIRED", "username must not be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("EMAIL_REQUIRED", "email must not be empty")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("PASSWORD_REQUIRED", "password must not be empty")
	}
	if req.Age < 0 {
		return nil, apperrors.NewValidationError("AGE_INVALID", "age must not be negative")
	}

	user := models.User{
		Username:    req.Username,
		Email:       req.Email,
		Age:         req.Age,
		Location:    req.Location,
		Bio:         req.Bio,
		ProfileLink: req.ProfileLink,
		Password:    req.Password,
	}

	if err := s.repo.Create(&user); err != nil {
		if isDuplicateErr(err) {
			return nil, apperrors.NewConflictError("USER_EXISTS",
				fmt.Sprintf("username %q or email %q already taken", req.Username, req.Email)).WithCause(err)
		}
		return nil, translateStorageErr(err)
	}

	return &user, nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("INVALID_CREDENTIALS", "invalid username or password")
		}
		return nil, translateStorageErr(err)
	}

	if !models.CheckPasswordHash(password, user.Password) {
		return nil, apperrors.NewValidationError("INVALID_CREDENTIALS", "invalid username or password")
	}

	return user, nil
}

// GetByUsername retrieves a user, consulting the profile cache first.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(cacheKey(username)); ok {
			if u, ok := v.(*models.User); ok {
				return u, nil
			}
		}
	}

	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("USER_NOT_FOUND",
				fmt.Sprintf("no user named %q", username))
		}
		return nil, translateStorageErr(err)
	}

	if s.cache != nil {
		s.cache.Set(cacheKey(username), user)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("USER_NOT_FOUND",
				fmt.Sprintf("no user with id %d", id))
		}
		return nil, translateStorageErr(err)
	}
	return user, nil
}

// List returns up to limit users, newest first
func (s *UserService) List(limit int) ([]models.User, error) {
	users, err := s.repo.List(limit)
	if err != nil {
		return nil, translateStorageErr(err)
	}
	return users, nil
}

// Search finds users whose username contains the fragment
func (s *UserService) Search(fragment string) ([]models.User, error) {
	users, err := s.repo.Search(fragment)
	if err != nil {
		return nil, translateStorageErr(err)
	}
	return users, nil
}

// SaveProfile applies an update to the stored profile and returns the saved
// record. This is the only write path out of the editor: an edit that is not
// saved here is not persisted anywhere.
func (s *UserService) SaveProfile(username string, update *models.ProfileUpdate) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		if strings.TrimSpace(*update.Username) == "" {
			return nil, apperrors.NewValidationError("USERNAME_REQUIRED", "username must not be empty")
		}
		user.Username = *update.Username
	}
	if update.NameFont != nil {
		user.NameFont = *update.NameFont
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.ProfileLink != nil {
		user.ProfileLink = *update.ProfileLink
	}
	if update.PicturePath != nil {
		user.PicturePath = *update.PicturePath
	}

	if err := s.repo.UpdateProfile(user); err != nil {
		if isDuplicateErr(err) {
			return nil, apperrors.NewConflictError("USER_EXISTS",
				fmt.Sprintf("username %q already taken", user.Username)).WithCause(err)
		}
		return nil, translateStorageErr(err)
	}

	if s.cache != nil {
		s.cache.Delete(cacheKey(username))
		s.cache.Set(cacheKey(user.Username), user)
	}

	return user, nil
}

// NextProfile returns the profile after the given one, wrapping around.
func (s *UserService) NextProfile(current *models.User) (*models.User, error) {
	user, err := s.repo.NextAfter(current.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("NO_PROFILES", "no profiles to browse")
		}
		return nil, translateStorageErr(err)
	}
	return user, nil
}

// PrevProfile returns the profile before the given one, wrapping around.
func (s *UserService) PrevProfile(current *models.User) (*models.User, error) {
	user, err := s.repo.PrevBefore(current.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("NO_PROFILES", "no profiles to browse")
		}
		return nil, translateStorageErr(err)
	}
	return user, nil
}

func cacheKey(username string) string {
	return "profile:" + username
}

// isDuplicateErr recognizes unique-constraint violations from both dialects.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}

func translateStorageErr(err error) error {
	return apperrors.Wrap(err, apperrors.KindUnavailable, "STORAGE_ERROR", "storage operation failed")
}
