package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultNameFont is used when a user has not picked a display font.
const DefaultNameFont = "block"

// User represents a user in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Age          int       `json:"age"`
	Location     string    `json:"location"`
	Bio          string    `json:"bio"`
	ProfileLink  string    `json:"profile_link"`
	PicturePath  string    `json:"picture_path"`
	NameFont     string    `json:"name_font" gorm:"default:block"`
	Password     string    `json:"-"` // Stores the bcrypt hash; never returned in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest carries the fields collected by the interactive add-user flow
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	ProfileLink string `json:"profile_link"`
	Password    string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. Pointers distinguish
// "leave unchanged" from "set to empty".
type ProfileUpdate struct {
	Username    *string `json:"username,omitempty"`
	NameFont    *string `json:"name_font,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	ProfileLink *string `json:"profile_link,omitempty"`
	PicturePath *string `json:"picture_path,omitempty"`
}

// HashPassword hashes a password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BeforeCreate is a GORM hook to hash the password before saving
func (u *User) BeforeCreate(tx *gorm.DB) error {
	hashedPassword, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword

	if u.NameFont == "" {
		u.NameFont = DefaultNameFont
	}

	return nil
}
