package repository

import (
	"terminally-dating/app/chat/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	GetBetween(userA, userB string, limit int) ([]models.Message, error)
	GetByID(id uint) (*models.Message, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetBetween returns the two-way history for a pair of usernames in
// non-decreasing send order. Messages involving anyone else never match.
// A positive limit keeps the newest messages, not the oldest: a capped
// transcript drops from the top.
func (r *GormMessageRepository) GetBetween(userA, userB string, limit int) ([]models.Message, error) {
	var messages []models.Message
	q := r.db.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA)

	if limit > 0 {
		err := q.Order("sent_at DESC, id DESC").Limit(limit).Find(&messages).Error
		if err != nil {
			return nil, err
		}
		// Flip the newest-first page back into ascending order.
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
		return messages, nil
	}

	err := q.Order("sent_at ASC, id ASC").Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}
