package repository

import (
	"terminally-dating/app/challenge/models"

	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(challenge *models.Challenge) error
	GetByID(id uint) (*models.Challenge, error)
	GetAll() ([]models.Challenge, error)
	Count() (int64, error)
	CreateAnswer(answer *models.Answer) error
	GetAnswersByChallenge(challengeID uint) ([]models.Answer, error)
}

type GormChallengeRepository struct {
	db *gorm.DB
}

func NewGormChallengeRepository(db *gorm.DB) *GormChallengeRepository {
	return &GormChallengeRepository{db: db}
}

func (r *GormChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *GormChallengeRepository) GetByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.First(&challenge, id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *GormChallengeRepository) GetAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Order("id ASC").Find(&challenges).Error
	return challenges, err
}

func (r *GormChallengeRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Challenge{}).Count(&n).Error
	return n, err
}

func (r *GormChallengeRepository) CreateAnswer(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

func (r *GormChallengeRepository) GetAnswersByChallenge(challengeID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("challenge_id = ?", challengeID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}
