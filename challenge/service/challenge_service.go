package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"terminally-dating/app/challenge/models"
	"terminally-dating/app/challenge/repository"
	apperrors "terminally-dating/app/pkg/errors"

	"gorm.io/gorm"
)

// ChallengeService hands out random challenges and records answers.
// Submitted code is stored and shown to the pair for review; it is never
// executed in this process.
type ChallengeService struct {
	repo repository.ChallengeRepository
	// pick allows tests to pin the random selection.
	pick func(n int) int
}

// NewChallengeService creates a new challenge service
func NewChallengeService(repo repository.ChallengeRepository) *ChallengeService {
	return &ChallengeService{repo: repo, pick: rand.Intn}
}

// AddChallenge stores a new paired-prompt challenge.
func (s *ChallengeService) AddChallenge(description, prompt1, prompt2 string) (*models.Challenge, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("DESCRIPTION_REQUIRED", "challenge description must not be empty")
	}
	if strings.TrimSpace(prompt1) == "" || strings.TrimSpace(prompt2) == "" {
		return nil, apperrors.NewValidationError("PROMPTS_REQUIRED", "both prompt halves are required")
	}

	challenge := models.Challenge{
		Description: description,
		Prompt1:     prompt1,
		Prompt2:     prompt2,
	}
	if err := s.repo.Create(&challenge); err != nil {
		return nil, translateStorageErr(err)
	}
	return &challenge, nil
}

// Random selects one challenge for a session.
func (s *ChallengeService) Random() (*models.Challenge, error) {
	challenges, err := s.repo.GetAll()
	if err != nil {
		return nil, translateStorageErr(err)
	}
	if len(challenges) == 0 {
		return nil, apperrors.NewNotFoundError("NO_CHALLENGES", "no challenges available")
	}
	return &challenges[s.pick(len(challenges))], nil
}

// Get returns a challenge by ID.
func (s *ChallengeService) Get(id uint) (*models.Challenge, error) {
	challenge, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("CHALLENGE_NOT_FOUND",
				fmt.Sprintf("no challenge with id %d", id))
		}
		return nil, translateStorageErr(err)
	}
	return challenge, nil
}

// Submit records an answer for a challenge. The body must not be blank, and
// a reference to a nonexistent challenge is bad input, not a missing record.
func (s *ChallengeService) Submit(username string, challengeID uint, body string) (*models.Answer, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("ANSWER_EMPTY", "answer must not be empty")
	}

	if _, err := s.Get(challengeID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NewValidationError("CHALLENGE_INVALID",
				fmt.Sprintf("no challenge with id %d", challengeID))
		}
		return nil, err
	}

	answer := models.Answer{
		Username:    username,
		Body:        body,
		ChallengeID: challengeID,
	}
	if err := s.repo.CreateAnswer(&answer); err != nil {
		return nil, translateStorageErr(err)
	}
	return &answer, nil
}

// Answers lists all submissions for a challenge in submission order.
func (s *ChallengeService) Answers(challengeID uint) ([]models.Answer, error) {
	answers, err := s.repo.GetAnswersByChallenge(challengeID)
	if err != nil {
		return nil, translateStorageErr(err)
	}
	return answers, nil
}

// SeedDefaults loads a starter challenge set when the table is empty, so a
// fresh `init` has something to hand out.
func (s *ChallengeService) SeedDefaults() error {
	n, err := s.repo.Count()
	if err != nil {
		return translateStorageErr(err)
	}
	if n > 0 {
		return nil
	}

	defaults := []models.Challenge{
		{
			Description: "Together, compute the sum of squares from 1 to n.",
			Prompt1:     "Write square(x) returning x*x. Assume sum_to(n) exists.",
			Prompt2:     "Write sum_to(n) summing square(i) for i in 1..n. Assume square(x) exists.",
		},
		{
			Description: "Together, reverse every word in a sentence.",
			Prompt1:     "Write reverse(word) returning the word backwards. Assume split_words(s) exists.",
			Prompt2:     "Write split_words(s) splitting on spaces and applying reverse to each. Assume reverse(word) exists.",
		},
		{
			Description: "Together, decide whether a year is a leap year.",
			Prompt1:     "Write divisible(n, by) returning whether n%by == 0. Assume is_leap(y) exists.",
			Prompt2:     "Write is_leap(y) using divisible for 4, 100 and 400. Assume divisible(n, by) exists.",
		},
	}

	for i := range defaults {
		if err := s.repo.Create(&defaults[i]); err != nil {
			return translateStorageErr(err)
		}
	}
	return nil
}

func translateStorageErr(err error) error {
	return apperrors.Wrap(err, apperrors.KindUnavailable, "STORAGE_ERROR", "storage operation failed")
}
