package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"terminally-dating/app/chat/models"
	"terminally-dating/app/chat/repository"
	apperrors "terminally-dating/app/pkg/errors"
	"terminally-dating/app/pkg/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A :memory: database exists per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Message{}))
	return db
}

func newService(t *testing.T) *ChatService {
	t.Helper()
	repo := repository.NewGormMessageRepository(setupDB(t))
	return NewChatService(repo, logger.New(logger.DefaultConfig()), 0)
}

func TestHistoryScopedToPair(t *testing.T) {
	svc := newService(t)

	alice, err := svc.Open("alice", "bob")
	require.NoError(t, err)
	alice.Send("hi bob")

	bob, err := svc.Open("bob", "alice")
	require.NoError(t, err)
	bob.Send("hi alice")

	carol, err := svc.Open("carol", "bob")
	require.NoError(t, err)
	carol.Send("bob it's carol")

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 2, "both directions, nothing from third parties")

	senders := []string{history[0].Sender, history[1].Sender}
	assert.Contains(t, senders, "alice")
	assert.Contains(t, senders, "bob")
	for _, m := range history {
		assert.NotEqual(t, "carol", m.Sender)
		assert.NotEqual(t, "carol", m.Receiver)
	}
}

func TestHistoryOrderedByTime(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewGormMessageRepository(db)
	svc := NewChatService(repo, nil, 0)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Insert deliberately out of order.
	for _, offset := range []int{3, 0, 2, 1} {
		require.NoError(t, repo.Create(&models.Message{
			Sender: "alice", Receiver: "bob",
			Body:   "m",
			SentAt: base.Add(time.Duration(offset) * time.Minute),
		}))
	}

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 4)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].SentAt.Before(history[i-1].SentAt),
			"history must be in non-decreasing time order")
	}
}

func TestSendHelloScenario(t *testing.T) {
	svc := newService(t)

	session, err := svc.Open("alice", "bob")
	require.NoError(t, err)
	session.Send("hello")

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "alice", history[0].Sender)
	assert.Equal(t, "bob", history[0].Receiver)
	assert.Equal(t, "hello", history[0].Body)
}

// failingRepo simulates a storage backend that rejects every write.
type failingRepo struct{}

func (f *failingRepo) Create(*models.Message) error { return errors.New("connection refused") }
func (f *failingRepo) GetBetween(string, string, int) ([]models.Message, error) {
	return nil, nil
}
func (f *failingRepo) GetByID(uint) (*models.Message, error) {
	return nil, errors.New("connection refused")
}

func TestSendSurvivesPersistenceFailure(t *testing.T) {
	svc := NewChatService(&failingRepo{}, nil, 0)

	session, err := svc.Open("alice", "bob")
	require.NoError(t, err)

	msg := session.Send("hello anyway")

	require.Len(t, session.Transcript(), 1, "message stays visible in the session")
	assert.Equal(t, "hello anyway", session.Transcript()[0].Body)
	assert.Equal(t, "alice", msg.Sender)
	assert.NotEmpty(t, session.LastWarning(), "failure is reported as a warning")
}

type downRepo struct{}

func (d *downRepo) Create(*models.Message) error { return errors.New("no route to host") }
func (d *downRepo) GetBetween(string, string, int) ([]models.Message, error) {
	return nil, errors.New("no route to host")
}
func (d *downRepo) GetByID(uint) (*models.Message, error) {
	return nil, errors.New("no route to host")
}

func TestHistoryStorageFailureIsTyped(t *testing.T) {
	svc := NewChatService(&downRepo{}, nil, 0)

	_, err := svc.History("alice", "bob")
	require.Error(t, err, "a down backend is an error, not an empty history")
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnavailable))
}

func TestRefreshReplacesTranscript(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewGormMessageRepository(db)
	svc := NewChatService(repo, nil, 0)

	session, err := svc.Open("alice", "bob")
	require.NoError(t, err)
	session.Send("first")

	// A concurrent sender writes directly to storage.
	require.NoError(t, repo.Create(&models.Message{
		Sender: "bob", Receiver: "alice",
		Body:   "from elsewhere",
		SentAt: time.Now(),
	}))

	require.NoError(t, session.Refresh())
	require.Len(t, session.Transcript(), 2)

	bodies := []string{session.Transcript()[0].Body, session.Transcript()[1].Body}
	assert.Contains(t, bodies, "first")
	assert.Contains(t, bodies, "from elsewhere")
}

func TestOpenSelfChatRejected(t *testing.T) {
	svc := newService(t)

	_, err := svc.Open("alice", "alice")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestHistoryLimitKeepsNewest(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewGormMessageRepository(db)
	svc := NewChatService(repo, nil, 2)

	base := time.Now()
	for i, body := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(&models.Message{
			Sender: "alice", Receiver: "bob",
			Body:   body,
			SentAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 2)

	// The cap drops from the top of the transcript, in ascending order.
	assert.Equal(t, "middle", history[0].Body)
	assert.Equal(t, "newest", history[1].Body)
}

func TestRefreshUnderLimitKeepsLatestSend(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewGormMessageRepository(db)
	svc := NewChatService(repo, nil, 3)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&models.Message{
			Sender: "bob", Receiver: "alice",
			Body:   "backlog",
			SentAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	session, err := svc.Open("alice", "bob")
	require.NoError(t, err)
	session.Send("just sent")

	require.NoError(t, session.Refresh())
	transcript := session.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, "just sent", transcript[len(transcript)-1].Body,
		"a persisted send must survive a capped refresh")
}
