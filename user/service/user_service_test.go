package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"terminally-dating/app/pkg/cache"
	apperrors "terminally-dating/app/pkg/errors"
	"terminally-dating/app/user/models"
	"terminally-dating/app/user/repository"
)

func setupService(t *testing.T) *UserService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewUserService(repository.NewGormUserRepository(db),
		cache.NewCacheWith(time.Minute, 0, 50))
}

func registerAlice(t *testing.T, svc *UserService) *models.User {
	t.Helper()
	user, err := svc.Register(&models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Age:      27,
		Location: "Berlin",
		Bio:      "hi",
		Password: "hunter22",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := setupService(t)
	user := registerAlice(t, svc)

	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, models.CheckPasswordHash("hunter22", user.Password))
	assert.Equal(t, models.DefaultNameFont, user.NameFont)
}

func TestRegisterDuplicateUsernameRejected(t *testing.T) {
	svc := setupService(t)
	registerAlice(t, svc)

	_, err := svc.Register(&models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	// Nothing was partially written: the original row is intact and the
	// second email never landed.
	users, err := svc.List(10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)
}

func TestRegisterValidation(t *testing.T) {
	svc := setupService(t)

	cases := []models.RegisterRequest{
		{Username: "", Email: "a@b.c", Password: "x"},
		{Username: "a", Email: "", Password: "x"},
		{Username: "a", Email: "a@b.c", Password: ""},
		{Username: "a", Email: "a@b.c", Password: "x", Age: -1},
	}
	for _, req := range cases {
		_, err := svc.Register(&req)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "req %+v", req)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := setupService(t)
	registerAlice(t, svc)

	user, err := svc.Authenticate("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Authenticate("alice", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"))

	_, err = svc.Authenticate("nobody", "hunter22")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "INVALID_CREDENTIALS"),
		"unknown user and wrong password are indistinguishable")
}

func TestGetByUsernameNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetByUsername("ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestSaveProfilePersists(t *testing.T) {
	svc := setupService(t)
	registerAlice(t, svc)

	bio := "new bio"
	font := "wide"
	saved, err := svc.SaveProfile("alice", &models.ProfileUpdate{Bio: &bio, NameFont: &font})
	require.NoError(t, err)
	assert.Equal(t, "new bio", saved.Bio)

	// The change survives a fresh read, through and past the cache.
	reloaded, err := svc.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "new bio", reloaded.Bio)
	assert.Equal(t, "wide", reloaded.NameFont)
}

func TestSaveProfileDoesNotTouchCredentials(t *testing.T) {
	svc := setupService(t)
	user := registerAlice(t, svc)
	originalHash := user.Password

	bio := "still me"
	_, err := svc.SaveProfile("alice", &models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	reloaded, err := svc.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, originalHash, reloaded.Password)
	assert.True(t, models.CheckPasswordHash("hunter22", reloaded.Password))
}

func TestSearchAndList(t *testing.T) {
	svc := setupService(t)
	registerAlice(t, svc)
	_, err := svc.Register(&models.RegisterRequest{
		Username: "alicia", Email: "alicia@example.com", Password: "pw123456",
	})
	require.NoError(t, err)
	_, err = svc.Register(&models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	found, err := svc.Search("ali")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	users, err := svc.List(10)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "bob", users[0].Username, "list is newest first")
}

func TestProfileBrowsingWrapsAround(t *testing.T) {
	svc := setupService(t)
	alice := registerAlice(t, svc)
	bob, err := svc.Register(&models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	next, err := svc.NextProfile(alice)
	require.NoError(t, err)
	assert.Equal(t, "bob", next.Username)

	wrapped, err := svc.NextProfile(bob)
	require.NoError(t, err)
	assert.Equal(t, "alice", wrapped.Username)

	prev, err := svc.PrevProfile(alice)
	require.NoError(t, err)
	assert.Equal(t, "bob", prev.Username, "previous from the first wraps to the last")
}
