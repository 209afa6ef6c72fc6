package di

import (
	"gorm.io/gorm"

	challengerepo "terminally-dating/app/challenge/repository"
	challengesvc "terminally-dating/app/challenge/service"
	chatrepo "terminally-dating/app/chat/repository"
	chatsvc "terminally-dating/app/chat/service"
	"terminally-dating/app/pkg/cache"
	appconfig "terminally-dating/app/pkg/config"
	"terminally-dating/app/pkg/health"
	"terminally-dating/app/pkg/logger"
	userrepo "terminally-dating/app/user/repository"
	usersvc "terminally-dating/app/user/service"
)

// Container holds all the dependencies for the application
type Container struct {
	DB               *gorm.DB
	Logger           *logger.Logger
	Health           *health.Checker
	UserService      *usersvc.UserService
	ChatService      *chatsvc.ChatService
	ChallengeService *challengesvc.ChallengeService
}

// Config holds the configuration for the container
type Config struct {
	LoggerConfig logger.Config
	HistoryLimit int
	CacheEnabled bool
}

// DefaultConfig returns a container configuration derived from the
// application settings
func DefaultConfig() *Config {
	cfg := appconfig.Get()
	return &Config{
		LoggerConfig: logger.DefaultConfig(),
		HistoryLimit: cfg.Chat.HistoryLimit,
		CacheEnabled: cfg.Cache.Enabled,
	}
}

// New creates a new dependency injection container
func New(db *gorm.DB, config *Config) (*Container, error) {
	if config == nil {
		config = DefaultConfig()
	}

	log := logger.New(config.LoggerConfig)

	var profileCache *cache.Cache
	if config.CacheEnabled {
		profileCache = cache.NewCache()
	}

	users := usersvc.NewUserService(userrepo.NewGormUserRepository(db), profileCache)
	chats := chatsvc.NewChatService(chatrepo.NewGormMessageRepository(db), log, config.HistoryLimit)
	challenges := challengesvc.NewChallengeService(challengerepo.NewGormChallengeRepository(db))

	checker := health.NewChecker(log)
	checker.RegisterDatabaseCheck(func() error {
		return appconfig.TestConnection(db)
	})

	return &Container{
		DB:               db,
		Logger:           log,
		Health:           checker,
		UserService:      users,
		ChatService:      chats,
		ChallengeService: challenges,
	}, nil
}
