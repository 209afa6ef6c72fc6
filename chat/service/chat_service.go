package service

import (
	"strings"
	"time"

	"terminally-dating/app/chat/models"
	"terminally-dating/app/chat/repository"
	apperrors "terminally-dating/app/pkg/errors"
	"terminally-dating/app/pkg/logger"

	"github.com/google/uuid"
)

// ChatService opens sessions and answers history queries.
type ChatService struct {
	repo         repository.MessageRepository
	log          *logger.Logger
	historyLimit int
}

// NewChatService creates a new chat service. historyLimit caps how many
// messages a session loads; zero means unlimited.
func NewChatService(repo repository.MessageRepository, log *logger.Logger, historyLimit int) *ChatService {
	if log == nil {
		log = logger.GetGlobal()
	}
	return &ChatService{repo: repo, log: log.WithComponent("chat"), historyLimit: historyLimit}
}

// History returns the two-way message history for a pair of usernames in
// non-decreasing send order. Storage failures surface as typed errors rather
// than an empty history.
func (s *ChatService) History(userA, userB string) ([]models.Message, error) {
	messages, err := s.repo.GetBetween(userA, userB, s.historyLimit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindUnavailable,
			"HISTORY_LOAD_FAILED", "could not load chat history")
	}
	return messages, nil
}

// Open starts a session between the local user and a partner, loading the
// existing history.
func (s *ChatService) Open(localUser, partner string) (*Session, error) {
	if localUser == partner {
		return nil, apperrors.NewValidationError("SELF_CHAT", "cannot open a chat with yourself")
	}

	history, err := s.History(localUser, partner)
	if err != nil {
		return nil, err
	}

	return &Session{
		svc:        s,
		LocalUser:  localUser,
		Partner:    partner,
		transcript: history,
	}, nil
}

// Session holds the in-memory transcript for one pair of users. It is bound
// to a single terminal and a single goroutine; concurrent senders on other
// terminals are reconciled only by Refresh.
type Session struct {
	svc        *ChatService
	LocalUser  string
	Partner    string
	transcript []models.Message
	lastWarn   string
}

// Transcript returns the current in-memory message sequence.
func (sess *Session) Transcript() []models.Message {
	return sess.transcript
}

// LastWarning returns the most recent persistence warning, or "" if the last
// send was stored cleanly.
func (sess *Session) LastWarning() string {
	return sess.lastWarn
}

// Send appends the message to the transcript and then attempts to persist
// it. A persistence failure is reported as a warning on the session and in
// the log but never removes the message from the transcript and never
// returns an error: durability here is at-most-once, with no retry.
func (sess *Session) Send(body string) models.Message {
	msg := models.Message{
		ExternalID: uuid.NewString(),
		Sender:     sess.LocalUser,
		Receiver:   sess.Partner,
		Body:       body,
		SentAt:     time.Now(),
	}

	sess.transcript = append(sess.transcript, msg)
	sess.lastWarn = ""

	if strings.TrimSpace(body) == "" {
		// Blank lines are shown locally but not worth a row.
		return msg
	}

	if err := sess.svc.repo.Create(&msg); err != nil {
		sess.lastWarn = "failed to save message: " + err.Error()
		sess.svc.log.Warn("message not persisted",
			"sender", msg.Sender,
			"receiver", msg.Receiver,
			"error", err.Error(),
		)
	}

	return msg
}

// Refresh reloads the full history for the pair from storage, replacing the
// transcript. This is a full reload, not a merge: an unpersisted local
// message disappears here, which is the documented cost of at-most-once
// durability.
func (sess *Session) Refresh() error {
	history, err := sess.svc.History(sess.LocalUser, sess.Partner)
	if err != nil {
		return err
	}
	sess.transcript = history
	return nil
}
