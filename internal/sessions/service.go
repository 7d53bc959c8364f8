package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/templates"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

const currentSessionKey = "liftlog-current-session"

type sessionStore interface {
	Insert(ctx context.Context, s Session) error
	SetEnded(ctx context.Context, id string, endedAt time.Time) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	ListForDay(ctx context.Context, dayISO string) ([]Session, error)
}

type templateReader interface {
	Get(ctx context.Context, id string) (*templates.Template, error)
}

type StartRequest struct {
	TemplateID string `json:"templateId"`
	// optional, read from the stored template when empty
	TemplateName    string     `json:"templateName,omitempty"`
	TemplateIconKey string     `json:"templateIconKey,omitempty"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
}

// Service keeps sessions in postgres and the id of the running one in redis.
type Service struct {
	store       sessionStore
	templates   templateReader
	redisClient *redis.Client
	nowFunc     func() time.Time
	newIDFunc   func() string
}

func NewService(store sessionStore, templates templateReader, redisClient *redis.Client) *Service {
	return &Service{
		store:       store,
		templates:   templates,
		redisClient: redisClient,
		nowFunc:     time.Now,
		newIDFunc:   uuid.NewString,
	}
}

// Start stores a new session and makes it the current one.
func (s *Service) Start(ctx context.Context, req StartRequest) (*Session, error) {
	if req.TemplateID == "" {
		return nil, ErrNoTemplate
	}

	if req.TemplateName == "" {
		t, err := s.templates.Get(ctx, req.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("get template %s: %w", req.TemplateID, err)
		}
		req.TemplateName = t.Name
		if req.TemplateIconKey == "" {
			req.TemplateIconKey = t.IconKey
		}
	}

	startedAt := s.nowFunc()
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}

	session := Session{
		ID:              s.newIDFunc(),
		TemplateID:      req.TemplateID,
		TemplateName:    req.TemplateName,
		TemplateIconKey: req.TemplateIconKey,
		StartedAt:       startedAt,
		DayISO:          DayISO(startedAt),
	}
	if err := s.store.Insert(ctx, session); err != nil {
		return nil, err
	}

	if err := s.redisClient.Set(ctx, currentSessionKey, session.ID, 0).Err(); err != nil {
		return nil, fmt.Errorf("set current session: %w", err)
	}

	log.Debugf("session %s started: %s", session.ID, session.TemplateName)
	return &session, nil
}

// End marks the session as ended and clears the current one.
// The current session is cleared even when the id is unknown.
func (s *Service) End(ctx context.Context, id string, endedAt *time.Time) (*Session, error) {
	at := s.nowFunc()
	if endedAt != nil {
		at = *endedAt
	}

	ended, endErr := s.store.SetEnded(ctx, id, at)
	if err := s.redisClient.Del(ctx, currentSessionKey).Err(); err != nil {
		return nil, fmt.Errorf("clear current session: %w", err)
	}
	if endErr != nil {
		return nil, endErr
	}

	log.Debugf("session %s ended after %s", id, ended.Duration(at).Round(time.Second))
	return ended, nil
}

// Current returns the running session, or nil when there is none.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	id, err := s.redisClient.Get(ctx, currentSessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get current session: %w", err)
	}

	session, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		log.Warnf("current session %s is gone, clearing", id)
		if err := s.redisClient.Del(ctx, currentSessionKey).Err(); err != nil {
			return nil, fmt.Errorf("clear current session: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListForDay(ctx context.Context, dayISO string) ([]Session, error) {
	return s.store.ListForDay(ctx, dayISO)
}
