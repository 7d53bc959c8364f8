package fasting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const stateKey = "liftlog-fasting"

// Store keeps the fasting state as a JSON document in redis.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// Read returns the stored state. A missing or unreadable document is an empty state.
func (s *Store) Read(ctx context.Context) (State, error) {
	raw, err := s.redisClient.Get(ctx, stateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read fasting state: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Warnf("fasting store, ignoring corrupt state: %s", err)
		return State{}, nil
	}
	return state, nil
}

// Start begins a new fast at the given time, discarding the previous one.
func (s *Store) Start(ctx context.Context, at time.Time) (State, error) {
	state := State{StartedAt: &at}
	if err := s.write(ctx, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// End stops the running fast. Without a started fast it changes nothing.
func (s *Store) End(ctx context.Context, at time.Time) (State, error) {
	state, err := s.Read(ctx)
	if err != nil {
		return State{}, err
	}
	if state.StartedAt == nil {
		return state, nil
	}

	state.EndedAt = &at
	if err := s.write(ctx, state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (s *Store) write(ctx context.Context, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := s.redisClient.Set(ctx, stateKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("write fasting state: %w", err)
	}
	return nil
}
