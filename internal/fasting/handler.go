package fasting

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fasting_test

type stateStore interface {
	Read(ctx context.Context) (State, error)
	Start(ctx context.Context, at time.Time) (State, error)
	End(ctx context.Context, at time.Time) (State, error)
}

type TimeRequest struct {
	At *time.Time `json:"at,omitempty"`
}

type StatusResponse struct {
	State      State    `json:"state"`
	Active     bool     `json:"active"`
	DurationMs int64    `json:"durationMs"`
	Elapsed    string   `json:"elapsed"`
	Milestones []string `json:"milestones"`
}

type Handler struct {
	store   stateStore
	nowFunc func() time.Time
}

func NewHandler(store stateStore) *Handler {
	return &Handler{
		store:   store,
		nowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/fasting", handler.HandleStatus).Methods("GET", "OPTIONS").Name("fasting-status")
	r.HandleFunc("/fasting/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("fasting-start")
	r.HandleFunc("/fasting/end", handler.HandleEnd).Methods("POST", "OPTIONS").Name("fasting-end")
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fasting.status")
	defer span.End()

	state, err := handler.store.Read(ctx)
	if err != nil {
		log.Errorf("read fasting state: %s", err)
		http.Error(w, "error, failed to read fasting state", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.status(state), http.StatusOK)
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fasting.start")
	defer span.End()

	at, ok := handler.readTime(w, r)
	if !ok {
		return
	}

	state, err := handler.store.Start(ctx, at)
	if err != nil {
		log.Errorf("start fast: %s", err)
		http.Error(w, "error, failed to start fast", http.StatusInternalServerError)
		return
	}

	log.Debugf("fast started at %s", at.Format(time.RFC3339))
	pkg.WriteJSON(w, handler.status(state), http.StatusOK)
}

func (handler *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fasting.end")
	defer span.End()

	at, ok := handler.readTime(w, r)
	if !ok {
		return
	}

	state, err := handler.store.End(ctx, at)
	if err != nil {
		log.Errorf("end fast: %s", err)
		http.Error(w, "error, failed to end fast", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, handler.status(state), http.StatusOK)
}

// readTime reads the optional {"at": ...} body, defaulting to now.
func (handler *Handler) readTime(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	var req TimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("fasting, unmarshal json params: %s", err)
		http.Error(w, "error, invalid time", http.StatusBadRequest)
		return time.Time{}, false
	}
	if req.At == nil {
		return handler.nowFunc(), true
	}
	return *req.At, true
}

func (handler *Handler) status(state State) StatusResponse {
	d := Duration(state, handler.nowFunc())
	resp := StatusResponse{
		State:      state,
		Active:     state.IsActive(),
		DurationMs: d.Milliseconds(),
		Elapsed:    FormatDuration(d),
	}
	if state.StartedAt != nil {
		resp.Milestones = Milestones(d)
	}
	return resp
}
