package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/templates"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, req StartRequest) (*Session, error)
	End(ctx context.Context, id string, endedAt *time.Time) (*Session, error)
	Current(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	ListForDay(ctx context.Context, dayISO string) ([]Session, error)
}

type EndRequest struct {
	EndedAt *time.Time `json:"endedAt,omitempty"`
}

type CurrentResponse struct {
	Session *Session `json:"session"`
}

type Handler struct {
	service sessionsService
	nowFunc func() time.Time
}

func NewHandler(service sessionsService) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sessions", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/sessions", handler.HandleListForDay).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions/current", handler.HandleCurrent).Methods("GET", "OPTIONS").Name("current-session")
	r.HandleFunc("/sessions/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{id}/end", handler.HandleEnd).Methods("PUT", "OPTIONS").Name("end-session")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
	defer span.End()

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoTemplate):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, templates.ErrTemplateNotFound):
			http.Error(w, "error, template not found", http.StatusNotFound)
		default:
			log.Errorf("start session [%s]: %s", req.TemplateID, err)
			http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.end")
	defer span.End()

	// the body is optional
	var req EndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("end session, unmarshal json params: %s", err)
		http.Error(w, "end session failed", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	session, err := handler.service.End(ctx, id, req.EndedAt)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "error, session not found", http.StatusNotFound)
			return
		}
		log.Errorf("end session [%s]: %s", id, err)
		http.Error(w, "error, failed to end session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.current")
	defer span.End()

	session, err := handler.service.Current(ctx)
	if err != nil {
		log.Errorf("get current session: %s", err)
		http.Error(w, "error, failed to get current session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, CurrentResponse{Session: session}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	session, err := handler.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "error, session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session [%s]: %s", id, err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

// HandleListForDay lists the sessions of ?day=YYYY-MM-DD, today by default.
func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.listForDay")
	defer span.End()

	day := r.URL.Query().Get("day")
	if day == "" {
		day = DayISO(handler.nowFunc())
	}
	if _, err := pkg.ParseISODate(day); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := handler.service.ListForDay(ctx, day)
	if err != nil {
		log.Errorf("list sessions for %s: %s", day, err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Session{}
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}
