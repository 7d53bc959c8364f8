package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/templates"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

const maxWindowDays = 366

type progressAnalyzer interface {
	Summary(ctx context.Context, days int) (*Summary, error)
	TemplateSessionSets(ctx context.Context, templateID string, preferToday bool) (*TemplateSession, error)
}

type Handler struct {
	analyzer progressAnalyzer
}

func NewHandler(analyzer progressAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress", handler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")
	r.HandleFunc("/progress/template/{id}", handler.HandleTemplateSession).Methods("GET", "OPTIONS").Name("progress-template")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	days := DefaultWindowDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 || parsed > maxWindowDays {
			http.Error(w, "error, days must be between 1 and 366", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	summary, err := handler.analyzer.Summary(ctx, days)
	if err != nil {
		log.Errorf("progress summary [%d days]: %s", days, err)
		http.Error(w, "error, failed to get progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

// HandleTemplateSession accepts ?latest=true to skip today's sets in favor of the latest day.
func (handler *Handler) HandleTemplateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.templateSession")
	defer span.End()

	id := mux.Vars(r)["id"]
	preferToday := r.URL.Query().Get("latest") != "true"

	session, err := handler.analyzer.TemplateSessionSets(ctx, id, preferToday)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			http.Error(w, "error, template not found", http.StatusNotFound)
			return
		}
		log.Errorf("template session sets [%s]: %s", id, err)
		http.Error(w, "error, failed to get template session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}
