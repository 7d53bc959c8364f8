package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesRepo interface {
	Upsert(ctx context.Context, t Template) (*Template, error)
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/templates", handler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/templates", handler.HandleUpsert).Methods("POST", "OPTIONS").Name("new-template")
	r.HandleFunc("/templates/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-template")
	r.HandleFunc("/templates/{id}", handler.HandleUpsert).Methods("PUT", "OPTIONS").Name("update-template")
	r.HandleFunc("/templates/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-template")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	list, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list templates: %s", err)
		http.Error(w, "error, failed to list templates", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Template{}
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	t, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "error, template not found", http.StatusNotFound)
			return
		}
		log.Errorf("get template [%s]: %s", id, err)
		http.Error(w, "error, failed to get template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, t, http.StatusOK)
}

// HandleUpsert serves both POST /templates and PUT /templates/{id}.
// On PUT the path id wins over the body one.
func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.upsert")
	defer span.End()

	var t Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		log.Tracef("upsert template, unmarshal json params: %s", err)
		http.Error(w, "upsert template failed", http.StatusBadRequest)
		return
	}

	status := http.StatusCreated
	if id, ok := mux.Vars(r)["id"]; ok {
		t.ID = id
		status = http.StatusOK
	}
	if err := t.Normalize(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := handler.repo.Upsert(ctx, t)
	if err != nil {
		log.Errorf("upsert template [%s]: %s", t.ID, err)
		http.Error(w, "error, failed to store template", http.StatusInternalServerError)
		return
	}

	log.Debugf("template stored: %s [%s], %d exercises", stored.Name, stored.ID, len(stored.Exercises))
	pkg.WriteJSON(w, stored, status)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "error, template not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete template [%s]: %s", id, err)
		http.Error(w, "error, failed to delete template", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, id)
}
