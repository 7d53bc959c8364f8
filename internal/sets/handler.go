package sets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sets_test

type setsRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Update(ctx context.Context, exerciseID, id string, patch Patch) (*Entry, error)
	Delete(ctx context.Context, exerciseID, id string) error
	DeleteForDay(ctx context.Context, isoDate string) (int64, error)
	ListAsc(ctx context.Context, exerciseID string) ([]Entry, error)
}

type setEvaluator interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*Evaluation, error)
}

type unitsReader interface {
	UnitSystem(ctx context.Context) (units.System, error)
}

// AddSetRequest carries weight in the caller's unit system.
type AddSetRequest struct {
	ExerciseID string        `json:"exerciseId"`
	ISODate    string        `json:"isoDate"`
	Weight     float64       `json:"weight"`
	Reps       int           `json:"reps"`
	UnitSystem *units.System `json:"unitSystem,omitempty"`
}

type UpdateSetRequest struct {
	ISODate    *string       `json:"isoDate,omitempty"`
	Weight     *float64      `json:"weight,omitempty"`
	Reps       *int          `json:"reps,omitempty"`
	UnitSystem *units.System `json:"unitSystem,omitempty"`
}

type AddSetResponse struct {
	Entry
	CountToday int `json:"countToday"`
}

type DeleteSetResponse struct {
	DeletedID string `json:"deletedId"`
}

type DeleteDayResponse struct {
	ISODate string `json:"isoDate"`
	Deleted int64  `json:"deleted"`
}

type Handler struct {
	repo           setsRepo
	evaluator      setEvaluator
	units          unitsReader
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewHandler(
	repo setsRepo,
	evaluator setEvaluator,
	units unitsReader,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		evaluator:      evaluator,
		units:          units,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sets", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-set")
	r.HandleFunc("/sets/day/{date}", handler.HandleDeleteDay).Methods("DELETE", "OPTIONS").Name("delete-sets-day")
	r.HandleFunc("/sets/{exid}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sets")
	r.HandleFunc("/sets/{exid}/evaluate", handler.HandleEvaluate).Methods("POST", "OPTIONS").Name("evaluate-set")
	r.HandleFunc("/sets/{exid}/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/sets/{exid}/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-set")
}

func (handler *Handler) today() string {
	return pkg.FormatISODate(handler.nowFunc())
}

func (handler *Handler) resolveUnits(ctx context.Context, explicit *units.System) (units.System, error) {
	if explicit != nil {
		if !explicit.IsValid() {
			return "", units.ErrUnknownSystem
		}
		return *explicit, nil
	}
	return handler.units.UnitSystem(ctx)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.add")
	defer span.End()

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}
	if req.ISODate == "" {
		req.ISODate = handler.today()
	}

	sys, err := handler.resolveUnits(ctx, req.UnitSystem)
	if err != nil {
		handler.unitsError(w, err)
		return
	}
	if err := ValidateWeight(req.Weight); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry := Entry{
		ExerciseID: req.ExerciseID,
		ISODate:    req.ISODate,
		WeightKg:   units.ToKg(req.Weight, sys),
		Reps:       req.Reps,
	}
	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add new set [%s]: %s", entry.ExerciseID, err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("set.id", added.ID))
	if handler.metricsManager != nil {
		handler.metricsManager.CounterSetsAdded.Inc()
	}

	countToday := 0
	all, err := handler.repo.ListAsc(ctx, added.ExerciseID)
	if err != nil {
		// just log the error, the set is stored
		log.Errorf("failed to list sets for [%s]: %s", added.ExerciseID, err)
	}
	for _, e := range all {
		if e.ISODate == added.ISODate {
			countToday++
		}
	}

	log.Debugf("new set added: [%s] %.2f kg x %d", added.ExerciseID, added.WeightKg, added.Reps)
	pkg.WriteJSON(w, AddSetResponse{Entry: *added, CountToday: countToday}, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.list")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	entries, err := handler.repo.ListAsc(ctx, exerciseID)
	if err != nil {
		log.Errorf("list sets [%s]: %s", exerciseID, err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	SortAsc(entries)

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.update")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID, id := vars["exid"], vars["id"]

	var req UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	patch := Patch{ISODate: req.ISODate, Reps: req.Reps}
	if patch.ISODate != nil {
		if _, err := ParseISODate(*patch.ISODate); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if patch.Reps != nil && *patch.Reps <= 0 {
		http.Error(w, ErrInvalidReps.Error(), http.StatusBadRequest)
		return
	}
	if req.Weight != nil {
		if err := ValidateWeight(*req.Weight); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sys, err := handler.resolveUnits(ctx, req.UnitSystem)
		if err != nil {
			handler.unitsError(w, err)
			return
		}
		kg := units.ToKg(*req.Weight, sys)
		patch.WeightKg = &kg
	}
	if patch.IsEmpty() {
		http.Error(w, "error, nothing to update", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, exerciseID, id, patch)
	if err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "error, set not found", http.StatusNotFound)
			return
		}
		log.Errorf("update set [%s/%s]: %s", exerciseID, id, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.delete")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID, id := vars["exid"], vars["id"]

	if err := handler.repo.Delete(ctx, exerciseID, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "error, set not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete set [%s/%s]: %s", exerciseID, id, err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteSetResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.deleteDay")
	defer span.End()

	isoDate := mux.Vars(r)["date"]
	if isoDate == "today" {
		isoDate = handler.today()
	}
	if _, err := ParseISODate(isoDate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteForDay(ctx, isoDate)
	if err != nil {
		log.Errorf("delete sets for day [%s]: %s", isoDate, err)
		http.Error(w, "error, failed to delete sets", http.StatusInternalServerError)
		return
	}

	log.Warnf("deleted %d sets logged on %s", deleted, isoDate)
	pkg.WriteJSON(w, DeleteDayResponse{ISODate: isoDate, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.evaluate")
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("evaluate set, unmarshal json params: %s", err)
		http.Error(w, "evaluate set failed", http.StatusBadRequest)
		return
	}
	req.ExerciseID = mux.Vars(r)["exid"]
	if req.ISODate == "" {
		req.ISODate = handler.today()
	}

	if err := ValidateWeight(req.Weight); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Reps <= 0 {
		http.Error(w, ErrInvalidReps.Error(), http.StatusBadRequest)
		return
	}
	if _, err := ParseISODate(req.ISODate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UnitSystem != nil && !req.UnitSystem.IsValid() {
		http.Error(w, units.ErrUnknownSystem.Error(), http.StatusBadRequest)
		return
	}
	if req.Age != nil && *req.Age < 0 {
		http.Error(w, "error, age must be >= 0", http.StatusBadRequest)
		return
	}

	eval, err := handler.evaluator.Evaluate(ctx, req)
	if err != nil {
		log.Errorf("evaluate set [%s]: %s", req.ExerciseID, err)
		http.Error(w, "error, failed to evaluate set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, eval, http.StatusOK)
}

func (handler *Handler) unitsError(w http.ResponseWriter, err error) {
	if errors.Is(err, units.ErrUnknownSystem) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("resolve unit system: %s", err)
	http.Error(w, "error, failed to read profile", http.StatusInternalServerError)
}
