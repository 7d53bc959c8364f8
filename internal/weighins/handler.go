package weighins

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftlog/internal/profile"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weighins_test

type weighInsRepo interface {
	Upsert(ctx context.Context, w WeighIn) error
	ListAsc(ctx context.Context) ([]WeighIn, error)
	LastN(ctx context.Context, n int) ([]WeighIn, error)
}

type profileReader interface {
	Get(ctx context.Context) (*profile.Profile, error)
}

// AddWeighInRequest carries the weight in the caller's unit system,
// or in the profile's one when UnitSystem is omitted.
type AddWeighInRequest struct {
	ISODate    string        `json:"isoDate"`
	Weight     float64       `json:"weight"`
	Note       string        `json:"note,omitempty"`
	UnitSystem *units.System `json:"unitSystem,omitempty"`
}

type StatusResponse struct {
	OnTrack *TrackStatus `json:"onTrack"`
}

type Handler struct {
	repo           weighInsRepo
	profiles       profileReader
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewHandler(repo weighInsRepo, profiles profileReader, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		profiles:       profiles,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/weighins", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weighin")
	r.HandleFunc("/weighins", handler.HandleList).Methods("GET", "OPTIONS").Name("list-weighins")
	r.HandleFunc("/weighins/status", handler.HandleStatus).Methods("GET", "OPTIONS").Name("weighins-status")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.add")
	defer span.End()

	var req AddWeighInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new weigh-in, unmarshal json params: %s", err)
		http.Error(w, "add weigh-in failed", http.StatusBadRequest)
		return
	}
	if req.ISODate == "" {
		req.ISODate = pkg.FormatISODate(handler.nowFunc())
	}

	sys := units.Imperial
	if req.UnitSystem != nil {
		if !req.UnitSystem.IsValid() {
			http.Error(w, units.ErrUnknownSystem.Error(), http.StatusBadRequest)
			return
		}
		sys = *req.UnitSystem
	} else {
		p, err := handler.profiles.Get(ctx)
		if err != nil {
			log.Errorf("new weigh-in, get profile: %s", err)
			http.Error(w, "error, failed to read profile", http.StatusInternalServerError)
			return
		}
		if p.UnitSystem.IsValid() {
			sys = p.UnitSystem
		}
	}

	weighIn := WeighIn{
		ISODate:  req.ISODate,
		WeightKg: units.ToKg(req.Weight, sys),
		Note:     req.Note,
	}
	if err := weighIn.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, weighIn); err != nil {
		log.Errorf("failed to store weigh-in [%s]: %s", weighIn.ISODate, err)
		http.Error(w, "error, failed to add weigh-in", http.StatusInternalServerError)
		return
	}
	if handler.metricsManager != nil {
		handler.metricsManager.CounterWeighIns.Inc()
	}

	log.Debugf("weigh-in stored: %s %.2f kg", weighIn.ISODate, weighIn.WeightKg)
	pkg.WriteJSON(w, weighIn, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.list")
	defer span.End()

	n := DefaultLastN
	if lastParam := r.URL.Query().Get("last"); lastParam != "" {
		parsed, err := strconv.Atoi(lastParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "error, last must be a positive number", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	weighIns, err := handler.repo.LastN(ctx, n)
	if err != nil {
		log.Errorf("list last %d weigh-ins: %s", n, err)
		http.Error(w, "error, failed to list weigh-ins", http.StatusInternalServerError)
		return
	}
	if weighIns == nil {
		weighIns = []WeighIn{}
	}

	pkg.WriteJSON(w, weighIns, http.StatusOK)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.status")
	defer span.End()

	p, err := handler.profiles.Get(ctx)
	if err != nil {
		log.Errorf("weigh-in status, get profile: %s", err)
		http.Error(w, "error, failed to read profile", http.StatusInternalServerError)
		return
	}

	weighIns, err := handler.repo.ListAsc(ctx)
	if err != nil {
		log.Errorf("weigh-in status, list weigh-ins: %s", err)
		http.Error(w, "error, failed to compute status", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, StatusResponse{OnTrack: OnTrackStatus(*p, weighIns)}, http.StatusOK)
}
