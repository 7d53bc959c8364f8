package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context) (*Profile, error)
	Merge(ctx context.Context, patch Patch) (*Profile, error)
}

type EnergyResponse struct {
	OnTrack *OnTrack    `json:"onTrack"`
	Plan    *EnergyPlan `json:"plan"`
}

type Handler struct {
	repo    profileRepo
	nowFunc func() time.Time
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo:    repo,
		nowFunc: time.Now,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("get profile: %s", err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "error, invalid profile json", http.StatusBadRequest)
		return
	}
	if err := patch.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := handler.repo.Merge(ctx, patch)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) || pkg.IsCheckViolationError(err) {
			http.Error(w, "error, invalid profile", http.StatusBadRequest)
			return
		}
		log.Errorf("merge profile: %s", err)
		http.Error(w, "error, failed to update profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile updated, unit system [%s]", p.UnitSystem)
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleEnergy(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.energy")
	defer span.End()

	p, err := handler.repo.Get(ctx)
	if err != nil {
		log.Errorf("get profile: %s", err)
		http.Error(w, "error, failed to get profile", http.StatusInternalServerError)
		return
	}

	now := handler.nowFunc()
	pkg.WriteJSON(w, EnergyResponse{
		OnTrack: OnTrackInfo(*p, now),
		Plan:    DailyEnergyPlan(*p, now),
	}, http.StatusOK)
}
