//go:build integration

package integration

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/fasting"
	"github.com/2beens/liftlog/internal/profile"
	"github.com/2beens/liftlog/internal/sessions"
	"github.com/2beens/liftlog/internal/templates"
	"github.com/2beens/liftlog/internal/units"
	"github.com/2beens/liftlog/internal/weighins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestProfileAndWeighIns() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	metric := units.Metric
	weight := 90.0
	goalWeight := 85.0
	goalDate := time.Now().UTC().AddDate(0, 0, 70).Format(time.DateOnly)

	status, body := s.doJSON(ctx, "PUT", "/profile", profile.Patch{
		UnitSystem:   &metric,
		WeightKg:     &weight,
		GoalWeightKg: &goalWeight,
		GoalDate:     &goalDate,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var p profile.Profile
	s.decode(body, &p)
	require.NotNil(t, p.GoalWeightKg)
	assert.InDelta(t, 85, *p.GoalWeightKg, 1e-9)

	today := time.Now().UTC()
	for i, kg := range []float64{90, 89.5} {
		status, body = s.doJSON(ctx, "POST", "/weighins", weighins.AddWeighInRequest{
			ISODate: today.AddDate(0, 0, -7*(1-i)).Format(time.DateOnly),
			Weight:  kg,
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body = s.doJSON(ctx, "GET", "/weighins?last=6", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var listed []weighins.WeighIn
	s.decode(body, &listed)
	require.Len(t, listed, 2)
	assert.InDelta(t, 89.5, listed[1].WeightKg, 1e-9)

	status, body = s.doJSON(ctx, "GET", "/weighins/status", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var st weighins.StatusResponse
	s.decode(body, &st)
	require.NotNil(t, st.OnTrack)
	assert.Equal(t, listed[1].ISODate, st.OnTrack.LatestWeighInDate)
}

func (s *IntegrationTestSuite) TestTemplatesAndSessions() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	status, body := s.doJSON(ctx, "POST", "/templates", templates.Template{
		Name: "Push Day",
		Exercises: []templates.Exercise{
			{Name: "Bench Press"},
			{Name: "Overhead Press"},
		},
		Warmup: []templates.WarmupItem{{Text: "5 min row"}},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var tpl templates.Template
	s.decode(body, &tpl)
	require.NotEmpty(t, tpl.ID)
	require.Len(t, tpl.Exercises, 2)
	assert.Equal(t, "bench-press", tpl.Exercises[0].ID)

	status, body = s.doJSON(ctx, "POST", "/sessions", sessions.StartRequest{TemplateID: tpl.ID})
	require.Equal(t, http.StatusCreated, status, string(body))
	var started sessions.Session
	s.decode(body, &started)
	assert.Equal(t, "Push Day", started.TemplateName)
	assert.True(t, started.IsActive())

	status, body = s.doJSON(ctx, "GET", "/sessions/current", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var current sessions.CurrentResponse
	s.decode(body, &current)
	require.NotNil(t, current.Session)
	assert.Equal(t, started.ID, current.Session.ID)

	status, body = s.doJSON(ctx, "PUT", "/sessions/"+started.ID+"/end", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var ended sessions.Session
	s.decode(body, &ended)
	assert.False(t, ended.IsActive())

	status, body = s.doJSON(ctx, "GET", "/sessions/current", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	s.decode(body, &current)
	assert.Nil(t, current.Session)

	status, _ = s.doJSON(ctx, "POST", "/sessions", sessions.StartRequest{TemplateID: "no-such-template"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doJSON(ctx, "DELETE", "/templates/"+tpl.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.doJSON(ctx, "GET", "/templates/"+tpl.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestFasting() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	startedAt := time.Now().Add(-13 * time.Hour).UTC()
	status, body := s.doJSON(ctx, "POST", "/fasting/start", fasting.TimeRequest{At: &startedAt})
	require.Equal(t, http.StatusOK, status, string(body))

	var st fasting.StatusResponse
	s.decode(body, &st)
	assert.True(t, st.Active)
	assert.Len(t, st.Milestones, 2)

	status, body = s.doJSON(ctx, "POST", "/fasting/end", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	s.decode(body, &st)
	assert.False(t, st.Active)
}
