//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin_WrongPassword() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	loginReqJson, err := json.Marshal(loginRequest{
		Username: testUsername,
		Password: "wrong",
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestMissingToken() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/profile", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestSchemaMigrated() {
	t := s.T()
	for _, table := range []string{"set_entry", "profile", "weigh_in", "workout_template", "workout_session"} {
		var exists bool
		err := s.DB.QueryRow(
			`SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}
