//go:build e2e

package todo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	c := setupTodoContainer(t, nil)

	health, err := c.client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = c.client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
