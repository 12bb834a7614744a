package core_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"bmm/internal/domain"
	"bmm/internal/nexus"
	"bmm/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport fails every request while counting them, so a test can
// prove no network call was attempted.
type countingTransport struct {
	requests int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.requests++
	return nil, fmt.Errorf("no network in tests")
}

func TestService_CheckUpdates_SkipsGamesWithoutNexusDomain(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.Registry().Register(&profile.Profile{
		ID:   "homebrew",
		Name: "Homebrew Total Conversion",
	}))
	game := &domain.Game{ID: "homebrew", InstallPath: t.TempDir()}
	require.NoError(t, svc.AddGame(game))
	require.NoError(t, svc.DB().SavePackage(&domain.InstalledPackage{
		ID: "p1", Game: "homebrew", Name: "Pkg", Version: "1.0",
		NexusModID: 42, InstalledAt: time.Now(),
	}))

	transport := &countingTransport{}
	svc.SetNexusClient(nexus.NewClient(&http.Client{Transport: transport}, "k"))

	reports, err := svc.CheckUpdates(context.Background(), "homebrew")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.NoError(t, reports[0].Err)
	assert.Empty(t, reports[0].Updates)
	assert.Zero(t, transport.requests)
}
