package nexus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm/internal/domain"
)

// gqlServer returns a test server answering every GraphQL request with the
// given data payload.
func gqlServer(t *testing.T, data string, onRequest func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if onRequest != nil {
			onRequest(r)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data": %s}`, data)
	}))
}

func TestClient_GetMod(t *testing.T) {
	data := `{"mod": {"modId": 12345, "name": "Lush Overhaul", "version": "2.1", "author": "someone", "endorsements": 100}}`
	var gotKey, gotBody string
	server := gqlServer(t, data, func(r *http.Request) {
		gotKey = r.Header.Get("apikey")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	})
	defer server.Close()

	client := newClient(server.URL, nil, "testapikey")
	require.True(t, client.IsAuthenticated())

	mod, err := client.GetMod(context.Background(), "skyrimspecialedition", 12345)
	require.NoError(t, err)
	assert.Equal(t, "testapikey", gotKey)
	// The query must name the API's fields, not the Go struct fields.
	assert.Contains(t, gotBody, "endorsements")
	assert.NotContains(t, gotBody, "endorsementCount")
	assert.Equal(t, 12345, mod.ModID)
	assert.Equal(t, "Lush Overhaul", mod.Name)
	assert.Equal(t, "2.1", mod.Version)
	assert.Equal(t, 100, mod.EndorsementCount)
}

func TestClient_GetModFiles(t *testing.T) {
	data := `{"modFiles": {"nodes": [
		{"fileId": 1, "name": "Main File", "version": "2.1", "primary": true, "sizeInBytes": 1024},
		{"fileId": 2, "name": "Optional Patch", "version": "2.1"}
	]}}`
	server := gqlServer(t, data, nil)
	defer server.Close()

	files, err := newClient(server.URL, nil, "k").GetModFiles(context.Background(), "skyrimspecialedition", 12345)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "Main File", files[0].Name)
	assert.True(t, files[0].IsPrimary)
	assert.EqualValues(t, 1024, files[0].Size)
}

func TestClient_NoAPIKey(t *testing.T) {
	var gotKey string
	sawHeader := false
	server := gqlServer(t, `{"mod": {"modId": 1}}`, func(r *http.Request) {
		gotKey = r.Header.Get("apikey")
		_, sawHeader = r.Header["Apikey"]
	})
	defer server.Close()

	client := newClient(server.URL, nil, "")
	assert.False(t, client.IsAuthenticated())

	_, err := client.GetMod(context.Background(), "oblivion", 1)
	require.NoError(t, err)
	assert.Empty(t, gotKey)
	assert.False(t, sawHeader)
}

func TestClient_CheckUpdates(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Serve a newer version only for mod 10; variables ride along in
		// the request body.
		body, _ := io.ReadAll(r.Body)
		version := "1.0"
		if strings.Contains(string(body), `"modId":10`) {
			version = "2.0"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data": {"mod": {"version": %q}}}`, version)
	}))
	defer server.Close()

	installed := []domain.InstalledPackage{
		{ID: "a", Game: "skyrimse", NexusModID: 10, Version: "1.0"},
		{ID: "b", Game: "skyrimse", NexusModID: 20, Version: "1.0"},
		{ID: "c", Game: "skyrimse", Version: "3.0"}, // no Nexus ID
		{ID: "d", Game: "enderal", NexusModID: 30},  // unmapped game
		{ID: "e", Game: "nolan", NexusModID: 40},    // mapped to an empty domain
	}
	domains := map[string]string{"skyrimse": "skyrimspecialedition", "nolan": ""}

	updates, err := newClient(server.URL, nil, "k").CheckUpdates(context.Background(), installed, domains)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "a", updates[0].Package.ID)
	assert.Equal(t, "2.0", updates[0].NewVersion)
	// Only the two resolvable packages hit the API.
	assert.Equal(t, 2, requests)
}

func TestClient_CheckUpdatesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(nil, "").CheckUpdates(ctx, []domain.InstalledPackage{{NexusModID: 1, Game: "g"}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		current, remote string
		want            bool
	}{
		{"1.0", "2.0", true},
		{"2.0", "1.0", false},
		{"1.0", "1.0", false},
		{"1.5.97", "1.6.640", true},
		{"1.0", "", false},
		{"v1.0", "v1.1", true},
		{"final", "final-2", true}, // unparseable, different means newer
	}
	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.remote, func(t *testing.T) {
			assert.Equal(t, tt.want, isNewerVersion(tt.current, tt.remote))
		})
	}
}
