// Package nexus talks to the NexusMods GraphQL API for mod metadata and
// update checks.
package nexus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hasura/go-graphql-client"
	goversion "github.com/hashicorp/go-version"

	"bmm/internal/domain"
)

const (
	graphqlEndpoint = "https://api.nexusmods.com/v2/graphql"
	// APIKeyURL is where users generate a personal API key.
	APIKeyURL = "https://www.nexusmods.com/users/myaccount?tab=api+access"
)

// Client wraps the NexusMods GraphQL API.
type Client struct {
	gql    *graphql.Client
	apiKey string
}

// NewClient creates a NexusMods API client. An empty apiKey limits it to
// unauthenticated queries.
func NewClient(httpClient *http.Client, apiKey string) *Client {
	return newClient(graphqlEndpoint, httpClient, apiKey)
}

func newClient(endpoint string, httpClient *http.Client, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	authed := &http.Client{
		Transport: &apiKeyTransport{base: httpClient.Transport, apiKey: apiKey},
		Timeout:   httpClient.Timeout,
	}
	return &Client{
		gql:    graphql.NewClient(endpoint, authed),
		apiKey: apiKey,
	}
}

// IsAuthenticated reports whether an API key is configured.
func (c *Client) IsAuthenticated() bool { return c.apiKey != "" }

// apiKeyTransport adds the apikey header to every request.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey != "" {
		req.Header.Set("apikey", t.apiKey)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// GetMod fetches a mod by its Nexus game domain and mod ID.
func (c *Client) GetMod(ctx context.Context, gameDomain string, modID int) (*ModData, error) {
	var query struct {
		Mod ModData `graphql:"mod(gameDomainName: $gameDomain, modId: $modId)"`
	}
	variables := map[string]interface{}{
		"gameDomain": graphql.String(gameDomain),
		"modId":      graphql.Int(modID),
	}
	if err := c.gql.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("querying mod: %w", err)
	}
	return &query.Mod, nil
}

// GetModFiles fetches the downloadable files for a mod.
func (c *Client) GetModFiles(ctx context.Context, gameDomain string, modID int) ([]FileData, error) {
	var query struct {
		ModFiles struct {
			Nodes []FileData `graphql:"nodes"`
		} `graphql:"modFiles(gameDomainName: $gameDomain, modId: $modId)"`
	}
	variables := map[string]interface{}{
		"gameDomain": graphql.String(gameDomain),
		"modId":      graphql.Int(modID),
	}
	if err := c.gql.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("querying mod files: %w", err)
	}
	return query.ModFiles.Nodes, nil
}

// CheckUpdates compares installed packages against their current Nexus
// versions. gameDomain maps game profile IDs to Nexus domains; packages
// without a Nexus mod ID or from unmapped games are skipped, as are mods
// that can no longer be fetched.
func (c *Client) CheckUpdates(ctx context.Context, installed []domain.InstalledPackage, gameDomain map[string]string) ([]domain.Update, error) {
	var updates []domain.Update
	for _, pkg := range installed {
		select {
		case <-ctx.Done():
			return updates, ctx.Err()
		default:
		}
		if pkg.NexusModID == 0 {
			continue
		}
		dom, ok := gameDomain[pkg.Game]
		if !ok || dom == "" {
			continue
		}
		remote, err := c.GetMod(ctx, dom, pkg.NexusModID)
		if err != nil {
			continue
		}
		if isNewerVersion(pkg.Version, remote.Version) {
			updates = append(updates, domain.Update{Package: pkg, NewVersion: remote.Version})
		}
	}
	return updates, nil
}

// isNewerVersion reports whether remote is newer than current. Unparseable
// versions are treated as different-is-newer, which matches how mod authors
// tend to bump free-form versions.
func isNewerVersion(current, remote string) bool {
	if remote == "" || current == remote {
		return false
	}
	cv, err1 := goversion.NewVersion(current)
	rv, err2 := goversion.NewVersion(remote)
	if err1 != nil || err2 != nil {
		return current != remote
	}
	return rv.GreaterThan(cv)
}
