package profile

import (
	"fmt"
	"sort"
	"sync"

	"bmm/internal/domain"
)

// Loader builds a profile on first use. RegisterLoader defers the cost of
// assembling a game's literal tables until something asks for that game.
type Loader func() (*Profile, error)

// Registry is the single source of truth for per-game profiles. Profiles
// are write-once: registration validates the bundle, computes the derived
// condition sets, and freezes it. Reads never block each other.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once    sync.Once
	load    Loader
	profile *Profile
	err     error
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register validates and stores a fully-populated profile. It fails with
// domain.ErrDuplicateProfile if the game is already registered (or has a
// loader), and with a *ValidationError if the bundle is inconsistent; a
// failed registration leaves no entry behind.
func (r *Registry) Register(p *Profile) error {
	if err := prepare(p); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[p.ID]; exists {
		return fmt.Errorf("%s: %w", p.ID, domain.ErrDuplicateProfile)
	}
	e := &entry{profile: p}
	e.once.Do(func() {}) // already loaded
	r.entries[p.ID] = e
	return nil
}

// RegisterLoader registers a lazy profile source for a game. The loader
// runs at most once, on first Get; concurrent callers observe the same
// profile instance. A loader or validation failure is remembered and
// returned to every caller, without affecting other games.
func (r *Registry) RegisterLoader(gameID string, load Loader) error {
	if gameID == "" {
		return validationErr("(unnamed)", "id", "game ID must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[gameID]; exists {
		return fmt.Errorf("%s: %w", gameID, domain.ErrDuplicateProfile)
	}
	r.entries[gameID] = &entry{load: load}
	return nil
}

// Get returns the immutable profile for a game, constructing it first if it
// was registered lazily. It fails with domain.ErrUnknownGame for games never
// registered.
func (r *Registry) Get(gameID string) (*Profile, error) {
	r.mu.Lock()
	e, ok := r.entries[gameID]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", gameID, domain.ErrUnknownGame)
	}
	e.once.Do(func() {
		p, err := e.load()
		if err != nil {
			e.err = fmt.Errorf("loading profile %s: %w", gameID, err)
			return
		}
		if p.ID != gameID {
			e.err = validationErr(gameID, "id", "loader produced profile %q", p.ID)
			return
		}
		if err := prepare(p); err != nil {
			e.err = err
			return
		}
		e.profile = p
	})
	if e.err != nil {
		return nil, e.err
	}
	return e.profile, nil
}

// Table returns one of a game's subsystem tables by name. It fails with
// domain.ErrUnknownTable if the profile does not declare the table.
func (r *Registry) Table(gameID, name string) (Table, error) {
	p, err := r.Get(gameID)
	if err != nil {
		return nil, err
	}
	t, ok := p.Tables[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", gameID, name, domain.ErrUnknownTable)
	}
	return t, nil
}

// IDs returns all registered game IDs in sorted order, including lazy
// entries that have not been constructed yet.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for id := range r.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// prepare validates a profile and fills its derived condition sets.
func prepare(p *Profile) error {
	if err := Validate(p); err != nil {
		return err
	}
	p.Conditions = ProjectConditionSets(p.ConditionFunctions)
	return nil
}
