package fomod

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Plugin types, in effect an ordering from mandatory to forbidden.
const (
	TypeRequired      = "Required"
	TypeRecommended   = "Recommended"
	TypeOptional      = "Optional"
	TypeCouldBeUsable = "CouldBeUsable"
	TypeNotUsable     = "NotUsable"
)

// Group selection policies.
const (
	SelectExactlyOne = "SelectExactlyOne"
	SelectAtMostOne  = "SelectAtMostOne"
	SelectAtLeastOne = "SelectAtLeastOne"
	SelectAll        = "SelectAll"
	SelectAny        = "SelectAny"
)

// Plugin is one selectable option inside a group.
type Plugin struct {
	ID          string
	Name        string
	Description string
	Image       string
	Type        string // TypeRequired..TypeNotUsable, resolved against current flags

	entry pluginEntry
}

// Group is a set of plugins with a selection policy.
type Group struct {
	ID      string
	Name    string
	Type    string // SelectExactlyOne..SelectAny
	Plugins []Plugin
}

// Step is one page of the installer.
type Step struct {
	Name   string
	Groups []Group
}

// Answer maps group IDs to the IDs of the plugins selected in them. Groups
// with nothing selected may be omitted.
type Answer map[string][]string

// PlanEntry is one source-to-destination mapping in the final install plan.
// Source is relative to the package root, Destination to the game data
// directory; an empty Destination keeps the source path.
type PlanEntry struct {
	Source      string
	Destination string
	IsFolder    bool
}

// frame records one answered step so Back can unwind it.
type frame struct {
	stepIdx int
	flags   map[string]string
	files   []fileItem
}

// Installer walks a FOMOD install interactively. Call Start once, then
// alternate Current and Next (or Back) until Next reports no further step,
// and finally Plan.
type Installer struct {
	info Info
	cfg  *moduleConfig
	env  Env

	steps   []stepEntry
	history []frame
	current *Step
	curIdx  int
	started bool
	done    bool
}

// NewInstaller reads the installer files and prepares a walk-through.
func NewInstaller(files InstallerFiles, env Env) (*Installer, error) {
	info, err := ReadInfo(files.InfoPath)
	if err != nil {
		return nil, err
	}
	cfg, err := readModuleConfig(files.ConfigPath)
	if err != nil {
		return nil, err
	}
	ins := &Installer{info: info, cfg: cfg, env: env}
	if cfg.InstallSteps != nil {
		ins.steps = sortByOrder(cfg.InstallSteps.Steps, cfg.InstallSteps.Order, func(s stepEntry) string { return s.Name })
	}
	return ins, nil
}

// Info returns the package metadata from info.xml.
func (i *Installer) Info() Info { return i.info }

// Name returns the module name, falling back to the info.xml name.
func (i *Installer) Name() string {
	if i.cfg.ModuleName != "" {
		return i.cfg.ModuleName
	}
	return i.info.Name
}

// Start checks the module-level dependencies and moves to the first visible
// step. A *DependencyError means the package cannot be installed in this
// environment.
func (i *Installer) Start() (*Step, error) {
	if i.started {
		return nil, fmt.Errorf("installer already started")
	}
	if err := checkDependencies(i.cfg.ModuleDeps, nil, i.env); err != nil {
		return nil, err
	}
	i.started = true
	i.advance(0)
	return i.current, nil
}

// Current returns the step awaiting an answer, or nil once all steps are
// done.
func (i *Installer) Current() *Step { return i.current }

// Done reports whether every step has been answered.
func (i *Installer) Done() bool { return i.started && i.done }

// Next records the answer for the current step and moves to the next
// visible one. It returns nil when there are no further steps.
func (i *Installer) Next(answer Answer) (*Step, error) {
	if !i.started {
		return nil, fmt.Errorf("installer not started")
	}
	if i.current == nil {
		return nil, fmt.Errorf("no step awaiting an answer")
	}

	selected, err := i.selectedPlugins(answer)
	if err != nil {
		return nil, err
	}

	fr := frame{stepIdx: i.curIdx, flags: map[string]string{}}
	for _, p := range selected {
		if p.entry.Flags != nil {
			for _, f := range p.entry.Flags.Flags {
				fr.flags[f.Name] = f.Value
			}
		}
		fr.files = append(fr.files, p.entry.Files.items()...)
	}
	i.history = append(i.history, fr)
	i.advance(i.curIdx + 1)
	return i.current, nil
}

// Back discards the most recent answer and returns to its step.
func (i *Installer) Back() (*Step, error) {
	if len(i.history) == 0 {
		return nil, fmt.Errorf("already at the first step")
	}
	fr := i.history[len(i.history)-1]
	i.history = i.history[:len(i.history)-1]
	i.done = false
	i.curIdx = fr.stepIdx
	i.current = i.buildStep(&i.steps[fr.stepIdx])
	return i.current, nil
}

// Plan produces the final file mapping once every step is answered.
// Conditional installs are resolved against the accumulated flags; on
// destination conflicts higher priority wins, then the later selection.
func (i *Installer) Plan() ([]PlanEntry, error) {
	if !i.started || !i.done {
		return nil, fmt.Errorf("install steps not finished")
	}

	var layers [][]fileItem
	layers = append(layers, i.cfg.RequiredInstall.items())
	for _, fr := range i.history {
		layers = append(layers, fr.files)
	}
	if i.cfg.ConditionalFile != nil {
		flags := i.flags()
		for _, pat := range i.cfg.ConditionalFile.Patterns {
			if checkDependencies(pat.Deps, flags, i.env) == nil {
				layers = append(layers, pat.Files.items())
			}
		}
	}
	return flatten(layers), nil
}

// flags merges the flag layers of every answered step, newest winning.
func (i *Installer) flags() map[string]string {
	merged := map[string]string{}
	for _, fr := range i.history {
		for k, v := range fr.flags {
			merged[k] = v
		}
	}
	return merged
}

// advance moves to the first visible step at or after from, or marks the
// walk done.
func (i *Installer) advance(from int) {
	flags := i.flags()
	for idx := from; idx < len(i.steps); idx++ {
		s := &i.steps[idx]
		if vis := s.visibility(); vis != nil {
			if checkDependencies(vis, flags, i.env) != nil {
				continue
			}
		}
		i.curIdx = idx
		i.current = i.buildStep(s)
		return
	}
	i.current = nil
	i.done = true
}

// buildStep resolves a step entry into its presentable form, resolving
// plugin types against the current flags.
func (i *Installer) buildStep(s *stepEntry) *Step {
	step := &Step{Name: s.Name}
	if s.Groups == nil {
		return step
	}
	flags := i.flags()
	groups := sortByOrder(s.Groups.Groups, s.Groups.Order, func(g groupEntry) string { return g.Name })
	for _, g := range groups {
		group := Group{ID: uuid.NewString(), Name: g.Name, Type: g.Type}
		if g.Plugins != nil {
			plugins := sortByOrder(g.Plugins.Plugins, g.Plugins.Order, func(p pluginEntry) string { return p.Name })
			for _, p := range plugins {
				plugin := Plugin{
					ID:          uuid.NewString(),
					Name:        p.Name,
					Description: p.Description,
					Type:        resolveType(p.TypeDesc, flags, i.env),
					entry:       p,
				}
				if p.Image != nil {
					plugin.Image = p.Image.Path
				}
				group.Plugins = append(group.Plugins, plugin)
			}
		}
		step.Groups = append(step.Groups, group)
	}
	return step
}

// selectedPlugins validates an answer against the current step and returns
// the chosen plugins in group order.
func (i *Installer) selectedPlugins(answer Answer) ([]Plugin, error) {
	var selected []Plugin
	for _, g := range i.current.Groups {
		chosen := map[string]bool{}
		for _, id := range answer[g.ID] {
			chosen[id] = true
		}

		count := 0
		for _, p := range g.Plugins {
			if !chosen[p.ID] {
				if p.Type == TypeRequired {
					return nil, fmt.Errorf("group %q: plugin %q is required", g.Name, p.Name)
				}
				continue
			}
			delete(chosen, p.ID)
			if p.Type == TypeNotUsable {
				return nil, fmt.Errorf("group %q: plugin %q cannot be selected", g.Name, p.Name)
			}
			count++
			selected = append(selected, p)
		}
		if len(chosen) > 0 {
			return nil, fmt.Errorf("group %q: unknown plugin selection", g.Name)
		}

		switch g.Type {
		case SelectExactlyOne:
			if count != 1 {
				return nil, fmt.Errorf("group %q: exactly one plugin must be selected", g.Name)
			}
		case SelectAtMostOne:
			if count > 1 {
				return nil, fmt.Errorf("group %q: at most one plugin may be selected", g.Name)
			}
		case SelectAtLeastOne:
			if count < 1 {
				return nil, fmt.Errorf("group %q: at least one plugin must be selected", g.Name)
			}
		case SelectAll:
			if count != len(g.Plugins) {
				return nil, fmt.Errorf("group %q: every plugin must be selected", g.Name)
			}
		}
	}
	return selected, nil
}

// resolveType evaluates a plugin's type descriptor: a plain type wins,
// otherwise the first matching dependency pattern, otherwise the default.
func resolveType(td *typeDescriptor, flags map[string]string, env Env) string {
	if td == nil {
		return TypeOptional
	}
	if td.Type != nil && td.Type.Name != "" {
		return td.Type.Name
	}
	if td.DepType != nil {
		for _, pat := range td.DepType.Patterns {
			if pat.Type == nil {
				continue
			}
			if checkDependencies(pat.Deps, flags, env) == nil {
				return pat.Type.Name
			}
		}
		if td.DepType.Default != nil && td.DepType.Default.Name != "" {
			return td.DepType.Default.Name
		}
	}
	return TypeOptional
}

// flatten merges file layers into the final plan. Layers are oldest first;
// within the whole set lower priorities are written before higher ones, so
// for a shared source the highest priority wins and ties go to the later
// layer.
func flatten(layers [][]fileItem) []PlanEntry {
	var all []fileItem
	for _, layer := range layers {
		all = append(all, layer...)
	}
	sort.SliceStable(all, func(a, b int) bool { return all[a].priority() < all[b].priority() })

	plan := map[string]PlanEntry{}
	order := []string{}
	for _, f := range all {
		if _, seen := plan[f.Source]; !seen {
			order = append(order, f.Source)
		}
		plan[f.Source] = PlanEntry{Source: f.Source, Destination: f.Destination, IsFolder: f.folder}
	}

	out := make([]PlanEntry, 0, len(order))
	for _, src := range order {
		out = append(out, plan[src])
	}
	return out
}
