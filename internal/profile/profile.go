// Package profile holds the static per-game knowledge bmm ships with:
// vanilla file lists, condition function tables, tweak catalogs and the
// record-attribute tables the patcher subsystems consume. Profiles are
// registered once, validated, and immutable afterwards.
package profile

import (
	"sort"
	"strings"
)

// ParamKind classifies a condition function parameter
type ParamKind int

const (
	ParamNone ParamKind = iota // Function takes no value in this slot
	ParamInt                   // Plain integer argument
	ParamForm                  // Form ID reference into the record database
)

func (k ParamKind) String() string {
	switch k {
	case ParamInt:
		return "int"
	case ParamForm:
		return "form"
	default:
		return "none"
	}
}

// ParseParamKind converts a string to ParamKind
func ParseParamKind(s string) ParamKind {
	switch s {
	case "int":
		return ParamInt
	case "form":
		return ParamForm
	default:
		return ParamNone
	}
}

// ConditionFunction describes one scripting condition function as it appears
// in plugin CTDA data: its function index, how many parameters it takes, and
// what each parameter slot holds.
type ConditionFunction struct {
	ID         uint32
	Name       string
	ParamArity int
	Param1     ParamKind
	Param2     ParamKind
}

// FileSet is a case-insensitive set of file names. Members are stored
// lowercase; lookups normalize the same way.
type FileSet map[string]struct{}

// NewFileSet builds a FileSet from names, lowercasing each one.
func NewFileSet(names ...string) FileSet {
	s := make(FileSet, len(names))
	for _, n := range names {
		s[strings.ToLower(n)] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set, ignoring case.
func (s FileSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Sorted returns the members in sorted order.
func (s FileSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// TweakOption is one selectable value for a tweak.
type TweakOption struct {
	Label       string
	Value       float64
	IsDefault   bool // Exactly one option per tweak carries this
	CustomInput bool // Value is ignored; the user supplies a number
}

// Tweak is a user-selectable patch option targeting one or more game
// settings or global variables by editor ID.
type Tweak struct {
	Key              string // Stable identifier, e.g. "arrow-litter-count"
	Label            string
	Tooltip          string
	EditorIDs        []string
	Options          []TweakOption
	EnabledByDefault bool
}

// DefaultOption returns the option marked as default, or the zero option if
// the tweak has none (valid profiles always have exactly one).
func (t Tweak) DefaultOption() TweakOption {
	for _, o := range t.Options {
		if o.IsDefault {
			return o
		}
	}
	return TweakOption{}
}

// Option returns the option with the given label.
func (t Tweak) Option(label string) (TweakOption, bool) {
	for _, o := range t.Options {
		if o.Label == label {
			return o, true
		}
	}
	return TweakOption{}, false
}

// Table maps a record-type tag (e.g. "ARMO") to the attributes one patcher
// subsystem reads or rewrites on that record type. An empty attribute list
// means the table is a plain membership set for that tag.
type Table map[string][]string

// Tags returns the record-type tags in sorted order.
func (t Table) Tags() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Profile bundles everything bmm knows about one game. It is populated by a
// builtin game package, validated and frozen at registration.
type Profile struct {
	ID   string // Game slug, e.g. "oblivion"
	Name string // Display name

	// Install identity
	Exe         string   // Game executable name
	DetectFile  string   // Relative path whose presence proves an install
	MasterFiles []string // Vendor master plugins, load-order first
	IniFiles    []string // INI files the game reads, main file first
	DataDir     string   // Mod data directory relative to the install
	NexusDomain string   // NexusMods game domain, empty if not on Nexus

	// Vanilla content
	DataFiles    FileSet // Plugin/archive files shipped by the vendor
	VanillaFiles FileSet // Full vanilla file list, loose files included

	// Patching metadata
	ZeroFormEditorIDs  []string // Settings whose form ID is null; looked up by name
	KnownEditorIDs     []string // Optional closed set for tweak target validation
	ConditionFunctions []ConditionFunction
	GlobalTweaks       []Tweak // Global variable tweaks
	SettingTweaks      []Tweak // Game setting (GMST) tweaks
	Tables             map[string]Table
	RecordTypeNames    map[string]string // Tag -> human-readable name

	// Derived from ConditionFunctions at registration; never hand-edited.
	Conditions ConditionSets
}

// Tweaks returns global and setting tweaks as one slice, globals first.
func (p *Profile) Tweaks() []Tweak {
	out := make([]Tweak, 0, len(p.GlobalTweaks)+len(p.SettingTweaks))
	out = append(out, p.GlobalTweaks...)
	out = append(out, p.SettingTweaks...)
	return out
}

// Tweak returns the tweak with the given key.
func (p *Profile) Tweak(key string) (Tweak, bool) {
	for _, t := range p.Tweaks() {
		if t.Key == key {
			return t, true
		}
	}
	return Tweak{}, false
}

// TableNames returns the profile's declared table names in sorted order.
func (p *Profile) TableNames() []string {
	out := make([]string, 0, len(p.Tables))
	for name := range p.Tables {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RecordTypeName returns the display name for a record-type tag, falling
// back to the tag itself.
func (p *Profile) RecordTypeName(tag string) string {
	if name, ok := p.RecordTypeNames[tag]; ok {
		return name
	}
	return tag
}
