package profile

import (
	"fmt"
	"strings"
)

// ValidationError reports an internal inconsistency in a profile's declared
// tables. Registration of the offending game fails; other games are not
// affected.
type ValidationError struct {
	Game  string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile %s: %s: %s", e.Game, e.Field, e.Msg)
}

func validationErr(game, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Game: game, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Validate checks a profile's invariants: a non-empty identity, unique
// condition function IDs, lowercase file sets, exactly one default option
// per tweak, and tweak editor-ID references that resolve against the
// profile's known-ID set when one is declared.
func Validate(p *Profile) error {
	if p.ID == "" {
		return validationErr("(unnamed)", "id", "game ID must not be empty")
	}
	if p.Name == "" {
		return validationErr(p.ID, "name", "display name must not be empty")
	}

	seen := make(map[uint32]string, len(p.ConditionFunctions))
	for _, f := range p.ConditionFunctions {
		if prev, dup := seen[f.ID]; dup {
			return validationErr(p.ID, "condition_functions",
				"duplicate function id %d (%s and %s)", f.ID, prev, f.Name)
		}
		seen[f.ID] = f.Name
		if f.ParamArity < 0 || f.ParamArity > 2 {
			return validationErr(p.ID, "condition_functions",
				"function %d (%s) has arity %d, want 0..2", f.ID, f.Name, f.ParamArity)
		}
	}

	for setName, set := range map[string]FileSet{
		"data_files":    p.DataFiles,
		"vanilla_files": p.VanillaFiles,
	} {
		for name := range set {
			if name != strings.ToLower(name) {
				return validationErr(p.ID, setName, "file name %q is not lowercase", name)
			}
		}
	}

	for _, id := range p.ZeroFormEditorIDs {
		if id == "" {
			return validationErr(p.ID, "zero_form_editor_ids", "empty editor ID")
		}
	}

	known := make(map[string]struct{}, len(p.KnownEditorIDs))
	for _, id := range p.KnownEditorIDs {
		known[id] = struct{}{}
	}

	tweakKeys := make(map[string]struct{})
	for field, tweaks := range map[string][]Tweak{
		"global_tweaks":  p.GlobalTweaks,
		"setting_tweaks": p.SettingTweaks,
	} {
		for _, t := range tweaks {
			if t.Key == "" {
				return validationErr(p.ID, field, "tweak %q has no key", t.Label)
			}
			if _, dup := tweakKeys[t.Key]; dup {
				return validationErr(p.ID, field, "duplicate tweak key %q", t.Key)
			}
			tweakKeys[t.Key] = struct{}{}
			if err := validateTweak(p.ID, field, t, known); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateTweak(game, field string, t Tweak, known map[string]struct{}) error {
	if len(t.EditorIDs) == 0 {
		return validationErr(game, field, "tweak %q targets no editor IDs", t.Key)
	}
	for _, id := range t.EditorIDs {
		if id == "" {
			return validationErr(game, field, "tweak %q has an empty editor ID", t.Key)
		}
		if len(known) > 0 {
			if _, ok := known[id]; !ok {
				return validationErr(game, field,
					"tweak %q references unknown editor ID %q", t.Key, id)
			}
		}
	}
	if len(t.Options) == 0 {
		return validationErr(game, field, "tweak %q has no options", t.Key)
	}
	defaults := 0
	for _, o := range t.Options {
		if o.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		return validationErr(game, field,
			"tweak %q has %d default options, want exactly 1", t.Key, defaults)
	}
	return nil
}
