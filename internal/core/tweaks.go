package core

import (
	"fmt"

	"bmm/internal/domain"
	"bmm/internal/profile"
)

// EffectiveTweak pairs a profile tweak with the value currently in effect:
// the recorded selection if any, otherwise the profile default.
type EffectiveTweak struct {
	Tweak    profile.Tweak
	Selected *domain.TweakSelection // nil when the default applies
	Value    float64
	Enabled  bool
}

// Tweaks returns the effective state of every tweak in a game's profile,
// in profile order (global tweaks first).
func (s *Service) Tweaks(gameID string) ([]EffectiveTweak, error) {
	p, err := s.registry.Get(gameID)
	if err != nil {
		return nil, err
	}
	selections, err := s.db.GetTweakSelections(gameID)
	if err != nil {
		return nil, err
	}

	tweaks := p.Tweaks()
	out := make([]EffectiveTweak, 0, len(tweaks))
	for _, tw := range tweaks {
		et := EffectiveTweak{Tweak: tw, Enabled: tw.EnabledByDefault}
		et.Value = tw.DefaultOption().Value
		if sel, ok := selections[tw.Key]; ok {
			s := sel
			et.Selected = &s
			et.Value = sel.Value
			et.Enabled = true
		}
		out = append(out, et)
	}
	return out, nil
}

// SetTweak records the chosen option for a tweak. The option must be one of
// the tweak's labels.
func (s *Service) SetTweak(gameID, key, optionLabel string) error {
	tw, err := s.lookupTweak(gameID, key)
	if err != nil {
		return err
	}
	opt, ok := tw.Option(optionLabel)
	if !ok {
		return fmt.Errorf("tweak %s has no option %q", key, optionLabel)
	}
	return s.db.SaveTweakSelection(&domain.TweakSelection{
		Game:     gameID,
		TweakKey: key,
		Option:   opt.Label,
		Value:    opt.Value,
	})
}

// SetTweakValue records a custom value for a tweak. Only tweaks that carry
// a custom-input option accept one.
func (s *Service) SetTweakValue(gameID, key string, value float64) error {
	tw, err := s.lookupTweak(gameID, key)
	if err != nil {
		return err
	}
	custom := false
	for _, opt := range tw.Options {
		if opt.CustomInput {
			custom = true
			break
		}
	}
	if !custom {
		return fmt.Errorf("tweak %s does not accept custom values", key)
	}
	return s.db.SaveTweakSelection(&domain.TweakSelection{
		Game:     gameID,
		TweakKey: key,
		Value:    value,
	})
}

// ResetTweak clears the recorded choice for a tweak, reverting it to the
// profile default.
func (s *Service) ResetTweak(gameID, key string) error {
	if _, err := s.lookupTweak(gameID, key); err != nil {
		return err
	}
	return s.db.DeleteTweakSelection(gameID, key)
}

func (s *Service) lookupTweak(gameID, key string) (profile.Tweak, error) {
	p, err := s.registry.Get(gameID)
	if err != nil {
		return profile.Tweak{}, err
	}
	tw, ok := p.Tweak(key)
	if !ok {
		return profile.Tweak{}, fmt.Errorf("game %s has no tweak %q", gameID, key)
	}
	return tw, nil
}
