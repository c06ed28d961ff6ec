package config

import (
	"testing"

	"github.com/crishoj/formkit/pkg/locales"
)

func TestDefaultConfigReturnsValueUnmodified(t *testing.T) {
	t.Parallel()

	icons := map[string]string{"check": "<svg/>"}
	opts := Options{
		Locale:   "de",
		Theme:    "genesis",
		Messages: []string{"required", "email"},
		Icons:    icons,
		Locales: map[string]locales.Messages{
			"de": {"required": "Pflichtfeld"},
		},
	}

	provider := DefaultConfig(opts)

	got := provider()
	if got.Locale != "de" || got.Theme != "genesis" {
		t.Errorf("provider() = %+v, want the value passed in", got)
	}
	if len(got.Messages) != 2 || got.Messages[0] != "required" {
		t.Errorf("Messages: got %v, want [required email]", got.Messages)
	}

	// Reference fields must be the same maps, not copies.
	icons["check"] = "<svg>changed</svg>"
	if provider().Icons["check"] != "<svg>changed</svg>" {
		t.Error("provider() should yield the exact value, not a deep copy")
	}
}

func TestDefaultConfigZeroValue(t *testing.T) {
	t.Parallel()

	provider := DefaultConfig(Options{})
	got := provider()
	if got.Locale != "" || got.Plugins != nil || got.Rules != nil {
		t.Errorf("provider() = %+v, want zero Options", got)
	}
}

func TestDefaultLegacyConfigValue(t *testing.T) {
	t.Parallel()

	opts := LegacyOptions{
		Config: map[string]any{"delimiter": "|"},
		Locale: "fr",
	}
	provider := DefaultLegacyConfig(LegacyValue(opts))

	got := provider()
	if got.Locale != "fr" {
		t.Errorf("Locale: got %q, want %q", got.Locale, "fr")
	}
	if got.Config["delimiter"] != "|" {
		t.Errorf("Config: got %v, want the nested node configuration", got.Config)
	}
}

func TestDefaultLegacyConfigFuncCalledPerAccess(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := DefaultLegacyConfig(LegacyFunc(func() LegacyOptions {
		calls++
		return LegacyOptions{Locale: string(rune('a' + calls - 1))}
	}))

	first := provider()
	second := provider()

	if calls != 2 {
		t.Errorf("source function called %d times, want 2 (no memoization)", calls)
	}
	if first.Locale == second.Locale {
		t.Errorf("accessor calls yielded identical results %q, want fresh evaluation", first.Locale)
	}
}

func TestToggleResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		toggle Toggle
		want   FeatureToggle
	}{
		{"zero value defers with builtins", Toggle{}, FeatureToggle{Enabled: false, IncludeBuiltins: true}},
		{"enabled flag drops builtins", Enabled(true), FeatureToggle{Enabled: true, IncludeBuiltins: false}},
		{"disabled flag keeps builtins", Enabled(false), FeatureToggle{Enabled: false, IncludeBuiltins: true}},
		{"feature pair is returned as-is", Feature(FeatureToggle{Enabled: true, IncludeBuiltins: true}), FeatureToggle{Enabled: true, IncludeBuiltins: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.toggle.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToggleIsSet(t *testing.T) {
	t.Parallel()

	if (Toggle{}).IsSet() {
		t.Error("zero Toggle should not be set")
	}
	if !Enabled(false).IsSet() {
		t.Error("explicit false toggle should be set")
	}
	if !Feature(FeatureToggle{}).IsSet() {
		t.Error("feature toggle should be set")
	}
}
