package config

import (
	"github.com/crishoj/formkit/pkg/inputs"
	"github.com/crishoj/formkit/pkg/locales"
)

// Plugin is a framework plugin applied to every node the framework
// creates. Plugins run in the order they appear in Options.Plugins.
type Plugin interface {
	// PluginName identifies the plugin for diagnostics and for
	// build-time optimization passes.
	PluginName() string
}

// Rule is a validation rule. It receives the current input value and
// reports whether the value passes.
type Rule func(value any) bool

// IconLoader resolves an icon name to its markup. The second return
// value reports whether the loader could supply the icon.
type IconLoader func(name string) (string, bool)

// FeatureToggle is a finer-grained optimization toggle for one feature
// area. IncludeBuiltins controls whether the framework's built-in
// pieces for the area are bundled or left to static analysis.
type FeatureToggle struct {
	Enabled         bool
	IncludeBuiltins bool
}

// Toggle wraps either a plain on/off flag or a [FeatureToggle] pair.
// The zero value means "use the framework default".
type Toggle struct {
	flag    *bool
	feature *FeatureToggle
}

// Enabled returns a plain boolean toggle.
func Enabled(on bool) Toggle {
	return Toggle{flag: &on}
}

// Feature returns a finer-grained toggle.
func Feature(ft FeatureToggle) Toggle {
	return Toggle{feature: &ft}
}

// IsSet reports whether the toggle carries an explicit value.
func (t Toggle) IsSet() bool {
	return t.flag != nil || t.feature != nil
}

// Resolve returns the effective enabled/include-builtins pair. A plain
// boolean toggle includes builtins whenever it is off, matching the
// framework default of bundling everything that is not optimized away.
func (t Toggle) Resolve() FeatureToggle {
	switch {
	case t.feature != nil:
		return *t.feature
	case t.flag != nil:
		return FeatureToggle{Enabled: *t.flag, IncludeBuiltins: !*t.flag}
	default:
		return FeatureToggle{IncludeBuiltins: true}
	}
}

// Optimize holds the per-feature-area build-time optimization toggles.
type Optimize struct {
	Inputs     Toggle
	Validation Toggle
	I18N       Toggle
	Icons      Toggle
	Theme      Toggle
}

// Options is the global configuration value for a FormKit application.
// Every field is optional; the zero value defers entirely to framework
// defaults. Options is a pure value object: the framework never
// mutates it after construction.
type Options struct {
	// Optimize controls which feature areas the build-time optimizer
	// may tree-shake down to statically referenced pieces.
	Optimize Optimize

	// NodeOptions are initialization parameters applied when the
	// framework constructs internal form-field representations.
	NodeOptions map[string]any

	// Plugins are applied to every node, in order.
	Plugins []Plugin

	// Messages lists the localization message keys to load.
	Messages []string

	// Rules overlays additional validation rules by name.
	Rules map[string]Rule

	// Locales overlays locale registries by locale identifier.
	Locales map[string]locales.Messages

	// Inputs overlays input-type definitions by name.
	Inputs map[string]inputs.Definition

	// LocaleOverrides replaces individual messages per locale without
	// supplying a whole registry.
	LocaleOverrides map[string]locales.Messages

	// Locale is the default locale identifier.
	Locale string

	// Theme is the theme identifier.
	Theme string

	// IconLoader resolves icons not found in Icons.
	IconLoader IconLoader

	// IconLoaderURL maps an icon name to a remote location the
	// framework fetches it from.
	IconLoaderURL func(name string) string

	// Icons statically maps icon names to their markup.
	Icons map[string]string
}

// LegacyOptions is the configuration shape accepted before the
// statically analyzable [Options] form existed. The node configuration
// lives in the required nested Config field.
//
// Deprecated: use [Options] with [DefaultConfig] so build tooling can
// analyze the configuration statically.
type LegacyOptions struct {
	// Config is the nested node configuration. The legacy shape
	// requires it even when empty.
	Config map[string]any

	Plugins []Plugin
	Rules   map[string]Rule
	Locales map[string]locales.Messages
	Inputs  map[string]inputs.Definition
	Locale  string
	Theme   string
	Icons   map[string]string
}
