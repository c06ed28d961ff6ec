package config

// Provider yields the resolved global configuration. The framework's
// initialization routine calls it once at startup; build tooling
// locates the DefaultConfig call site that produced it.
type Provider func() Options

// LegacyProvider yields a resolved legacy configuration.
//
// Deprecated: use [Provider].
type LegacyProvider func() LegacyOptions

// DefaultConfig wraps opts in a Provider. The returned accessor yields
// the exact value passed in, unmodified, on every call. No validation,
// defaulting or merging happens here.
func DefaultConfig(opts Options) Provider {
	return func() Options {
		return opts
	}
}

// LegacySource is the tagged union of the two deprecated configuration
// shapes: a plain [LegacyOptions] value, or a zero-argument function
// returning one. Construct it with [LegacyValue] or [LegacyFunc].
type LegacySource struct {
	options LegacyOptions
	fn      func() LegacyOptions
}

// LegacyValue wraps a plain legacy options value.
func LegacyValue(opts LegacyOptions) LegacySource {
	return LegacySource{options: opts}
}

// LegacyFunc wraps a zero-argument function returning legacy options.
// The function is invoked on every accessor call, never memoized.
func LegacyFunc(fn func() LegacyOptions) LegacySource {
	return LegacySource{fn: fn}
}

// DefaultLegacyConfig wraps a legacy source in a LegacyProvider. If the
// source is a function it is called; otherwise the stored value is
// returned as-is.
//
// Deprecated: use [DefaultConfig].
func DefaultLegacyConfig(src LegacySource) LegacyProvider {
	return func() LegacyOptions {
		if src.fn != nil {
			return src.fn()
		}
		return src.options
	}
}
