// Package config provides the typed global configuration surface for
// FormKit applications.
//
// The central entry point is [DefaultConfig], which wraps an [Options]
// value in a [Provider] accessor. The wrapper performs no validation,
// defaulting or merging: its only purpose is deferred evaluation, so
// build tooling can statically locate the configuration call site
// before the framework resolves it at runtime.
//
//	provider := config.DefaultConfig(config.Options{
//	    Theme:  "genesis",
//	    Locale: "en",
//	})
//	opts := provider() // the exact value passed in, unmodified
//
// The deprecated legacy shapes (an options object with a nested node
// configuration, or a zero-argument function returning one) are kept
// for older applications via [DefaultLegacyConfig] and [LegacySource].
package config
