// Package locales provides the locale registry type referenced by the
// global configuration: a mapping from locale identifier to its set of
// translated UI and validation strings, with matcher-based fallback
// for locale resolution.
package locales

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Messages is one locale's set of translated strings, keyed by message
// identifier.
type Messages map[string]string

// Registry maps locale identifiers to their message sets. The zero
// value is usable.
type Registry struct {
	messages map[string]Messages
	tags     []language.Tag
	ids      []string
}

// NewRegistry builds a registry from the given locale → messages map.
// Identifiers that do not parse as BCP 47 tags are skipped.
func NewRegistry(m map[string]Messages) *Registry {
	r := &Registry{}
	for _, id := range slices.Sorted(maps.Keys(m)) {
		r.Register(id, m[id])
	}
	return r
}

// Register adds or replaces the message set for a locale identifier.
// Invalid identifiers are ignored.
func (r *Registry) Register(id string, msgs Messages) {
	tag, err := language.Parse(id)
	if err != nil {
		return
	}
	if r.messages == nil {
		r.messages = make(map[string]Messages)
	}
	if _, exists := r.messages[id]; !exists {
		r.tags = append(r.tags, tag)
		r.ids = append(r.ids, id)
	}
	r.messages[id] = msgs
}

// Get returns the message set registered under the exact identifier.
func (r *Registry) Get(id string) (Messages, bool) {
	msgs, ok := r.messages[id]
	return msgs, ok
}

// IDs returns the registered locale identifiers in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// BestMatch resolves a requested locale to the closest registered
// identifier using BCP 47 matching, so "en-AU" falls back to "en" and
// "zh-Hant-TW" to a registered "zh" variant. The second return value
// is false when the registry is empty or the request does not parse.
func (r *Registry) BestMatch(requested string) (string, bool) {
	if len(r.tags) == 0 {
		return "", false
	}
	want, err := language.Parse(requested)
	if err != nil {
		return "", false
	}
	matcher := language.NewMatcher(r.tags)
	_, idx, conf := matcher.Match(want)
	if conf == language.No {
		return r.ids[0], true
	}
	return r.ids[idx], true
}

// Lookup resolves a requested locale with BestMatch and returns its
// message set.
func (r *Registry) Lookup(requested string) (Messages, bool) {
	id, ok := r.BestMatch(requested)
	if !ok {
		return nil, false
	}
	return r.Get(id)
}
