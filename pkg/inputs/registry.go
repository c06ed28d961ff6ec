// Package inputs is the shared registry of form input definitions.
// The CLI export command and the configuration overlay in pkg/config
// both resolve input-type names against this registry.
package inputs

import (
	"maps"
	"slices"
)

// Family groups inputs that share a schema skeleton and styling hooks.
type Family string

const (
	FamilyText     Family = "text"
	FamilyBox      Family = "box"
	FamilyButton   Family = "button"
	FamilySelect   Family = "select"
	FamilyTextarea Family = "textarea"
	FamilyFile     Family = "file"
	FamilyRange    Family = "range"
	FamilyNone     Family = ""
)

// Kind classifies how an input's node holds its value.
type Kind string

const (
	// KindInput holds a single scalar value.
	KindInput Kind = "input"
	// KindGroup holds a keyed map of child values.
	KindGroup Kind = "group"
	// KindList holds an ordered slice of child values.
	KindList Kind = "list"
)

// Definition describes one named form input type.
type Definition struct {
	Name   string
	Family Family
	Kind   Kind
}

// registry is the static name → definition mapping. Lookup is exact
// and case-sensitive.
var registry = map[string]Definition{
	"button":         {Name: "button", Family: FamilyButton, Kind: KindInput},
	"checkbox":       {Name: "checkbox", Family: FamilyBox, Kind: KindInput},
	"color":          {Name: "color", Family: FamilyText, Kind: KindInput},
	"date":           {Name: "date", Family: FamilyText, Kind: KindInput},
	"datetime-local": {Name: "datetime-local", Family: FamilyText, Kind: KindInput},
	"email":          {Name: "email", Family: FamilyText, Kind: KindInput},
	"file":           {Name: "file", Family: FamilyFile, Kind: KindInput},
	"form":           {Name: "form", Family: FamilyNone, Kind: KindGroup},
	"group":          {Name: "group", Family: FamilyNone, Kind: KindGroup},
	"hidden":         {Name: "hidden", Family: FamilyText, Kind: KindInput},
	"list":           {Name: "list", Family: FamilyNone, Kind: KindList},
	"meta":           {Name: "meta", Family: FamilyNone, Kind: KindInput},
	"month":          {Name: "month", Family: FamilyText, Kind: KindInput},
	"number":         {Name: "number", Family: FamilyText, Kind: KindInput},
	"password":       {Name: "password", Family: FamilyText, Kind: KindInput},
	"radio":          {Name: "radio", Family: FamilyBox, Kind: KindInput},
	"range":          {Name: "range", Family: FamilyRange, Kind: KindInput},
	"search":         {Name: "search", Family: FamilyText, Kind: KindInput},
	"select":         {Name: "select", Family: FamilySelect, Kind: KindInput},
	"submit":         {Name: "submit", Family: FamilyButton, Kind: KindInput},
	"tel":            {Name: "tel", Family: FamilyText, Kind: KindInput},
	"text":           {Name: "text", Family: FamilyText, Kind: KindInput},
	"textarea":       {Name: "textarea", Family: FamilyTextarea, Kind: KindInput},
	"time":           {Name: "time", Family: FamilyText, Kind: KindInput},
	"url":            {Name: "url", Family: FamilyText, Kind: KindInput},
	"week":           {Name: "week", Family: FamilyText, Kind: KindInput},
}

// Get returns the definition registered under name. The second return
// value reports whether the name is part of the input package.
func Get(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// Has reports whether name is registered.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all registered input names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Count returns the number of registered inputs.
func Count() int {
	return len(registry)
}

// ByFamily returns the sorted names of all inputs in the given family.
func ByFamily(f Family) []string {
	var names []string
	for name, def := range registry {
		if def.Family == f {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
