package defs

// Common file and directory names used across the project.
const (
	// TSConfigJSON marks a TypeScript project when present in the
	// working directory.
	TSConfigJSON = "tsconfig.json"

	// RCFileYAML is the optional per-project defaults file read by the
	// CLI from the working directory.
	RCFileYAML = ".formkitrc.yaml"

	// DefaultExportDir is the directory exports land in when no --dir
	// flag is given, relative to the working directory.
	DefaultExportDir = "inputs"
)

// Segments of the export artifact path, resolved relative to the CLI
// installation root as <root>/../../inputs/dist/exports/<name>.<lang>.
const (
	InputsPackageDir = "inputs"
	DistDir          = "dist"
	ExportsDir       = "exports"
)

// Output language tags accepted by the export command.
const (
	LangTS = "ts"
	LangJS = "js"
)
