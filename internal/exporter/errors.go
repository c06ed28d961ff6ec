// Package exporter implements the export engine behind the formkit
// export command. All process-global state (working directory,
// installation root, output stream, prompt) is passed in via Env so
// the engine can be exercised hermetically in tests.
package exporter

import "errors"

// Sentinel errors for export operations.
var (
	// ErrUnknownInput indicates the requested name is not part of the
	// input package.
	ErrUnknownInput = errors.New("exporter: input is not part of the input package")

	// ErrArtifactMissing indicates no export artifact exists for the
	// input at the resolved source path.
	ErrArtifactMissing = errors.New("exporter: no export artifact found")

	// ErrCreateDir indicates the output directory could not be created.
	ErrCreateDir = errors.New("exporter: could not create output directory")

	// ErrWriteExport indicates the export payload could not be written
	// into the output directory.
	ErrWriteExport = errors.New("exporter: could not write export file")
)
