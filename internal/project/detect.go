// Package project inspects the invoking project's working directory:
// output-language guessing and optional .formkitrc.yaml defaults.
package project

import (
	"os"
	"path/filepath"

	"github.com/crishoj/formkit/internal/defs"
)

// DetectLanguage guesses the output language for a project directory:
// "ts" when a tsconfig.json is present, "js" otherwise.
func DetectLanguage(dir string) string {
	if _, err := os.Stat(filepath.Join(dir, defs.TSConfigJSON)); err == nil {
		return defs.LangTS
	}
	return defs.LangJS
}
