package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crishoj/formkit/internal/defs"
	"github.com/crishoj/formkit/internal/project"
	"github.com/crishoj/formkit/internal/ui"
	"github.com/crishoj/formkit/pkg/inputs"
)

// Env carries the process context an export runs in. CLI wiring fills
// it from the real process; tests construct it directly.
type Env struct {
	// WorkDir is the invoking process's working directory.
	WorkDir string

	// InstallRoot is the directory the CLI binary is installed in.
	// Export artifacts are resolved relative to it.
	InstallRoot string

	// Out receives the payload and all operator-facing messages.
	Out io.Writer

	// Confirm asks the operator a yes/no question. A nil Confirm
	// declines every prompt.
	Confirm func(title string) (bool, error)

	// Spin starts an activity indicator and returns its stop func. May
	// be nil.
	Spin func(title string) func()

	// DefaultLang is the rc-file export language default. When empty
	// the language is guessed from the working directory.
	DefaultLang string

	// DefaultDir is the rc-file export directory default. When empty
	// the standard inputs directory is used.
	DefaultDir string

	Logger *slog.Logger
}

// Request is one export invocation, built from command-line arguments.
type Request struct {
	// Input is the form input type to export.
	Input string

	// Dir is the output directory. Empty means the default.
	Dir string

	// Lang is the output language ("ts" or "js"). Empty means guess.
	Lang string
}

// Run exports one named form input definition.
//
// Unknown inputs and artifact or directory failures are returned as
// errors and terminate the command; a declined creation prompt and a
// non-writable existing directory abort the remaining steps without an
// error.
func Run(env Env, req Request) error {
	if _, ok := inputs.Get(req.Input); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInput, req.Input)
	}

	lang := env.resolveLang(req)
	payload, err := env.readArtifact(req.Input, lang)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(env.Out, payload)

	dir := env.resolveDir(req)
	created, proceed, err := env.ensureDir(dir)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}
	if !created && !writable(dir) {
		_, _ = fmt.Fprintln(env.Out, ui.Warn.Render(fmt.Sprintf("Directory %s is not writable.", dir)))
		return nil
	}

	target := filepath.Join(dir, req.Input+"."+lang)
	if err := os.WriteFile(target, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}

	_, _ = fmt.Fprintln(env.Out, ui.Success.Render(fmt.Sprintf("Exported %s to %s", req.Input, target)))
	return nil
}

// resolveLang picks the output language: explicit flag, rc default,
// then a guess based on the working directory.
func (env Env) resolveLang(req Request) string {
	if req.Lang != "" {
		return req.Lang
	}
	if env.DefaultLang != "" {
		return env.DefaultLang
	}
	return project.DetectLanguage(env.WorkDir)
}

// resolveDir picks the output directory, anchoring relative paths at
// the working directory.
func (env Env) resolveDir(req Request) string {
	dir := req.Dir
	if dir == "" {
		dir = env.DefaultDir
	}
	if dir == "" {
		dir = defs.DefaultExportDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(env.WorkDir, dir)
	}
	return dir
}

// readArtifact loads the export payload for an input. Artifacts ship
// with the CLI installation; there is no CDN fetch behind the check
// message yet.
func (env Env) readArtifact(name, lang string) (string, error) {
	source := filepath.Join(env.InstallRoot, "..", "..",
		defs.InputsPackageDir, defs.DistDir, defs.ExportsDir, name+"."+lang)

	stop := env.spin(fmt.Sprintf("Checking CDN for %s…", name))
	data, err := os.ReadFile(source)
	stop()

	if err != nil {
		if env.Logger != nil {
			env.Logger.Warn("export artifact not readable", "path", source, "error", err)
		}
		return "", fmt.Errorf("%w for %q (looked in %s)", ErrArtifactMissing, name, source)
	}
	return string(data), nil
}

// ensureDir makes sure the output directory exists, prompting before
// creating it. It returns whether the directory was freshly created
// and whether the export should proceed.
func (env Env) ensureDir(dir string) (created, proceed bool, err error) {
	if _, statErr := os.Stat(dir); statErr == nil {
		return false, true, nil
	}

	ok := false
	if env.Confirm != nil {
		ok, err = env.Confirm(fmt.Sprintf("Directory %s does not exist. Create it?", dir))
		if err != nil {
			return false, false, err
		}
	}
	if !ok {
		_, _ = fmt.Fprintln(env.Out, ui.Muted.Render("Export directory not created."))
		return false, false, nil
	}

	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return false, false, fmt.Errorf("%w: %v", ErrCreateDir, mkErr)
	}
	return true, true, nil
}

// spin starts the activity indicator, falling back to a muted line.
func (env Env) spin(title string) func() {
	if env.Spin != nil {
		return env.Spin(title)
	}
	_, _ = fmt.Fprintln(env.Out, ui.Muted.Render(title))
	return func() {}
}

// writable probes a directory for write access by creating and
// removing a temp file. Checking permission bits alone misses ACLs
// and read-only mounts.
func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".formkit-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
