package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/crishoj/formkit/internal/defs"
	"github.com/crishoj/formkit/internal/exporter"
	"github.com/crishoj/formkit/internal/project"
	"github.com/crishoj/formkit/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export <inputName>",
	Short: "Export a form input definition into your project",
	Long: `Export a single named input definition from the shared input
library into a directory of your project, where you can customize it.

Examples:
  formkit export text                Export the text input to ./inputs
  formkit export select -d src/kit   Export into src/kit
  formkit export radio -l js         Force a JavaScript export`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateExportFlags,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("dir", "d", "", "Output directory (default: ./inputs)")
	exportCmd.Flags().StringP("lang", "l", "", "Output language: ts or js (default: guessed from the project)")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// validateExportFlags validates flag values before execution.
func validateExportFlags(cmd *cobra.Command, _ []string) error {
	lang := getStringFlag(cmd, "lang")
	if lang != "" {
		validLangs := []string{defs.LangTS, defs.LangJS}
		if !slices.Contains(validLangs, lang) {
			return fmt.Errorf("invalid --lang value %q: must be one of: ts, js", lang)
		}
	}
	return nil
}

// runExport wires the real process context into the export engine.
func runExport(cmd *cobra.Command, args []string) error {
	env, err := buildEnv(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	req := exporter.Request{
		Input: args[0],
		Dir:   getStringFlag(cmd, "dir"),
		Lang:  getStringFlag(cmd, "lang"),
	}

	if err := exporter.Run(env, req); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), ui.Error.Render(err.Error()))
		// The message above is the operator-facing report; silence
		// cobra's own echo and keep the non-zero exit.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return err
	}
	return nil
}

// buildEnv assembles an exporter.Env from the running process: working
// directory, binary installation root, rc-file defaults, and the
// interactive prompt with its headless fallback.
func buildEnv(out io.Writer) (exporter.Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return exporter.Env{}, fmt.Errorf("get working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return exporter.Env{}, fmt.Errorf("locate installation root: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rc := project.LoadRCOrDefault(cwd, logger)
	hm := ui.NewHeadlessManager()

	return exporter.Env{
		WorkDir:     cwd,
		InstallRoot: filepath.Dir(exe),
		Out:         out,
		Confirm: func(title string) (bool, error) {
			ok, err := ui.Confirm(hm, title)
			if errors.Is(err, ui.ErrCancelled) {
				// Aborting the prompt counts as declining it.
				return false, nil
			}
			return ok, err
		},
		Spin: func(title string) func() {
			s := ui.NewSpinner(hm, title)
			return s.Stop
		},
		DefaultLang: rc.Export.Lang,
		DefaultDir:  rc.Export.Dir,
		Logger:      logger,
	}, nil
}
