package cli

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/crishoj/formkit/internal/exporter"
	"github.com/crishoj/formkit/pkg/inputs"
)

//go:embed docs/*.md
var docsFS embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs <inputName>",
	Short: "Show usage documentation for an input",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

// familyDocFiles maps an input family to its bundled doc page.
var familyDocFiles = map[inputs.Family]string{
	inputs.FamilyText:     "docs/text.md",
	inputs.FamilyBox:      "docs/box.md",
	inputs.FamilyButton:   "docs/button.md",
	inputs.FamilySelect:   "docs/select.md",
	inputs.FamilyTextarea: "docs/textarea.md",
	inputs.FamilyFile:     "docs/file.md",
	inputs.FamilyRange:    "docs/range.md",
	inputs.FamilyNone:     "docs/structure.md",
}

func runDocs(cmd *cobra.Command, args []string) error {
	def, ok := inputs.Get(args[0])
	if !ok {
		cmd.SilenceUsage = true
		return fmt.Errorf("%w: %q", exporter.ErrUnknownInput, args[0])
	}

	raw, err := docsFS.ReadFile(familyDocFiles[def.Family])
	if err != nil {
		return fmt.Errorf("load docs for %q: %w", def.Name, err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	page, err := renderer.Render(fmt.Sprintf("# %s\n\n%s", def.Name, raw))
	if err != nil {
		return fmt.Errorf("render docs: %w", err)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), page)
	return nil
}
