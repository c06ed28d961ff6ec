package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crishoj/formkit/internal/ui"
	"github.com/crishoj/formkit/pkg/inputs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inputs available for export",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listFamilies is the display order for input family groups.
var listFamilies = []struct {
	family inputs.Family
	label  string
}{
	{inputs.FamilyText, "Text"},
	{inputs.FamilyBox, "Box"},
	{inputs.FamilyButton, "Button"},
	{inputs.FamilySelect, "Select"},
	{inputs.FamilyTextarea, "Textarea"},
	{inputs.FamilyFile, "File"},
	{inputs.FamilyRange, "Range"},
	{inputs.FamilyNone, "Structure"},
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintln(out, ui.Accent.Render(fmt.Sprintf("%d inputs available:", inputs.Count())))
	for _, group := range listFamilies {
		names := inputs.ByFamily(group.family)
		if len(names) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(out, "%s  %s\n",
			ui.Primary.Render(group.label+":"),
			strings.Join(names, ", "))
	}
	_, _ = fmt.Fprintln(out, ui.Muted.Render("Run `formkit export <name>` to copy one into your project."))
	return nil
}
