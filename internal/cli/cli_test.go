package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/crishoj/formkit/internal/exporter"
	"github.com/crishoj/formkit/pkg/inputs"
)

func TestValidateExportFlags(t *testing.T) {
	tests := []struct {
		lang    string
		wantErr bool
	}{
		{"", false},
		{"ts", false},
		{"js", false},
		{"coffee", true},
		{"TS", true},
	}

	for _, tt := range tests {
		t.Run("lang="+tt.lang, func(t *testing.T) {
			if err := exportCmd.Flags().Set("lang", tt.lang); err != nil {
				t.Fatalf("failed to set flag: %v", err)
			}
			defer func() { _ = exportCmd.Flags().Set("lang", "") }()

			err := validateExportFlags(exportCmd, nil)
			if tt.wantErr && err == nil {
				t.Errorf("lang %q should be rejected", tt.lang)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("lang %q should be accepted, got: %v", tt.lang, err)
			}
		})
	}
}

func TestRunListNamesEveryInput(t *testing.T) {
	out := &bytes.Buffer{}
	listCmd.SetOut(out)
	defer listCmd.SetOut(nil)

	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("runList() error: %v", err)
	}

	got := out.String()
	for _, name := range inputs.Names() {
		if !strings.Contains(got, name) {
			t.Errorf("list output missing %q:\n%s", name, got)
		}
	}
	if !strings.Contains(got, "inputs available") {
		t.Errorf("list output missing the count line:\n%s", got)
	}
}

func TestRunDocsUnknownInput(t *testing.T) {
	out := &bytes.Buffer{}
	docsCmd.SetOut(out)
	defer docsCmd.SetOut(nil)

	err := runDocs(docsCmd, []string{"not-a-real-input"})
	if !errors.Is(err, exporter.ErrUnknownInput) {
		t.Fatalf("runDocs() error = %v, want ErrUnknownInput", err)
	}
	if !strings.Contains(err.Error(), "not-a-real-input") {
		t.Errorf("error should name the input: %v", err)
	}
}

func TestRunDocsRendersFamilyPage(t *testing.T) {
	out := &bytes.Buffer{}
	docsCmd.SetOut(out)
	defer docsCmd.SetOut(nil)

	if err := runDocs(docsCmd, []string{"checkbox"}); err != nil {
		t.Fatalf("runDocs() error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "checkbox") {
		t.Errorf("docs page missing the input name:\n%s", got)
	}
	if !strings.Contains(got, "Box-family") {
		t.Errorf("docs page missing the family content:\n%s", got)
	}
}

func TestEveryFamilyHasDocPage(t *testing.T) {
	t.Parallel()

	for _, name := range inputs.Names() {
		def, _ := inputs.Get(name)
		file, ok := familyDocFiles[def.Family]
		if !ok {
			t.Errorf("input %q family %q has no doc page mapping", name, def.Family)
			continue
		}
		if _, err := docsFS.ReadFile(file); err != nil {
			t.Errorf("doc page %s for input %q not embedded: %v", file, name, err)
		}
	}
}
