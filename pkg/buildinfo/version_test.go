package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if Current().Version != "v1.2.3" {
		t.Errorf("Current().Version = %q", Current().Version)
	}
}
