package ligolw

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"doc.xml", "doc.xml.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, buildSampleDoc()); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			doc, err := Load(path, nil)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			root := doc.Children()[0]
			if root.TagName() != "LIGO_LW" {
				t.Fatalf("root tag = %q, want LIGO_LW", root.TagName())
			}
			comment := root.Children()[0]
			if got := strings.TrimSpace(comment.PCData()); got != "made by hand" {
				t.Errorf("comment pcdata = %q, want %q", got, "made by hand")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xml"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}
