package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSectionNames(t *testing.T) {
	f := buildWorkbook(t, sheetDef{
		name: widgetsSheet,
		rows: [][]interface{}{
			widgetsHeader,
			{"q1", "home", "home_title", "a", "b"},
			{"q2", "home", "home_subtitle", "a", "b"},
			{"q3", "", "orphan", "", ""},
			{"q4", "profile", "profile_name", "a", "b"},
			{"q5", "end", "end_note", "a", "b"},
		},
	})

	names, err := sectionNames(f)
	if err != nil {
		t.Fatalf("sectionNames: %v", err)
	}
	want := []string{"home", "profile", "end"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSectionNamesMissingSheet(t *testing.T) {
	f := buildWorkbook(t)
	_, err := sectionNames(f)
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("got %v, want StructureError", err)
	}
	if structErr.Sheet != widgetsSheet {
		t.Errorf("sheet = %q", structErr.Sheet)
	}
}

func TestGenerateSections(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sections.ts")
	if err := generateSections(outPath, []string{"home", "profile"}); err != nil {
		t.Fatalf("generateSections: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "import homeConfigs from './sections/home/configs';\n" +
		"import profileConfigs from './sections/profile/configs';\n" +
		"\n" +
		"// Export all the sections configs\n" +
		"export default {\n" +
		"    home: homeConfigs,\n" +
		"    profile: profileConfigs,\n" +
		"};\n"
	if string(data) != want {
		t.Errorf("sections.ts:\n%s\nwant:\n%s", data, want)
	}
}

func TestGenerateSectionsEmpty(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sections.ts")
	if err := generateSections(outPath, nil); err != nil {
		t.Fatalf("generateSections: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "\n// Export all the sections configs\nexport default {\n};\n"
	if string(data) != want {
		t.Errorf("sections.ts:\n%s\nwant:\n%s", data, want)
	}
}

func TestRunSections(t *testing.T) {
	t.Run("explicit section names", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "sections.ts")
		if err := runSections([]string{"--out", outPath, "home", "end"}); err != nil {
			t.Fatalf("runSections: %v", err)
		}
		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 {
			t.Error("empty sections module")
		}
	})

	t.Run("names from workbook", func(t *testing.T) {
		xlsx := widgetsOnlyWorkbook(t, []interface{}{"q1", "home", "home_title", "a", "b"})
		outPath := filepath.Join(t.TempDir(), "sections.ts")
		if err := runSections([]string{"--out", outPath, "--excel", xlsx}); err != nil {
			t.Fatalf("runSections: %v", err)
		}
		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "import homeConfigs") {
			t.Errorf("sections.ts:\n%s", data)
		}
	})

	t.Run("missing out flag", func(t *testing.T) {
		if err := runSections(nil); err == nil {
			t.Error("missing --out should be an error")
		}
	})

	t.Run("missing excel and names", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "sections.ts")
		if err := runSections([]string{"--out", outPath}); err == nil {
			t.Error("no sections and no workbook should be an error")
		}
	})
}
