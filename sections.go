package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func runSections(args []string) error {
	fs := flag.NewFlagSet("sections", flag.ExitOnError)
	excel := fs.String("excel", "", "Path to the survey definition workbook")
	out := fs.String("out", "", "Path of the sections module to write (required)")
	fs.Parse(args)

	if *out == "" {
		return fmt.Errorf("--out is required")
	}

	sections := fs.Args()
	if len(sections) == 0 {
		if *excel == "" {
			return fmt.Errorf("--excel is required when no section names are given")
		}
		f, err := excelize.OpenFile(*excel)
		if err != nil {
			return fmt.Errorf("opening %s: %w", *excel, err)
		}
		defer f.Close()
		sections, err = sectionNames(f)
		if err != nil {
			logFailure(err)
			return err
		}
	}

	if err := generateSections(*out, sections); err != nil {
		logFailure(err)
		return err
	}
	return nil
}

// sectionNames returns the distinct section names of the Widgets sheet in
// order of first appearance, skipping blanks.
func sectionNames(f *excelize.File) ([]string, error) {
	rows, err := f.GetRows(widgetsSheet)
	if err != nil {
		return nil, &StructureError{Sheet: widgetsSheet, Err: err}
	}
	if len(rows) == 0 {
		return nil, &StructureError{Sheet: widgetsSheet, Err: errors.New("missing header row")}
	}
	cols, err := resolveWidgetColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		section := strings.TrimSpace(cellAt(row, cols.section))
		if section == "" || seen[section] {
			continue
		}
		seen[section] = true
		names = append(names, section)
	}
	return names, nil
}

// generateSections writes the TypeScript module that imports every
// section's configs and re-exports them as one object.
func generateSections(outPath string, sections []string) error {
	var b strings.Builder
	for _, section := range sections {
		fmt.Fprintf(&b, "import %sConfigs from './sections/%s/configs';\n", section, section)
	}
	b.WriteString("\n// Export all the sections configs\nexport default {\n")
	for _, section := range sections {
		fmt.Fprintf(&b, "    %s: %sConfigs,\n", section, section)
	}
	b.WriteString("};\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Infof("Generated %s", filepath.ToSlash(outPath))
	return nil
}
