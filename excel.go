package main

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	widgetsSheet = "Widgets"
	labelsSheet  = "Labels"
)

// widgetColumns maps the named Widgets-sheet fields to their column
// positions, resolved once from the header row.
type widgetColumns struct {
	questionName int
	section      int
	path         int
	fr           int
	en           int
}

// resolveWidgetColumns locates the required Widgets columns by header name.
// Header cells are matched after whitespace trimming; missing columns are a
// StructureError so a misshapen sheet fails before any merging starts.
func resolveWidgetColumns(header []string) (widgetColumns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	lookup := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		missing = append(missing, name)
		return -1
	}

	cols := widgetColumns{
		questionName: lookup("questionName"),
		section:      lookup("section"),
		path:         lookup("path"),
		fr:           lookup("fr"),
		en:           lookup("en"),
	}
	if len(missing) > 0 {
		return cols, &StructureError{
			Sheet: widgetsSheet,
			Err:   fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}
	return cols, nil
}

// labelsTable indexes the optional Labels sheet by its key column. headers
// keeps the column order of the sheet so translations are added in a
// deterministic sequence.
type labelsTable struct {
	headers []string
	rows    map[string]map[string]string
}

func (t *labelsTable) row(key string) (map[string]string, bool) {
	cells, ok := t.rows[key]
	return cells, ok
}

// loadLabelsTable reads the Labels sheet into an index keyed by the "key"
// column. The sheet must exist, carry a key header, and hold at least one
// data row; any other shape is a StructureError for the caller to handle.
func loadLabelsTable(f *excelize.File) (*labelsTable, error) {
	rows, err := f.GetRows(labelsSheet)
	if err != nil {
		return nil, &StructureError{Sheet: labelsSheet, Err: err}
	}
	if len(rows) <= 1 {
		return nil, &StructureError{Sheet: labelsSheet, Err: errors.New("not enough rows")}
	}

	table := &labelsTable{rows: make(map[string]map[string]string)}
	seen := make(map[string]bool)
	keyCol := -1
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		table.headers = append(table.headers, h)
		if h == "key" {
			keyCol = i
		}
	}
	if keyCol < 0 {
		return nil, &StructureError{Sheet: labelsSheet, Err: errors.New("missing required column: key")}
	}

	for _, row := range rows[1:] {
		key := strings.TrimSpace(cellAt(row, keyCol))
		if key == "" {
			continue
		}
		cells := make(map[string]string, len(table.headers))
		for i, h := range rows[0] {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			cells[h] = cellAt(row, i)
		}
		table.rows[key] = cells
	}
	return table, nil
}

// addLabelTranslations feeds every per-language column of one label row
// into the registry. Column names split on the first underscore: a 2-letter
// prefix is the language, the remainder extends the question name. Reserved
// and empty columns are skipped. An "md" value of "1" keeps markdown intact
// for the whole row.
func addLabelTranslations(reg *translationRegistry, section, questionName string, cells map[string]string, headers []string, overwrite bool) error {
	keepMarkdown := cells["md"] == "1"
	for _, h := range headers {
		if h == "namespace" || h == "key" || h == "md" {
			continue
		}
		value := cells[h]
		if value == "" {
			continue
		}
		lang, suffix, found := strings.Cut(h, "_")
		if len(lang) != 2 {
			continue
		}
		key := questionName
		if found {
			key += "_" + suffix
		}
		if err := reg.add(lang, section, key, value, overwrite, keepMarkdown); err != nil {
			return err
		}
	}
	return nil
}

// fillFromWorkbook runs the extraction pass: every Widgets row yields
// translations either from its matching Labels row or from its own fr/en
// cells, merged into the registry under the run's overwrite flag.
func fillFromWorkbook(f *excelize.File, reg *translationRegistry, overwrite bool) error {
	rows, err := f.GetRows(widgetsSheet)
	if err != nil {
		return &StructureError{Sheet: widgetsSheet, Err: err}
	}
	if len(rows) == 0 {
		return &StructureError{Sheet: widgetsSheet, Err: errors.New("missing header row")}
	}
	cols, err := resolveWidgetColumns(rows[0])
	if err != nil {
		return err
	}

	// A missing or misshapen Labels sheet is a valid configuration: the
	// widget rows then carry their own values.
	labels, err := loadLabelsTable(f)
	if err != nil {
		log.WithError(err).Warn("Labels sheet unavailable; using Widgets values only")
		labels = &labelsTable{rows: make(map[string]map[string]string)}
	}

	overridden := 0
	for i, row := range rows[1:] {
		rowNum := i + 2
		questionName := strings.TrimSpace(cellAt(row, cols.questionName))
		section := strings.TrimSpace(cellAt(row, cols.section))
		path := strings.TrimSpace(cellAt(row, cols.path))
		fr := cellAt(row, cols.fr)
		en := cellAt(row, cols.en)

		if questionName == "" && section == "" && path == "" && fr == "" && en == "" {
			continue
		}

		if questionName != "" {
			if cells, ok := labels.row(questionName); ok {
				if section == "" {
					return &StructureError{Sheet: widgetsSheet, Err: fmt.Errorf("row %d: missing section", rowNum)}
				}
				if err := addLabelTranslations(reg, section, questionName, cells, labels.headers, overwrite); err != nil {
					return err
				}
				overridden++
				continue
			}
		}

		// Widgets rows carry no markdown column; only Labels rows opt in
		// via their "md" cell.
		for _, def := range []struct{ lang, value string }{{"fr", fr}, {"en", en}} {
			if def.value == "" {
				continue
			}
			if section == "" || path == "" {
				return &StructureError{Sheet: widgetsSheet, Err: fmt.Errorf("row %d: missing section or path", rowNum)}
			}
			if err := reg.add(def.lang, section, path, def.value, overwrite, false); err != nil {
				return err
			}
		}
	}

	log.Debugf("Processed %d widget rows (%d with label overrides)", len(rows)-1, overridden)
	return nil
}

// cellAt returns the value of column idx in row, or "" when the row is
// shorter. GetRows truncates trailing empty cells, so short rows are
// routine.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
