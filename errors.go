package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// FileFormatError reports an existing locale file that could not be parsed.
// Merging against unreadable prior state aborts the run.
type FileFormatError struct {
	Path string
	Err  error
}

func (e *FileFormatError) Error() string {
	return fmt.Sprintf("loading locale file %s: %v", e.Path, e.Err)
}

func (e *FileFormatError) Unwrap() error { return e.Err }

// StructureError reports a workbook sheet whose shape does not match the
// expected layout: a missing sheet, missing required columns, too few rows,
// or a malformed row.
type StructureError struct {
	Sheet string
	Err   error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("sheet %s: %v", e.Sheet, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// TranslationAddError reports a failure while merging one translation,
// identified by its full (language, section, path) key.
type TranslationAddError struct {
	Lang    string
	Section string
	Path    string
	Err     error
}

func (e *TranslationAddError) Error() string {
	return fmt.Sprintf("adding translation %s/%s %s: %v", e.Lang, e.Section, e.Path, e.Err)
}

func (e *TranslationAddError) Unwrap() error { return e.Err }

// logFailure reports a failed run once, attaching the structured context
// carried by the error. Intermediate layers return errors without logging
// so each failure produces a single log line.
func logFailure(err error) {
	var addErr *TranslationAddError
	var structureErr *StructureError
	var formatErr *FileFormatError
	switch {
	case errors.As(err, &addErr):
		log.WithError(addErr.Err).WithFields(log.Fields{
			"lang":    addErr.Lang,
			"section": addErr.Section,
			"path":    addErr.Path,
		}).Error("Adding translation failed")
	case errors.As(err, &structureErr):
		log.WithError(structureErr.Err).WithField("sheet", structureErr.Sheet).Error("Workbook structure check failed")
	case errors.As(err, &formatErr):
		log.WithError(formatErr.Err).WithField("file", formatErr.Path).Error("Locale file could not be parsed")
	default:
		log.WithError(err).Error("Generation failed")
	}
}
