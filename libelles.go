package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func runLibelles(args []string) error {
	fs := flag.NewFlagSet("libelles", flag.ExitOnError)
	excel := fs.String("excel", "", "Path to the survey definition workbook (required)")
	out := fs.String("out", "", "Locales output directory (default: <project root>/locales)")
	overwrite := fs.Bool("overwrite", false, "Replace values already present in the locale files")
	section := fs.String("section", "", "Limit generation to one section (reserved; extraction currently covers all sections)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	fs.Parse(args)

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *excel == "" {
		return fmt.Errorf("--excel is required")
	}

	outRoot := *out
	if outRoot == "" {
		root, err := surveyRoot()
		if err != nil {
			return err
		}
		outRoot = localesPath(root)
	}

	if err := generateLibelles(*excel, outRoot, *overwrite, *section, defaultYAMLStyle()); err != nil {
		logFailure(err)
		return err
	}
	return nil
}

// generateLibelles regenerates the per-language locale files under outRoot
// from the survey definition workbook. Existing files are loaded first so
// curated values survive merging, and files without mutations are never
// rewritten. The section parameter is reserved for per-section filtering
// and is not applied yet.
func generateLibelles(excelPath, outRoot string, overwrite bool, section string, style yamlStyle) error {
	reg := newTranslationRegistry(outRoot, style)

	if err := loadExistingTranslations(outRoot, reg, style); err != nil {
		return err
	}

	f, err := excelize.OpenFile(excelPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", excelPath, err)
	}
	defer f.Close()

	if err := fillFromWorkbook(f, reg, overwrite); err != nil {
		return err
	}

	return reg.save()
}

// loadExistingTranslations scans exactly two directory levels under outRoot
// (language directories, then section files) and registers each loaded
// locale file. A file that exists but cannot be parsed aborts the run.
func loadExistingTranslations(outRoot string, reg *translationRegistry, style yamlStyle) error {
	langDirs, err := os.ReadDir(outRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", outRoot, err)
	}

	for _, langDir := range langDirs {
		if !langDir.IsDir() {
			continue
		}
		lang := langDir.Name()
		files, err := os.ReadDir(filepath.Join(outRoot, lang))
		if err != nil {
			return fmt.Errorf("reading %s: %w", filepath.Join(outRoot, lang), err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ymlExt) {
				continue
			}
			section := strings.TrimSuffix(file.Name(), ymlExt)
			store := newTranslationStore(filepath.Join(outRoot, lang, file.Name()), style)
			if err := store.load(); err != nil {
				return err
			}
			reg.addStore(lang, section, store)
			log.Debugf("Loaded %d translations from %s", len(store.entries), filepath.ToSlash(store.path))
		}
	}
	return nil
}
