package main

import (
	"errors"
	"path/filepath"
	"sort"
)

// translationRegistry owns every translationStore of a run, indexed by
// language then section. Stores are created lazily on first reference to a
// (language, section) pair, or registered pre-loaded from disk.
type translationRegistry struct {
	outRoot string
	style   yamlStyle
	stores  map[string]map[string]*translationStore
}

func newTranslationRegistry(outRoot string, style yamlStyle) *translationRegistry {
	return &translationRegistry{
		outRoot: outRoot,
		style:   style,
		stores:  make(map[string]map[string]*translationStore),
	}
}

// addStore registers a pre-loaded store for a (language, section) pair.
func (r *translationRegistry) addStore(lang, section string, store *translationStore) {
	if r.stores[lang] == nil {
		r.stores[lang] = make(map[string]*translationStore)
	}
	r.stores[lang][section] = store
}

// store returns the store for (lang, section), creating it when absent.
func (r *translationRegistry) store(lang, section string) *translationStore {
	if st, ok := r.stores[lang][section]; ok {
		return st
	}
	st := newTranslationStore(filepath.Join(r.outRoot, lang, section+ymlExt), r.style)
	r.addStore(lang, section, st)
	return st
}

// add merges one translation into the store for (lang, section). A failure
// carries the full translation key context in the returned error.
func (r *translationRegistry) add(lang, section, path, value string, overwrite, keepMarkdown bool) error {
	if lang == "" || section == "" {
		return &TranslationAddError{
			Lang:    lang,
			Section: section,
			Path:    path,
			Err:     errors.New("empty language or section"),
		}
	}
	r.store(lang, section).add(path, value, overwrite, keepMarkdown)
	return nil
}

// save persists every modified store, iterating languages and sections in
// sorted order.
func (r *translationRegistry) save() error {
	langs := make([]string, 0, len(r.stores))
	for lang := range r.stores {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		sections := make([]string, 0, len(r.stores[lang]))
		for section := range r.stores[lang] {
			sections = append(sections, section)
		}
		sort.Strings(sections)
		for _, section := range sections {
			if err := r.stores[lang][section].save(); err != nil {
				return err
			}
		}
	}
	return nil
}
