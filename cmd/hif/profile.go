package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"hif/internal/hif"
)

// equalityProfile is the optional hif.toml section tuning the equality
// configuration the selfcheck and bench commands run under. Unset fields
// keep their defaults.
type equalityProfile struct {
	Equality equalityConfig `toml:"equality"`
}

type equalityConfig struct {
	CheckSpans            *bool `toml:"check_spans"`
	CheckFieldsInitial    *bool `toml:"check_fields_initial_value"`
	CheckSpanDirection    *bool `toml:"check_span_direction"`
	SkipChildren          *bool `toml:"skip_children"`
	SkipNullBranches      *bool `toml:"skip_null_branches"`
	SkipReferences        *bool `toml:"skip_references"`
	SkipDeclarationBodies *bool `toml:"skip_declaration_bodies"`
	SkipViewContents      *bool `toml:"skip_view_contents"`
	HandleVectorTypes     *bool `toml:"handle_vector_types"`
	HandleConstexprTypes  *bool `toml:"handle_constexpr_types"`
}

// findHifToml walks up from startDir looking for a hif.toml.
func findHifToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "hif.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadEqualsProfile resolves the equality configuration: the defaults,
// overridden by whatever a discovered hif.toml sets. The returned path is
// empty when no profile file was found.
func loadEqualsProfile(startDir string) (hif.EqualsOptions, string, error) {
	opts := hif.DefaultEqualsOptions()

	path, found, err := findHifToml(startDir)
	if err != nil {
		return opts, "", err
	}
	if !found {
		return opts, "", nil
	}

	var profile equalityProfile
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return opts, path, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	applyEqualityConfig(&opts, &profile.Equality)
	return opts, path, nil
}

func applyEqualityConfig(opts *hif.EqualsOptions, cfg *equalityConfig) {
	setIf := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&opts.CheckSpans, cfg.CheckSpans)
	setIf(&opts.CheckFieldsInitialValue, cfg.CheckFieldsInitial)
	setIf(&opts.CheckSpanDirection, cfg.CheckSpanDirection)
	setIf(&opts.SkipChildren, cfg.SkipChildren)
	setIf(&opts.SkipNullBranches, cfg.SkipNullBranches)
	setIf(&opts.SkipReferences, cfg.SkipReferences)
	setIf(&opts.SkipDeclarationBodies, cfg.SkipDeclarationBodies)
	setIf(&opts.SkipViewContents, cfg.SkipViewContents)
	setIf(&opts.HandleVectorTypes, cfg.HandleVectorTypes)
	setIf(&opts.HandleConstexprTypes, cfg.HandleConstexprTypes)
}
