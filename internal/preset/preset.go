// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preset stores saved searches. A preset captures the committed
// query and filter state plus a result summary, so a search can be
// reloaded later without retyping every filter. Persistence sits behind
// the Repository interface; the engine never touches storage directly.
// Implements: prd014-presets (R1-R3).
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/sirajlabs/siraj/pkg/types"
)

// ErrNotFound is returned when no preset exists under the requested name.
var ErrNotFound = errors.New("preset not found")

// Preset is the on-disk representation of a saved search.
type Preset struct {
	// Name identifies the preset. Letters, digits, dashes, and underscores.
	Name string `yaml:"name"`

	// Query is the committed free-text query.
	Query string `yaml:"query,omitempty"`

	// Filters is the committed filter state.
	Filters types.FilterState `yaml:"filters"`

	// Summary captures result statistics at save time.
	Summary Summary `yaml:"summary"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	ActualCount       int       `yaml:"actual_count"`
	PercentageOfTotal string    `yaml:"percentage_of_total,omitempty"`
	SavedAt           time.Time `yaml:"saved_at"`
}

// Repository persists presets by name.
type Repository interface {
	Save(p Preset) error
	Load(name string) (Preset, error)
	List() ([]Preset, error)
	Delete(name string) error
}

// FileRepository stores one YAML file per preset under a directory.
type FileRepository struct {
	dir string
}

// NewFileRepository returns a repository rooted at dir. The directory is
// created on first save.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Save writes the preset to dir/<name>.yaml, stamping SavedAt when unset.
func (r *FileRepository) Save(p Preset) error {
	if err := validName(p.Name); err != nil {
		return err
	}
	if p.Summary.SavedAt.IsZero() {
		p.Summary.SavedAt = time.Now().UTC()
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating preset directory: %w", err)
	}
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}
	return os.WriteFile(r.path(p.Name), data, 0o644)
}

// Load reads the preset saved under name.
func (r *FileRepository) Load(name string) (Preset, error) {
	if err := validName(name); err != nil {
		return Preset{}, err
	}
	data, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return Preset{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("reading preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parsing preset %q: %w", name, err)
	}
	return p, nil
}

// List returns all saved presets, newest first.
func (r *FileRepository) List() ([]Preset, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preset directory: %w", err)
	}

	var presets []Preset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		p, err := r.Load(strings.TrimSuffix(entry.Name(), ".yaml"))
		if err != nil {
			// A corrupt preset file is skipped, not fatal to listing.
			continue
		}
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Summary.SavedAt.After(presets[j].Summary.SavedAt)
	})
	return presets, nil
}

// Delete removes the preset saved under name.
func (r *FileRepository) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	err := os.Remove(r.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return err
}

func (r *FileRepository) path(name string) string {
	return filepath.Join(r.dir, name+".yaml")
}

// validName rejects names that could escape the preset directory.
func validName(name string) error {
	if name == "" {
		return fmt.Errorf("preset name is empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("invalid preset name %q: use letters, digits, dashes, underscores", name)
		}
	}
	return nil
}
