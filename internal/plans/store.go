package plans

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viaifoundation/firstlight/core/errors"
)

// Store persists plans as <id>.json files under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first Save, not here, so a read-only caller can point at a missing
// directory without side effects.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the plan with the given ID.
func (s *Store) Load(id string) (*Plan, error) {
	path := filepath.Join(s.dir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "plan", ID: id, Err: err}
		}
		return nil, fmt.Errorf("read plan %s: %w", id, err)
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", id, err)
	}
	return &plan, nil
}

// Save writes the plan as two-space indented JSON, creating the store
// directory if needed.
func (s *Store) Save(plan *Plan) error {
	if plan.ID == "" {
		return &errors.ValidationError{Field: "id", Message: "plan ID is empty"}
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create plans directory: %w", err)
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", plan.ID, err)
	}
	path := filepath.Join(s.dir, plan.ID+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write plan %s: %w", plan.ID, err)
	}
	return nil
}

// List returns the IDs of all stored plans, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plans directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
