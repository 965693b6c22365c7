package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/creditpilot/credit-wizard/pkg/config"
	"github.com/creditpilot/credit-wizard/pkg/model"
)

const (
	calculationFile = "last_calculation.json"
	formDataFile    = "form_data.json"
)

// FormData are the raw wizard fields, persisted so a restarted wizard can
// pre-fill them.
type FormData struct {
	BusinessIdea string `json:"businessIdea"`
	UnitOfWork   string `json:"unitOfWork"`
	MonthlyCount string `json:"monthlyCount"`
}

// Store persists the most recent wizard result and form fields to two
// well-known files. Single slot, last-write-wins, no history.
type Store struct {
	dir string
}

func New() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return NewAt(dir), nil
}

func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) SaveCalculation(calc *model.CreditCalculation) error {
	return s.write(calculationFile, calc)
}

// LoadCalculation returns nil when no snapshot exists. A snapshot that no
// longer parses is discarded and its file removed.
func (s *Store) LoadCalculation() *model.CreditCalculation {
	var calc model.CreditCalculation
	if !s.read(calculationFile, &calc) {
		return nil
	}
	return &calc
}

func (s *Store) SaveFormData(data FormData) error {
	return s.write(formDataFile, data)
}

func (s *Store) LoadFormData() *FormData {
	var data FormData
	if !s.read(formDataFile, &data) {
		return nil
	}
	return &data
}

// Clear removes both snapshot files. Missing files are not an error.
func (s *Store) Clear() error {
	var errs []error
	for _, name := range []string{calculationFile, formDataFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string, v any) bool {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		os.Remove(path)
		return false
	}
	return true
}
