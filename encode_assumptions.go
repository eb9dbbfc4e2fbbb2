package divproj

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// This file persists assumptions records as small YAML files, so a set of
// scenarios can be kept under version control and replayed. Projection
// results themselves are never persisted, they are cheap to recompute.

// DecodeAssumptions reads an assumptions record from YAML. Fields absent
// from the document keep the default value, so a file only needs to state
// what differs from the defaults.
func DecodeAssumptions(r io.Reader) (Assumptions, error) {
	a := DefaultAssumptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		if err == io.EOF {
			return a, nil
		}
		return Assumptions{}, fmt.Errorf("parsing assumptions: %w", err)
	}
	return a, nil
}

// EncodeAssumptions writes the record as canonical YAML.
func EncodeAssumptions(w io.Writer, a Assumptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding assumptions: %w", err)
	}
	return enc.Close()
}

// LoadAssumptions reads and validates an assumptions file.
func LoadAssumptions(path string) (Assumptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Assumptions{}, fmt.Errorf("opening assumptions file: %w", err)
	}
	defer f.Close()

	a, err := DecodeAssumptions(f)
	if err != nil {
		return Assumptions{}, fmt.Errorf("reading %q: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return Assumptions{}, fmt.Errorf("in %q: %w", path, err)
	}
	return a, nil
}

// SaveAssumptions writes an assumptions file in canonical form.
func SaveAssumptions(path string, a Assumptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating assumptions file: %w", err)
	}
	defer f.Close()
	return EncodeAssumptions(f, a)
}
