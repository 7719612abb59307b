package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the business profile for the lifetime of the process.
// It has no mutation API; Profile hands out copies.
type Catalog struct {
	profile Profile
}

// New validates p and wraps a private copy of it.
func New(p Profile) (*Catalog, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Catalog{profile: p.Clone()}, nil
}

// Profile returns a copy of the business profile.
func (c *Catalog) Profile() Profile {
	return c.profile.Clone()
}

// BaseURL returns the canonical site URL without a trailing slash.
func (c *Catalog) BaseURL() string {
	return c.profile.BaseURL()
}

// Load reads a YAML profile from path and validates it.
func Load(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return Profile{}, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return p, nil
}

// Decode parses a YAML profile. Unknown fields are rejected.
func Decode(r io.Reader) (Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Profile{}, errors.New("empty profile document")
		}
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
