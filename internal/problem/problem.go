// SPDX-License-Identifier: MIT

// Package problem loads least-squares problem files for the linfit driver.
//
// A file describes either a linear system (a, b) or a curve fit (x, y, degree),
// plus optional solver settings. YAML (.yaml, .yml) and TOML (.toml) are
// accepted; the format is picked from the file extension. Unknown keys are
// rejected in both formats.
//
//	# system.yaml
//	method: qr
//	tolerance: 1e-10
//	a:
//	  - [3, 4, 5]
//	  - [6, 1, 2]
//	  - [2, 3, 0]
//	b: [1, 2, 3]
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

// Format is a problem-file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Kind tells what a Problem describes.
type Kind int

const (
	KindSystem Kind = iota // a and b
	KindFit                // x, y and degree
)

var (
	// ErrUnsupportedFormat is returned for an extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("problem: unsupported file format")

	// ErrInvalid is returned when a file does not decode, or decodes to an
	// incomplete or inconsistent problem.
	ErrInvalid = errors.New("problem: invalid problem")
)

// Problem is the decoded content of a problem file.
type Problem struct {
	A [][]float64 `yaml:"a" toml:"a"`
	B []float64   `yaml:"b" toml:"b"`

	X      []float64 `yaml:"x" toml:"x"`
	Y      []float64 `yaml:"y" toml:"y"`
	Degree int       `yaml:"degree" toml:"degree"`

	Method          string   `yaml:"method" toml:"method"`
	Tolerance       *float64 `yaml:"tolerance" toml:"tolerance"`
	ExplicitInverse bool     `yaml:"explicit_inverse" toml:"explicit_inverse"`
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads, decodes and validates the problem file at path.
func Load(path string) (*Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Problem, error) {
	var p Problem
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("problem: decode yaml: %w: %w", err, ErrInvalid)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("problem: decode toml: %w: %w", err, ErrInvalid)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("problem: unknown toml key %q: %w", undecoded[0].String(), ErrInvalid)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Kind reports whether p is a curve fit (x/y present) or a linear system.
func (p *Problem) Kind() Kind {
	if len(p.X) > 0 || len(p.Y) > 0 {
		return KindFit
	}

	return KindSystem
}

// Validate checks that exactly one of (a, b) and (x, y) is present, that it is
// well formed and finite, and that the solver settings parse. Shape relations
// between A and b are left to the solver.
func (p *Problem) Validate() error {
	hasSystem := len(p.A) > 0 || len(p.B) > 0
	if hasSystem && p.Kind() == KindFit {
		return fmt.Errorf("both a/b and x/y given: %w", ErrInvalid)
	}

	if p.Kind() == KindFit {
		if len(p.X) == 0 || len(p.Y) == 0 {
			return fmt.Errorf("fit needs both x and y: %w", ErrInvalid)
		}
		if err := finite("x", p.X); err != nil {
			return err
		}
		if err := finite("y", p.Y); err != nil {
			return err
		}
	} else {
		if len(p.A) == 0 || len(p.B) == 0 {
			return fmt.Errorf("system needs both a and b: %w", ErrInvalid)
		}
		for i, row := range p.A {
			if len(row) != len(p.A[0]) || len(row) == 0 {
				return fmt.Errorf("a row %d has %d values, want %d: %w", i, len(row), len(p.A[0]), ErrInvalid)
			}
			if err := finite(fmt.Sprintf("a[%d]", i), row); err != nil {
				return err
			}
		}
		if err := finite("b", p.B); err != nil {
			return err
		}
	}

	if _, err := p.SolverMethod(); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalid)
	}
	if t := p.Tolerance; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0) || *t < 0 || *t >= 1) {
		return fmt.Errorf("tolerance %g outside [0, 1): %w", *t, ErrInvalid)
	}

	return nil
}

// SolverMethod returns the configured method; an empty name selects QR.
func (p *Problem) SolverMethod() (lstsq.Method, error) {
	if p.Method == "" {
		return lstsq.MethodQR, nil
	}

	return lstsq.ParseMethod(p.Method)
}

// SolverOptions translates the file settings into solver options.
func (p *Problem) SolverOptions() []lstsq.Option {
	var opts []lstsq.Option
	if p.Tolerance != nil {
		opts = append(opts, lstsq.WithSingularTol(*p.Tolerance))
	}
	if p.ExplicitInverse {
		opts = append(opts, lstsq.WithExplicitInverse())
	}

	return opts
}

// System builds A and b as dense matrices.
func (p *Problem) System() (*matrix.Dense, *matrix.Dense, error) {
	if p.Kind() != KindSystem {
		return nil, nil, fmt.Errorf("not a linear system: %w", ErrInvalid)
	}
	a, err := matrix.NewDenseFrom(p.A)
	if err != nil {
		return nil, nil, fmt.Errorf("problem: a: %w", err)
	}
	b, err := matrix.NewColumn(p.B)
	if err != nil {
		return nil, nil, fmt.Errorf("problem: b: %w", err)
	}

	return a, b, nil
}

func finite(name string, vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d] is not finite: %w", name, i, ErrInvalid)
		}
	}

	return nil
}
