// SPDX-License-Identifier: MIT

// Package loader reads key/weight pairs for BuildTree from text or YAML.
//
// Text format, one pair per line (blank lines and '#' comments ignored):
//
//	# key   weight
//	1/2     4
//	3/4     2/3
//
// YAML format:
//
//	workers: 4          # optional
//	entries:
//	  - key: "1/2"
//	    weight: 4
//	  - key: "3/4"
//	    weight: "2/3"
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optbst/fraction"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("loader: parse error")

	// ErrUnknownFormat is returned for an unsupported Format value.
	ErrUnknownFormat = errors.New("loader: unknown input format")
)

// ParseError reports a malformed line (text) or entry (YAML).
//   - Line is 1-based; for YAML it is the source line of the offending node.
//   - Text is the offending input, trimmed.
//   - Err is the cause (e.g. fraction.ErrDivisionByZero).
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Format selects the input syntax.
type Format int

const (
	// FormatText is whitespace-separated "key weight" lines.
	FormatText Format = iota
	// FormatYAML is a YAML document with an entries list.
	FormatYAML
)

// Input is the parsed content of a source.
//   - Keys and Weights are parallel and in source order.
//   - Workers is the optional worker count from YAML (0 when unset).
type Input struct {
	Keys    []fraction.Fraction
	Weights []fraction.Fraction
	Workers int
}

// Len returns the number of entries.
func (in *Input) Len() int { return len(in.Keys) }

// FormatFor picks FormatYAML for .yaml/.yml paths and FormatText otherwise.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load opens path and reads it with FormatFor(path).
func Load(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open: %w", err)
	}
	defer f.Close()

	return Read(f, FormatFor(path))
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) (*Input, error) {
	switch format {
	case FormatText:
		return readText(r)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

func readText(r io.Reader) (*Input, error) {
	in := &Input{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		key, weight, err := parsePair(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		in.Keys = append(in.Keys, key)
		in.Weights = append(in.Weights, weight)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return in, nil
}

// parsePair splits "key weight" into two fractions. Tokens may contain
// blanks around the slash ("1 / 2"), so the line is re-tokenized first.
func parsePair(text string) (fraction.Fraction, fraction.Fraction, error) {
	tokens := tokenize(text)
	if len(tokens) != 2 {
		return fraction.Fraction{}, fraction.Fraction{},
			fmt.Errorf("want 2 values (key weight), got %d: %w", len(tokens), fraction.ErrSyntax)
	}
	key, err := fraction.Parse(tokens[0])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	weight, err := fraction.Parse(tokens[1])
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}

	return key, weight, nil
}

// tokenize splits on blanks and glues "a / b" back into "a/b".
func tokenize(text string) []string {
	fields := strings.Fields(text)
	var out []string
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		for {
			switch {
			case strings.HasSuffix(f, "/") && i+1 < len(fields):
				i++
				f += fields[i]
				continue
			case i+1 < len(fields) && strings.HasPrefix(fields[i+1], "/"):
				i++
				f += fields[i]
				continue
			}
			break
		}
		out = append(out, f)
	}

	return out
}

type yamlDoc struct {
	Workers int          `yaml:"workers"`
	Entries []*yamlEntry `yaml:"entries"`
}

// yamlEntry is one key/weight pair. Both fields are required and non-null.
type yamlEntry struct {
	Key    fraction.Fraction
	Weight fraction.Fraction
}

func (e *yamlEntry) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Key    *yamlFraction `yaml:"key"`
		Weight *yamlFraction `yaml:"weight"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Key == nil {
		return &ParseError{Line: node.Line, Text: "entry", Err: fmt.Errorf("missing or null key: %w", fraction.ErrSyntax)}
	}
	if raw.Weight == nil {
		return &ParseError{Line: node.Line, Text: "entry", Err: fmt.Errorf("missing or null weight: %w", fraction.ErrSyntax)}
	}
	e.Key, e.Weight = raw.Key.Fraction, raw.Weight.Fraction

	return nil
}

// yamlFraction decodes a scalar (int or "a/b" string) into a Fraction and
// reports failures with the node's line.
type yamlFraction struct {
	fraction.Fraction
}

func (y *yamlFraction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &ParseError{Line: node.Line, Text: node.Value, Err: fraction.ErrSyntax}
	}
	f, err := fraction.Parse(node.Value)
	if err != nil {
		return &ParseError{Line: node.Line, Text: node.Value, Err: err}
	}
	y.Fraction = f

	return nil
}

func readYAML(r io.Reader) (*Input, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Input{}, nil
		}
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Text: "yaml", Err: err}
	}
	if doc.Workers < 0 {
		return nil, &ParseError{Text: fmt.Sprintf("workers: %d", doc.Workers), Err: errors.New("workers must be >= 0")}
	}

	in := &Input{Workers: doc.Workers}
	for i, e := range doc.Entries {
		if e == nil {
			return nil, &ParseError{Text: fmt.Sprintf("entries[%d]: ~", i), Err: fmt.Errorf("null entry: %w", fraction.ErrSyntax)}
		}
		in.Keys = append(in.Keys, e.Key)
		in.Weights = append(in.Weights, e.Weight)
	}

	return in, nil
}
