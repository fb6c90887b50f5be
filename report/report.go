// SPDX-License-Identifier: MIT

// Package report times a tree build and renders the outcome as text, JSON or
// msgpack. Text mirrors the classic level-by-level "(num/den)" listing.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ugorji/go/codec"

	"github.com/katalvlaran/optbst/fraction"
	"github.com/katalvlaran/optbst/obst"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering.
type Format string

const (
	// FormatText is the human-readable header plus level listing.
	FormatText Format = "text"
	// FormatJSON is the indented JSON encoding of Snapshot.
	FormatJSON Format = "json"
	// FormatMsgpack is the binary msgpack encoding of Snapshot.
	FormatMsgpack Format = "msgpack"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatMsgpack}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, s, Formats)
}

// Snapshot is the serializable outcome of one run.
type Snapshot struct {
	RunID     string     `codec:"run_id,omitempty"`
	Keys      int        `codec:"keys"`
	Workers   int        `codec:"workers"`
	TotalCost string     `codec:"total_cost"`
	ElapsedNS int64      `codec:"elapsed_ns,omitempty"`
	Height    int        `codec:"height"`
	Levels    [][]string `codec:"levels"`
	Order     string     `codec:"order,omitempty"`
	Traversal []string   `codec:"traversal,omitempty"`
}

// Elapsed returns the recorded duration.
func (s Snapshot) Elapsed() time.Duration { return time.Duration(s.ElapsedNS) }

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// NewSnapshot captures res. Levels are always filled; Traversal holds the keys
// in order when order is not LevelOrder.
func NewSnapshot(res *obst.Result, runID string, elapsed time.Duration, order obst.Order) Snapshot {
	tree := res.Tree()
	s := Snapshot{
		RunID:     runID,
		Keys:      tree.Len(),
		Workers:   res.Workers(),
		TotalCost: res.TotalCost().String(),
		ElapsedNS: int64(elapsed),
		Height:    tree.Height(),
		Levels:    [][]string{},
	}
	for _, level := range tree.LevelOrder() {
		s.Levels = append(s.Levels, fractionStrings(level))
	}
	if order != obst.LevelOrder {
		s.Order = order.String()
		s.Traversal = fractionStrings(tree.Keys(order))
	}

	return s
}

// Timed runs fn and returns its result together with the wall-clock duration.
func Timed[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	res, err := fn()

	return res, time.Since(start), err
}

// Render writes s to w in format f.
func Render(w io.Writer, s Snapshot, f Format) error {
	switch f {
	case FormatText:
		return renderText(w, s)
	case FormatJSON:
		h := jsonHandle()
		if err := codec.NewEncoder(w, h).Encode(s); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	case FormatMsgpack:
		if err := codec.NewEncoder(w, msgpackHandle()).Encode(s); err != nil {
			return fmt.Errorf("report: encode msgpack: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Decode reads a snapshot previously written with FormatJSON or FormatMsgpack.
func Decode(r io.Reader, f Format) (Snapshot, error) {
	var h codec.Handle
	switch f {
	case FormatJSON:
		h = jsonHandle()
	case FormatMsgpack:
		h = msgpackHandle()
	default:
		return Snapshot{}, fmt.Errorf("%w: %q cannot be decoded", ErrUnknownFormat, string(f))
	}

	var s Snapshot
	if err := codec.NewDecoder(r, h).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("report: decode %s: %w", f, err)
	}

	return s, nil
}

func jsonHandle() *codec.JsonHandle {
	var h codec.JsonHandle
	h.Indent = 2

	return &h
}

func msgpackHandle() *codec.MsgpackHandle {
	var h codec.MsgpackHandle
	h.WriteExt = true

	return &h
}

// renderText prints a header and one line per level, each key as "(num/den)".
func renderText(w io.Writer, s Snapshot) error {
	var b strings.Builder
	if s.RunID != "" {
		fmt.Fprintf(&b, "run:        %s\n", s.RunID)
	}
	fmt.Fprintf(&b, "keys:       %d\n", s.Keys)
	fmt.Fprintf(&b, "workers:    %d\n", s.Workers)
	fmt.Fprintf(&b, "total cost: %s\n", s.TotalCost)
	fmt.Fprintf(&b, "height:     %d\n", s.Height)
	if s.ElapsedNS > 0 {
		fmt.Fprintf(&b, "elapsed:    %s\n", s.Elapsed())
	}
	b.WriteString("levels:\n")
	for _, level := range s.Levels {
		parts := make([]string, len(level))
		for i, k := range level {
			parts[i] = "(" + pairText(k) + ")"
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	if s.Order != "" {
		fmt.Fprintf(&b, "%s-order: %s\n", s.Order, strings.Join(s.Traversal, " "))
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// pairText turns "n" into "n/1" and leaves "n/d" alone.
func pairText(k string) string {
	if strings.Contains(k, "/") {
		return k
	}

	return k + "/1"
}

func fractionStrings(fs []fraction.Fraction) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}

	return out
}
