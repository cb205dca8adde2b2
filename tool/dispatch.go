// Package tool exposes the engine's mutation operations as
// independently callable, name-addressed commands for an external
// tool-calling surface. Arguments arrive as structured JSON; every
// call is self-contained and assumes nothing about prior calls beyond
// the committed document, so a caller may issue them in any order as
// long as they run one at a time.
package tool

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evanfield/skald/buffer"
	"github.com/evanfield/skald/editor"
)

// ErrUnknownOp is returned for an operation name outside Ops.
var ErrUnknownOp = errors.New("tool: unknown operation")

// Request names one operation and carries its arguments.
type Request struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Result reports a completed operation back to the calling surface.
// Zero affected locations is a success, not a failure.
type Result struct {
	AffectedCount int    `json:"affected_count"`
	Status        string `json:"status"`
}

// Ops lists the recognized operation names.
func Ops() []string {
	return []string{
		"replace",
		"wrap_matches",
		"prefix_lines",
		"insert_line",
		"prepend",
		"append",
	}
}

type replaceArgs struct {
	Search      string `json:"search"`
	Replacement string `json:"replacement"`
	All         bool   `json:"all"`
}

type wrapArgs struct {
	Search string `json:"search"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

type prefixLinesArgs struct {
	Prefix string `json:"prefix"`
	// Matching restricts the operation to lines containing it; absent
	// means every non-empty line.
	Matching *string `json:"matching,omitempty"`
}

type insertLineArgs struct {
	Content  string `json:"content"`
	Line     int    `json:"line"`     // 1-indexed, clamped
	Position string `json:"position"` // "before" or "after"
}

type textArgs struct {
	Text string `json:"text"`
}

// Dispatch applies the named operation to the session and reports how
// many locations changed.
func Dispatch(s *editor.Session, req Request) (Result, error) {
	n, err := apply(s, req)
	if err != nil {
		return Result{}, err
	}
	status := "ok"
	if n == 0 {
		status = "no matches"
	}
	return Result{AffectedCount: n, Status: status}, nil
}

func apply(s *editor.Session, req Request) (int, error) {
	switch req.Name {
	case "replace":
		var a replaceArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		return s.Replace(a.Search, a.Replacement, a.All)

	case "wrap_matches":
		var a wrapArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		return s.WrapMatches(a.Search, a.Prefix, a.Suffix)

	case "prefix_lines":
		var a prefixLinesArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		if a.Matching == nil {
			return s.PrefixLines(a.Prefix)
		}
		return s.PrefixMatchingLines(a.Prefix, *a.Matching)

	case "insert_line":
		var a insertLineArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		place, err := parsePlacement(a.Position)
		if err != nil {
			return 0, err
		}
		return s.InsertLine(a.Content, a.Line, place)

	case "prepend":
		var a textArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		return s.Prepend(a.Text)

	case "append":
		var a textArgs
		if err := decodeArgs(req, &a); err != nil {
			return 0, err
		}
		return s.Append(a.Text)

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, req.Name)
	}
}

func decodeArgs(req Request, into any) error {
	if len(req.Args) == 0 {
		return fmt.Errorf("tool: %s: missing args", req.Name)
	}
	if err := json.Unmarshal(req.Args, into); err != nil {
		return fmt.Errorf("tool: %s: %w", req.Name, err)
	}
	return nil
}

func parsePlacement(position string) (buffer.LinePlacement, error) {
	switch position {
	case "before":
		return buffer.PlaceBefore, nil
	case "after":
		return buffer.PlaceAfter, nil
	default:
		return 0, fmt.Errorf("tool: insert_line: position must be %q or %q, got %q",
			"before", "after", position)
	}
}
