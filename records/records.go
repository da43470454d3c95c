// Package records turns raw text lines into typed node and edge records.
//
// A node line carries exactly two whitespace-separated tokens, `<key> <label>`.
// An edge line carries exactly three, `<key1> <key2> <edgeLabel>`.
// Any other token count is malformed: ReadNodes and ReadEdges log the line and
// keep going, so one bad line never aborts a load.
package records

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for record parsing and line sources.
var (
	// ErrMalformedNode is returned when a node line does not have exactly two tokens.
	ErrMalformedNode = errors.New("records: invalid node line format")

	// ErrMalformedEdge is returned when an edge line does not have exactly three tokens.
	ErrMalformedEdge = errors.New("records: invalid edge line format")

	// ErrSourceNotFound is returned when a named line source does not exist.
	ErrSourceNotFound = errors.New("records: source not found")
)

const (
	nodeTokens = 2
	edgeTokens = 3
)

// NodeRecord is one parsed node line.
type NodeRecord struct {
	Key   string // build-time identifier referenced by edges
	Label string // display name used for lookups and output
	Line  int    // 1-based line number in the source, 0 if unknown
}

// EdgeRecord is one parsed edge line.
type EdgeRecord struct {
	From  string // key of the first endpoint
	To    string // key of the second endpoint
	Label string // descriptive edge label
	Line  int    // 1-based line number in the source, 0 if unknown
}

// ParseNode parses a `<key> <label>` line.
// Returns an error wrapping ErrMalformedNode on any other token count.
func ParseNode(line string) (NodeRecord, error) {
	parts := strings.Fields(line)
	if len(parts) != nodeTokens {
		return NodeRecord{}, fmt.Errorf("%w: want %d tokens, got %d: %q", ErrMalformedNode, nodeTokens, len(parts), line)
	}

	return NodeRecord{Key: parts[0], Label: parts[1]}, nil
}

// ParseEdge parses a `<key1> <key2> <edgeLabel>` line.
// Returns an error wrapping ErrMalformedEdge on any other token count.
func ParseEdge(line string) (EdgeRecord, error) {
	parts := strings.Fields(line)
	if len(parts) != edgeTokens {
		return EdgeRecord{}, fmt.Errorf("%w: want %d tokens, got %d: %q", ErrMalformedEdge, edgeTokens, len(parts), line)
	}

	return EdgeRecord{From: parts[0], To: parts[1], Label: parts[2]}, nil
}
