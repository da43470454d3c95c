// Package loader builds a labeled undirected core.Graph from node and edge
// records, together with the LabelIndex used to resolve query labels.
//
// Node records are consumed first, then edge records, each in file order.
// An edge whose key does not resolve is logged and dropped; it never aborts
// the build.
package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors for graph construction.
var (
	// ErrDuplicateLabel is returned under PolicyReject when two nodes share a label.
	ErrDuplicateLabel = errors.New("loader: duplicate node label")

	// ErrUnknownPolicy is returned when a label policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("loader: unknown label policy")
)

// Policy decides which handle a label resolves to when several nodes share it.
type Policy int

const (
	// PolicyLastWins resolves a shared label to the most recently added node.
	PolicyLastWins Policy = iota

	// PolicyFirstWins keeps the first node registered under a label.
	PolicyFirstWins

	// PolicyReject fails the build with ErrDuplicateLabel.
	PolicyReject
)

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case PolicyLastWins:
		return "last-wins"
	case PolicyFirstWins:
		return "first-wins"
	case PolicyReject:
		return "reject"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy. The empty string is last-wins.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "last-wins":
		return PolicyLastWins, nil
	case "first-wins":
		return PolicyFirstWins, nil
	case "reject":
		return PolicyReject, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// LabelIndex maps a node label to its vertex handle in the built graph.
type LabelIndex map[string]string

// Resolve returns the handle registered for label.
func (ix LabelIndex) Resolve(label string) (string, bool) {
	id, ok := ix[label]
	return id, ok
}

// Report summarizes what a build kept and dropped.
type Report struct {
	Nodes           int // vertices added
	Edges           int // edges added
	NodesSkipped    int // malformed node lines
	EdgesSkipped    int // malformed edge lines plus edges with unresolved keys
	DuplicateKeys   int // node keys seen more than once
	DuplicateLabels int // node labels seen more than once
	Components      int // connected components of the built graph
}

// Network is the output of a build: the graph plus its label index.
// Both are read-only once returned.
type Network struct {
	Graph  *core.Graph
	Labels LabelIndex
	Report Report
}

// Option configures a build.
type Option func(*options)

type options struct {
	log    *logrus.Logger
	policy Policy
}

func defaultOptions() options {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return options{log: log, policy: PolicyLastWins}
}

// WithLogger routes build diagnostics to log. A nil logger is ignored.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithLabelPolicy sets how duplicate labels are resolved.
func WithLabelPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}
