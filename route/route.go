// Package route answers "shortest path from label S to label E" queries
// against a loaded Network.
package route

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/loader"
	"github.com/katalvlaran/lvpath/path"
)

var (
	// ErrInvalidLabel is returned when the start or end label is not in the network.
	ErrInvalidLabel = errors.New("route: invalid start or end label")

	// ErrNoPath is returned when the end is unreachable from the start.
	ErrNoPath = errors.New("route: no path")

	// ErrUnreconstructable is returned when the search result could not be
	// turned into a path.
	ErrUnreconstructable = errors.New("route: path could not be reconstructed")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

	// ErrNilNetwork is returned by NewFinder for a nil or empty network.
	ErrNilNetwork = errors.New("route: network is nil")
)

// Algorithm names the search engine used by a Finder.
type Algorithm string

const (
	AlgorithmBFS      Algorithm = "bfs"
	AlgorithmDijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm accepts "bfs" or "dijkstra", case-insensitively.
// The empty string selects bfs.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case "", AlgorithmBFS:
		return AlgorithmBFS, nil
	case AlgorithmDijkstra:
		return AlgorithmDijkstra, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Route is a found shortest path.
type Route struct {
	QueryID string
	Start   string
	End     string
	Labels  []string // Start first, End last
	Hops    int      // len(Labels) - 1
}

// String renders the route as "Shortest path from S to E: A -> B -> C".
func (r *Route) String() string {
	return fmt.Sprintf("Shortest path from %s to %s: %s", r.Start, r.End, strings.Join(r.Labels, " -> "))
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger for query diagnostics. A nil logger is ignored.
func WithLogger(log *logrus.Logger) Option {
	return func(f *Finder) {
		if log != nil {
			f.log = log
		}
	}
}

// WithAlgorithm selects the search engine.
func WithAlgorithm(a Algorithm) Option {
	return func(f *Finder) { f.algo = a }
}

// searchFunc runs a single-source search that may stop at target.
type searchFunc func(ctx context.Context, g *core.Graph, start, target string) (path.Tree, error)

// Finder answers route queries. It is safe for concurrent use once built,
// since the underlying Network is read-only.
type Finder struct {
	net    *loader.Network
	log    *logrus.Logger
	algo   Algorithm
	search searchFunc
}

// NewFinder returns a Finder over net.
func NewFinder(net *loader.Network, opts ...Option) (*Finder, error) {
	if net == nil || net.Graph == nil {
		return nil, ErrNilNetwork
	}
	f := &Finder{net: net, log: logrus.StandardLogger(), algo: AlgorithmBFS}
	for _, opt := range opts {
		opt(f)
	}
	switch f.algo {
	case AlgorithmBFS:
		f.search = searchBFS
	case AlgorithmDijkstra:
		f.search = searchDijkstra
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, f.algo)
	}

	return f, nil
}

// Algorithm reports the engine in use.
func (f *Finder) Algorithm() Algorithm { return f.algo }

// Find returns the shortest route from startLabel to endLabel.
//
// Outcomes other than success are ErrInvalidLabel, ErrNoPath and
// ErrUnreconstructable, each wrapped with context; any other error comes
// from the search itself (for example a cancelled ctx).
func (f *Finder) Find(ctx context.Context, startLabel, endLabel string) (*Route, error) {
	qid := uuid.NewString()
	log := f.log.WithFields(logrus.Fields{
		"query_id":  qid,
		"start":     startLabel,
		"end":       endLabel,
		"algorithm": string(f.algo),
	})

	s, okS := f.net.Labels.Resolve(startLabel)
	e, okE := f.net.Labels.Resolve(endLabel)
	if !okS || !okE {
		var bad []string
		if !okS {
			bad = append(bad, fmt.Sprintf("%q", startLabel))
		}
		if !okE {
			bad = append(bad, fmt.Sprintf("%q", endLabel))
		}
		log.Warn("route.invalid_label")
		return nil, fmt.Errorf("%w: %s", ErrInvalidLabel, strings.Join(bad, ", "))
	}

	tree, err := f.search(ctx, f.net.Graph, s, e)
	if err != nil {
		log.WithError(err).Error("route.search_failed")
		return nil, err
	}

	handles, err := path.Reconstruct(f.net.Graph, tree, s, e)
	switch {
	case errors.Is(err, path.ErrNoPath):
		log.Info("route.no_path")
		return nil, fmt.Errorf("%w: from %s to %s", ErrNoPath, startLabel, endLabel)
	case err != nil:
		log.WithError(err).Error("route.reconstruct_failed")
		return nil, fmt.Errorf("%w: %w", ErrUnreconstructable, err)
	}

	labels, err := path.Labels(f.net.Graph, handles)
	if err != nil {
		log.WithError(err).Error("route.reconstruct_failed")
		return nil, fmt.Errorf("%w: %w", ErrUnreconstructable, err)
	}

	r := &Route{
		QueryID: qid,
		Start:   startLabel,
		End:     endLabel,
		Labels:  labels,
		Hops:    len(labels) - 1,
	}
	log.WithField("hops", r.Hops).Debug("route.found")

	return r, nil
}

func searchBFS(ctx context.Context, g *core.Graph, start, target string) (path.Tree, error) {
	res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithTarget(target))
	if err != nil {
		return nil, err
	}

	return res, nil
}

func searchDijkstra(ctx context.Context, g *core.Graph, start, target string) (path.Tree, error) {
	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source(start),
		dijkstra.WithTarget(target),
		dijkstra.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Message turns the result of Find into the line shown to the user.
// ok is false when err is not one of the query outcomes, in which case the
// caller should treat err as fatal.
func Message(startLabel, endLabel string, r *Route, err error) (msg string, ok bool) {
	switch {
	case err == nil && r != nil:
		return r.String(), true
	case errors.Is(err, ErrInvalidLabel):
		return "Invalid start or end label.", true
	case errors.Is(err, ErrNoPath):
		return fmt.Sprintf("No valid path found from %s to %s.", startLabel, endLabel), true
	case errors.Is(err, ErrUnreconstructable):
		return "No valid path could be reconstructed.", true
	default:
		return "", false
	}
}
