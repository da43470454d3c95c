package loader

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/records"
)

// Build constructs a Network from parsed records.
//
// Steps:
//  1. For each node record: add a vertex, map key → handle (last duplicate
//     key wins), and register label → handle under the configured Policy.
//  2. For each edge record: resolve both keys; on a miss log and skip,
//     otherwise add one undirected edge carrying the label.
//  3. Count connected components, log a summary and return the graph with
//     its LabelIndex. The key index is discarded.
//
// The graph permits self-loops and parallel edges, since edge lines may repeat.
// The only expected error is ErrDuplicateLabel under PolicyReject.
func Build(nodes []records.NodeRecord, edges []records.EdgeRecord, opts ...Option) (*Network, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{
		opts:   o,
		graph:  core.NewGraph(core.WithLoops(), core.WithMultiEdges()),
		keys:   make(map[string]string, len(nodes)),
		labels: make(LabelIndex, len(nodes)),
	}
	for _, rec := range nodes {
		if err := b.addNode(rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range edges {
		b.addEdge(rec)
	}

	comps, err := dfs.Components(b.graph)
	if err != nil {
		return nil, fmt.Errorf("loader: components: %w", err)
	}
	b.report.Components = len(comps)

	b.opts.log.WithFields(logrus.Fields{
		"nodes":         b.report.Nodes,
		"edges":         b.report.Edges,
		"edges_skipped": b.report.EdgesSkipped,
		"components":    b.report.Components,
	}).Info("loader.built")

	return &Network{Graph: b.graph, Labels: b.labels, Report: b.report}, nil
}

// Load reads nodesName and edgesName from src and builds the Network.
// A source error (for example records.ErrSourceNotFound) is returned as-is
// wrapped with the file it came from; malformed lines are counted, not fatal.
func Load(src records.LineSource, nodesName, edgesName string, opts ...Option) (*Network, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.log.WithField("source", nodesName).Info("loader.read_nodes")
	nodes, nodesSkipped, err := records.ReadNodes(src, nodesName, o.log)
	if err != nil {
		return nil, fmt.Errorf("loader: nodes: %w", err)
	}

	o.log.WithField("source", edgesName).Info("loader.read_edges")
	edges, edgesSkipped, err := records.ReadEdges(src, edgesName, o.log)
	if err != nil {
		return nil, fmt.Errorf("loader: edges: %w", err)
	}

	net, err := Build(nodes, edges, opts...)
	if err != nil {
		return nil, err
	}
	net.Report.NodesSkipped += nodesSkipped
	net.Report.EdgesSkipped += edgesSkipped

	return net, nil
}

// builder holds the mutable state of a single Build call.
type builder struct {
	opts   options
	graph  *core.Graph
	keys   map[string]string // node key → handle, build-time only
	labels LabelIndex
	report Report
}

func (b *builder) addNode(rec records.NodeRecord) error {
	prev, dupLabel := b.labels[rec.Label]
	if dupLabel && b.opts.policy == PolicyReject {
		return fmt.Errorf("%w: %q (line %d)", ErrDuplicateLabel, rec.Label, rec.Line)
	}

	id, err := b.graph.AddVertex(rec.Label)
	if err != nil {
		// records never carry an empty label; surface it anyway
		return fmt.Errorf("loader: node %q: %w", rec.Key, err)
	}
	b.report.Nodes++

	if old, dup := b.keys[rec.Key]; dup {
		b.report.DuplicateKeys++
		b.opts.log.WithFields(logrus.Fields{
			"key":      rec.Key,
			"line":     rec.Line,
			"previous": old,
			"current":  id,
		}).Warn("loader.duplicate_key")
	}
	b.keys[rec.Key] = id

	if dupLabel {
		b.report.DuplicateLabels++
		b.opts.log.WithFields(logrus.Fields{
			"label":    rec.Label,
			"line":     rec.Line,
			"previous": prev,
			"current":  id,
			"policy":   b.opts.policy.String(),
		}).Warn("loader.duplicate_label")
		if b.opts.policy == PolicyFirstWins {
			return nil
		}
	}
	b.labels[rec.Label] = id

	b.opts.log.WithFields(logrus.Fields{
		"key":   rec.Key,
		"label": rec.Label,
		"id":    id,
	}).Debug("loader.node")

	return nil
}

func (b *builder) addEdge(rec records.EdgeRecord) {
	from, okFrom := b.keys[rec.From]
	to, okTo := b.keys[rec.To]
	if !okFrom || !okTo {
		b.report.EdgesSkipped++
		b.opts.log.WithFields(logrus.Fields{
			"from": rec.From,
			"to":   rec.To,
			"line": rec.Line,
		}).Warn("loader.unresolved_edge")
		return
	}

	eid, err := b.graph.AddEdge(from, to, rec.Label)
	if err != nil {
		b.report.EdgesSkipped++
		b.opts.log.WithFields(logrus.Fields{
			"from": rec.From,
			"to":   rec.To,
			"line": rec.Line,
		}).WithError(err).Warn("loader.edge_rejected")
		return
	}
	b.report.Edges++

	b.opts.log.WithFields(logrus.Fields{
		"from":  rec.From,
		"to":    rec.To,
		"label": rec.Label,
		"id":    eid,
	}).Debug("loader.edge")
}
