package records

import (
	"github.com/sirupsen/logrus"
)

// ReadNodes loads every line of name from src and parses it as a node record.
// Malformed lines are logged at warn level and counted in skipped.
// The only returned error is a source failure, which callers treat as fatal.
func ReadNodes(src LineSource, name string, log *logrus.Logger) (nodes []NodeRecord, skipped int, err error) {
	return read(src, name, log, "node", func(line string, n int) (NodeRecord, error) {
		rec, err := ParseNode(line)
		rec.Line = n
		return rec, err
	})
}

// ReadEdges loads every line of name from src and parses it as an edge record.
// Malformed lines are logged at warn level and counted in skipped.
func ReadEdges(src LineSource, name string, log *logrus.Logger) (edges []EdgeRecord, skipped int, err error) {
	return read(src, name, log, "edge", func(line string, n int) (EdgeRecord, error) {
		rec, err := ParseEdge(line)
		rec.Line = n
		return rec, err
	})
}

func read[T any](src LineSource, name string, log *logrus.Logger, kind string, parse func(string, int) (T, error)) ([]T, int, error) {
	lines, err := src.Lines(name)
	if err != nil {
		return nil, 0, err
	}

	out := make([]T, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		rec, err := parse(line, i+1)
		if err != nil {
			skipped++
			if log != nil {
				log.WithFields(logrus.Fields{
					"source": name,
					"line":   i + 1,
					"kind":   kind,
				}).WithError(err).Warn("records.skip")
			}
			continue
		}
		out = append(out, rec)
	}

	return out, skipped, nil
}
