// Package prompt supplies the start and end labels of a route query,
// either interactively from a line-oriented reader or from fixed values.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input ends before a label is read.
var ErrNoInput = errors.New("prompt: no input")

const (
	startPrompt = "Enter start label: "
	endPrompt   = "Enter end label: "
)

// Provider yields the two endpoint labels of a query.
type Provider interface {
	Endpoints(ctx context.Context) (start, end string, err error)
}

// LineProvider prompts on Out and reads one trimmed line per label from In.
// A final line without a trailing newline is accepted.
type LineProvider struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineProvider wraps in and out. A nil out discards the prompts.
func NewLineProvider(in io.Reader, out io.Writer) *LineProvider {
	if out == nil {
		out = io.Discard
	}
	return &LineProvider{reader: bufio.NewReader(in), out: out}
}

// Endpoints asks for the start label, then the end label.
// Reads block; ctx is checked before each prompt.
func (p *LineProvider) Endpoints(ctx context.Context) (string, string, error) {
	start, err := p.ask(ctx, startPrompt)
	if err != nil {
		return "", "", fmt.Errorf("start label: %w", err)
	}
	end, err := p.ask(ctx, endPrompt)
	if err != nil {
		return "", "", fmt.Errorf("end label: %w", err)
	}

	return start, end, nil
}

func (p *LineProvider) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Static returns fixed labels, for example ones given on the command line.
type Static struct {
	Start string
	End   string
}

// Endpoints returns s.Start and s.End.
func (s Static) Endpoints(context.Context) (string, string, error) {
	return s.Start, s.End, nil
}
