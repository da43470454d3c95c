package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/prompt"
)

func TestLineProvider_Endpoints(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewLineProvider(strings.NewReader("  A \nC\n"), &out)

	start, end, err := p.Endpoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "C", end)
	assert.Equal(t, "Enter start label: Enter end label: ", out.String())
}

func TestLineProvider_LastLineWithoutNewline(t *testing.T) {
	p := prompt.NewLineProvider(strings.NewReader("A\nB"), nil)
	start, end, err := p.Endpoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "B", end)
}

func TestLineProvider_EOF(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"only one": "A\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			p := prompt.NewLineProvider(strings.NewReader(in), nil)
			_, _, err := p.Endpoints(context.Background())
			assert.ErrorIs(t, err, prompt.ErrNoInput)
		})
	}
}

func TestLineProvider_BlankLineIsEmptyLabel(t *testing.T) {
	p := prompt.NewLineProvider(strings.NewReader("\n\n"), nil)
	start, end, err := p.Endpoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, start)
	assert.Empty(t, end)
}

func TestLineProvider_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := prompt.NewLineProvider(strings.NewReader("A\nB\n"), nil)
	_, _, err := p.Endpoints(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	var p prompt.Provider = prompt.Static{Start: "A", End: "B"}
	start, end, err := p.Endpoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "B", end)
}
