package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/smart-loan-advisor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
	}{
		{
			name:          "successful read",
			input:         "400000\n",
			expectedValue: "400000",
		},
		{
			name:          "read with extra whitespace",
			input:         "  720  \n",
			expectedValue: "720",
		},
		{
			name:          "empty line",
			input:         "\n",
			expectedValue: "",
		},
		{
			name:          "last line without newline",
			input:         "y",
			expectedValue: "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input))

			result, err := lr.ReadLine(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, result)
		})
	}
}

func TestLineReader_EndOfInput(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))

	_, err := lr.ReadLine(context.Background())
	assert.ErrorIs(t, err, common.ErrInputTerminated)
}

func TestLineReader_ContextCancellation(t *testing.T) {
	t.Run("immediate cancellation", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		lr := NewLineReader(pr)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := lr.ReadLine(ctx)
		assert.ErrorIs(t, err, common.ErrInputCancelled)
	})

	t.Run("cancellation during read", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		lr := NewLineReader(pr)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := lr.ReadLine(ctx)
		assert.True(t, errors.Is(err, common.ErrInputCancelled))
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewLineReader(nil) })
}
