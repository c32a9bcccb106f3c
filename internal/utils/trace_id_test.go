package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDs_New(t *testing.T) {
	ids := NewTraceIDs()

	first, err := uuid.Parse(ids.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first.String(), ids.New())
}

func TestTraceIDs_NewFallsBackToV4(t *testing.T) {
	ids := &TraceIDs{v7: func() (uuid.UUID, error) { return uuid.Nil, errors.New("clock went backwards") }}

	id, err := uuid.Parse(ids.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestTraceIDs_Adopt(t *testing.T) {
	ids := NewTraceIDs()

	tests := []struct {
		name     string
		callerID string
		kept     bool
	}{
		{name: "plain token", callerID: "trace-1", kept: true},
		{name: "uuid", callerID: "0192b1f4-8c4e-7d2a-9f3e-1a2b3c4d5e6f", kept: true},
		{name: "dotted with colon", callerID: "deploy.2026:42", kept: true},
		{name: "empty", callerID: ""},
		{name: "newline", callerID: "trace\nlevel=error"},
		{name: "space", callerID: "two words"},
		{name: "too long", callerID: strings.Repeat("a", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids.Adopt(tt.callerID)
			if tt.kept {
				assert.Equal(t, tt.callerID, got)
				return
			}
			assert.NotEqual(t, tt.callerID, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
