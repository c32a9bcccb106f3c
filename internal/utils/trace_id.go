package utils

import (
	"strings"

	"github.com/google/uuid"
)

const maxTraceIDLen = 64

// TraceIDs issues the ids that tie together the log lines of one request
// and of the notify calls it makes. v7 ids sort by creation time.
type TraceIDs struct {
	v7 func() (uuid.UUID, error)
}

func NewTraceIDs() *TraceIDs {
	return &TraceIDs{v7: uuid.NewV7}
}

// New returns a fresh id, a random v4 one when the v7 source fails.
func (g *TraceIDs) New() string {
	id, err := g.v7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Adopt keeps a caller supplied id that is safe to log as is and issues a
// fresh one otherwise.
func (g *TraceIDs) Adopt(callerID string) string {
	if callerID == "" || len(callerID) > maxTraceIDLen || strings.IndexFunc(callerID, notTraceRune) >= 0 {
		return g.New()
	}
	return callerID
}

func notTraceRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	case r == '-', r == '_', r == '.', r == ':':
		return false
	}
	return true
}
