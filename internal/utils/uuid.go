package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace identifiers.
type TraceIDGenerator struct{}

// NewTraceIDGenerator returns a generator of time-ordered UUIDs.
func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 when the clock
// source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
