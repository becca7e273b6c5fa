package main

import "fmt"

// ExtractionError reports unreadable or unsupported document bytes. It is the
// only pipeline error allowed past a component boundary: the batch loop logs
// it per user, synchronous callers turn it into a user-facing message.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s document: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// UpstreamServiceError reports an unreachable upstream or an invalid payload
// from it. Call sites recover it locally and fall back, never propagate.
type UpstreamServiceError struct {
	Service string
	Err     error
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("%s service: %v", e.Service, e.Err)
}

func (e *UpstreamServiceError) Unwrap() error { return e.Err }

// ParseError reports a service reply that is not valid JSON after fence
// stripping. Recovered locally like UpstreamServiceError.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing service reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
