// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

// Source tells which path produced an [Outcome] value.
type Source string

const (
	// SourceRemote means the remote model answered.
	SourceRemote Source = "remote"
	// SourceFallback means the remote path failed or was disabled and the
	// heuristics answered instead.
	SourceFallback Source = "fallback"
	// SourceLocal means no model was needed, e.g. a summary of zero tasks.
	SourceLocal Source = "local"
)

// Outcome is the result of an advisor operation. Reason is set only for
// SourceFallback and holds the error that disabled the remote path.
type Outcome[T any] struct {
	Value  T
	Source Source
	Reason error
}

// Degraded reports whether Value came from the fallback heuristics.
func (o Outcome[T]) Degraded() bool {
	return o.Source == SourceFallback
}

func remote[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Source: SourceRemote}
}

func local[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value, Source: SourceLocal}
}

func fallback[T any](value T, reason error) Outcome[T] {
	return Outcome[T]{Value: value, Source: SourceFallback, Reason: reason}
}
