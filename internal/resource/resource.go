// Package resource defines the lifecycle result type produced by every
// asynchronous boundary operation exposed to the UI layer.
package resource

import "reflect"

// State enumerates the lifecycle phases of an asynchronous operation.
type State int

const (
	// StateIdle means the operation has not been started yet.
	StateIdle State = iota
	// StateLoading means an attempt is in flight.
	StateLoading
	// StateSuccess means the last attempt completed with data.
	StateSuccess
	// StateError means the last attempt failed with a presentable message.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource holds exactly one of the four states at a time. The zero value
// is Idle. Values are immutable; a new attempt produces new values
// (Loading first, then Success or Error). The type carries no retry
// semantics: retrying is the caller's decision.
type Resource[T any] struct {
	state   State
	data    T
	message string
}

// Idle returns the pre-first-invocation state.
func Idle[T any]() Resource[T] {
	return Resource[T]{state: StateIdle}
}

// Loading returns the in-flight state.
func Loading[T any]() Resource[T] {
	return Resource[T]{state: StateLoading}
}

// Success wraps the data of a completed operation.
func Success[T any](data T) Resource[T] {
	return Resource[T]{state: StateSuccess, data: data}
}

// Error wraps a human-presentable failure message. The message must
// already be localized by the producing layer, never a raw stack trace.
func Error[T any](message string) Resource[T] {
	return Resource[T]{state: StateError, message: message}
}

// State reports which variant is active.
func (r Resource[T]) State() State { return r.state }

func (r Resource[T]) IsIdle() bool    { return r.state == StateIdle }
func (r Resource[T]) IsLoading() bool { return r.state == StateLoading }
func (r Resource[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Resource[T]) IsError() bool   { return r.state == StateError }

// Data returns the payload and true when the resource is Success.
func (r Resource[T]) Data() (T, bool) {
	return r.data, r.state == StateSuccess
}

// MustData returns the payload of a Success resource and panics otherwise.
// Intended for tests and for callers that already checked IsSuccess.
func (r Resource[T]) MustData() T {
	if r.state != StateSuccess {
		panic("resource: MustData on " + r.state.String() + " state")
	}
	return r.data
}

// Message returns the failure message of an Error resource, "" otherwise.
func (r Resource[T]) Message() string { return r.message }

// Equal compares by variant plus payload.
func (r Resource[T]) Equal(other Resource[T]) bool {
	if r.state != other.state {
		return false
	}
	switch r.state {
	case StateSuccess:
		return reflect.DeepEqual(r.data, other.data)
	case StateError:
		return r.message == other.message
	default:
		return true
	}
}
