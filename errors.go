package signal

import "errors"

var (
	ErrNilReceiver        = errors.New("signal: receiver is nil")
	ErrAlreadyConnected   = errors.New("signal: method already connected")
	ErrNotConnected       = errors.New("signal: method not connected")
	ErrMethodNotFound     = errors.New("signal: method not found")
	ErrMethodInaccessible = errors.New("signal: method not accessible")
	ErrParameterMismatch  = errors.New("signal: parameter mismatch")
	ErrInvocationFailure  = errors.New("signal: connected method failed")
	ErrSignalDefined      = errors.New("signal: signal already defined")
	ErrSignalNotDefined   = errors.New("signal: signal not defined")
)
