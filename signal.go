// Package signal provides a typed in-process event channel: a Signal carries
// a fixed parameter signature, methods are connected to it by receiver and
// name, and Emit invokes every connected method with the emitted arguments in
// registration order.
package signal

import (
	"fmt"
	"reflect"
	"sync"
)

// Signal is a fixed-signature event channel. The signature is set at
// construction and never changes; connections are kept in insertion order,
// which is also the dispatch order.
//
// A Signal created with New is not safe for concurrent use: Connect,
// Disconnect, DisconnectAll and Emit must be serialized by the caller. Use
// NewSynchronized when the Signal is shared between goroutines.
type Signal struct {
	lock        sync.Locker
	signature   Signature
	connections []Connection
}

// New creates a Signal accepting the given parameter types.
func New(parameterTypes ...reflect.Type) *Signal {
	return &Signal{
		lock:      noLock{},
		signature: Signature(append([]reflect.Type(nil), parameterTypes...)),
	}
}

// NewSynchronized creates a Signal whose operations, dispatch included, are
// serialized behind a single mutex. The mutex is not reentrant: a connected
// method must not call back into the same Signal during dispatch.
func NewSynchronized(parameterTypes ...reflect.Type) *Signal {
	s := New(parameterTypes...)
	s.lock = &sync.Mutex{}
	return s
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// Signature returns a copy of the parameter types the Signal accepts.
func (s *Signal) Signature() Signature {
	return Signature(append([]reflect.Type(nil), s.signature...))
}

// Connect resolves methodName on receiver against the Signal's signature and
// appends the binding to the registry. Each (receiver, methodName) pair can
// be connected at most once; a failed connect leaves the registry untouched.
func (s *Signal) Connect(receiver any, methodName string) error {
	if receiver == nil {
		return fmt.Errorf("%w: cannot connect %q", ErrNilReceiver, methodName)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.connected(receiver, methodName) {
		return fmt.Errorf("%w: %s on %T", ErrAlreadyConnected, methodName, receiver)
	}
	callable, err := s.resolve(receiver, methodName)
	if err != nil {
		return err
	}
	s.connections = append(s.connections, Connection{receiver: receiver, method: methodName, callable: callable})
	return nil
}

// ConnectFunc connects a bound method value directly, skipping runtime name
// lookup: fn is typically a method value such as receiver.OnMessage, checked
// against the signature at connect time. Identity for duplicate, disconnect
// and IsConnected checks is still the (receiver, methodName) pair.
func (s *Signal) ConnectFunc(receiver any, methodName string, fn any) error {
	if receiver == nil {
		return fmt.Errorf("%w: cannot connect %q", ErrNilReceiver, methodName)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.connected(receiver, methodName) {
		return fmt.Errorf("%w: %s on %T", ErrAlreadyConnected, methodName, receiver)
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return fmt.Errorf("%w: %q is not bound to a function", ErrParameterMismatch, methodName)
	}
	if !s.signature.matchesFunc(fv.Type()) {
		return fmt.Errorf("%w: %s does not accept %s", ErrParameterMismatch, methodName, s.signature)
	}
	s.connections = append(s.connections, Connection{receiver: receiver, method: methodName, callable: fv})
	return nil
}

// Disconnect removes the connection for the (receiver, methodName) pair. The
// order of the remaining connections is preserved.
func (s *Signal) Disconnect(receiver any, methodName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	for i, c := range s.connections {
		if c.matches(receiver, methodName) {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s on %T", ErrNotConnected, methodName, receiver)
}

// DisconnectAll removes every connection. Calling it on an empty Signal is a
// no-op.
func (s *Signal) DisconnectAll() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.connections = nil
}

// IsConnected reports whether the (receiver, methodName) pair is connected.
// Receivers compare by identity, not by value: two distinct instances of the
// same type are two distinct receivers.
func (s *Signal) IsConnected(receiver any, methodName string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.connected(receiver, methodName)
}

func (s *Signal) connected(receiver any, methodName string) bool {
	for _, c := range s.connections {
		if c.matches(receiver, methodName) {
			return true
		}
	}
	return false
}

// Len returns the number of current connections.
func (s *Signal) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.connections)
}

// Connections returns a snapshot of the registry in dispatch order. Mutating
// the returned slice does not affect the Signal.
func (s *Signal) Connections() []Connection {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Connection(nil), s.connections...)
}
