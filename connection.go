package signal

import (
	"fmt"
	"reflect"
)

// Connection binds one receiver instance and one named method to a Signal.
// The receiver reference is non-owning: the Signal never outlives it on the
// receiver's behalf, and disconnecting is the caller's responsibility.
type Connection struct {
	receiver any
	method   string
	callable reflect.Value
}

func (c Connection) Receiver() any  { return c.receiver }
func (c Connection) Method() string { return c.method }

// Callable returns the resolved handle, bound to the receiver and accepting
// exactly the owning Signal's signature.
func (c Connection) Callable() reflect.Value { return c.callable }

func (c Connection) matches(receiver any, methodName string) bool {
	return c.method == methodName && identical(c.receiver, receiver)
}

// invoke calls the bound method with pre-validated arguments. A panic inside
// the method is reported as ErrInvocationFailure with the cause preserved.
func (c Connection) invoke(in []reflect.Value) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if cause, ok := r.(error); ok {
			err = fmt.Errorf("%w: %s on %T: %w", ErrInvocationFailure, c.method, c.receiver, cause)
			return
		}
		err = fmt.Errorf("%w: %s on %T: %v", ErrInvocationFailure, c.method, c.receiver, r)
	}()
	c.callable.Call(in)
	return nil
}

// identical reports receiver identity: the same instance, not a value-equal
// copy. Pointer receivers compare by address. Non-pointer receivers are
// copied when boxed and carry no address, so comparable values fall back to
// equality and non-comparable values never match.
func identical(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return false
	}
	if va.Kind() == reflect.Pointer && vb.Kind() == reflect.Pointer {
		return va.Pointer() == vb.Pointer()
	}
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return a == b
}
