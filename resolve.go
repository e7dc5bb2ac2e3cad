package signal

import (
	"fmt"
	"go/token"
	"reflect"
)

// resolve finds an invocable handle for methodName on receiver, matching the
// signature's parameter types exactly. Failure conditions are checked in a
// fixed order: a missing name wins over an inaccessible method, which wins
// over a parameter mismatch.
func (s *Signal) resolve(receiver any, methodName string) (reflect.Value, error) {
	rv := reflect.ValueOf(receiver)
	method := rv.MethodByName(methodName)
	if !method.IsValid() {
		return reflect.Value{}, classifyMissing(rv, methodName)
	}
	if !s.signature.matchesFunc(method.Type()) {
		return reflect.Value{}, fmt.Errorf("%w: %s on %T does not accept %s", ErrParameterMismatch, methodName, receiver, s.signature)
	}
	return method, nil
}

// classifyMissing decides between ErrMethodNotFound and ErrMethodInaccessible
// for a name absent from the receiver's method set. An unexported name is
// inaccessible by definition: reflection cannot see unexported methods, so
// existence cannot be probed and invocation could never succeed. An exported
// name found only on the pointer type exists but is not callable on this
// receiver value.
func classifyMissing(rv reflect.Value, methodName string) error {
	if !token.IsExported(methodName) {
		return fmt.Errorf("%w: %s on %s is unexported", ErrMethodInaccessible, methodName, rv.Type())
	}
	if rv.Kind() != reflect.Pointer {
		if _, ok := reflect.PointerTo(rv.Type()).MethodByName(methodName); ok {
			return fmt.Errorf("%w: %s on %s requires a pointer receiver", ErrMethodInaccessible, methodName, rv.Type())
		}
	}
	return fmt.Errorf("%w: %s on %s", ErrMethodNotFound, methodName, rv.Type())
}
