package signal

import (
	"fmt"
	"reflect"
	"strings"
)

// Signature is the ordered parameter type list a Signal accepts. It is fixed
// when the Signal is created and constrains every connected method and every
// emitted argument list.
type Signature []reflect.Type

func (s Signature) String() string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// matchesFunc reports whether fn accepts exactly the signature's parameter
// types, in order and count. Return types are deliberately not checked:
// connected methods are documented to return nothing meaningful, but nothing
// is rejected on that basis.
func (s Signature) matchesFunc(fn reflect.Type) bool {
	if fn.Kind() != reflect.Func || fn.IsVariadic() || fn.NumIn() != len(s) {
		return false
	}
	for i, t := range s {
		if fn.In(i) != t {
			return false
		}
	}
	return true
}

// checkArgs validates an emitted argument list against the signature. A nil
// argument is accepted only for parameter types that have a nil value.
func (s Signature) checkArgs(args []any) error {
	if len(args) != len(s) {
		return fmt.Errorf("%w: emit expects %d argument(s) %s, got %d", ErrParameterMismatch, len(s), s, len(args))
	}
	for i, arg := range args {
		if arg == nil {
			if !nilAssignable(s[i]) {
				return fmt.Errorf("%w: argument %d is nil, want %s", ErrParameterMismatch, i, s[i])
			}
			continue
		}
		if !reflect.TypeOf(arg).AssignableTo(s[i]) {
			return fmt.Errorf("%w: argument %d is %T, want %s", ErrParameterMismatch, i, arg, s[i])
		}
	}
	return nil
}

func nilAssignable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
