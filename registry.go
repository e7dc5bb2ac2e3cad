package signal

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry is a name-keyed collection of signals, for code that wires
// emitters and receivers together by signal name instead of sharing *Signal
// values directly. The Registry is safe for concurrent use, and the signals
// it defines are created synchronized so registry-mediated dispatch is safe
// end to end.
type Registry struct {
	mu      sync.RWMutex
	signals map[string]*Signal
}

func NewRegistry() *Registry {
	return &Registry{signals: make(map[string]*Signal)}
}

// Define creates a synchronized Signal under name. Defining the same name
// twice is an error and leaves the existing signal untouched.
func (r *Registry) Define(name string, parameterTypes ...reflect.Type) (*Signal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.signals[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrSignalDefined, name)
	}
	s := NewSynchronized(parameterTypes...)
	r.signals[name] = s
	return s, nil
}

// Lookup returns the signal defined under name.
func (r *Registry) Lookup(name string) (*Signal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.signals[name]
	return s, ok
}

// Undefine releases the name binding. References to the signal obtained
// earlier stay valid.
func (r *Registry) Undefine(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.signals[name]; !ok {
		return fmt.Errorf("%w: %q", ErrSignalNotDefined, name)
	}
	delete(r.signals, name)
	return nil
}

// Names returns the defined signal names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.signals))
	for name := range r.signals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Emit dispatches on the signal defined under name.
func (r *Registry) Emit(name string, args ...any) error {
	s, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSignalNotDefined, name)
	}
	return s.Emit(args...)
}
