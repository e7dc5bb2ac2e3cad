package signal

import "reflect"

// Emit invokes every connected method with args, in registration order.
//
// The argument list is validated against the signature once, before any
// method runs; a mismatch fails fast with ErrParameterMismatch and nothing is
// invoked. Dispatch runs against a snapshot of the registry taken at entry,
// so a method that connects or disconnects handlers during emission does not
// disturb the in-progress iteration; such mutations take effect on the next
// Emit. The first failing method aborts the rest of the dispatch and its
// error is returned to the caller.
func (s *Signal) Emit(args ...any) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.signature.checkArgs(args); err != nil {
		return err
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(s.signature[i])
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	snapshot := append([]Connection(nil), s.connections...)
	for _, c := range snapshot {
		if err := c.invoke(in); err != nil {
			return err
		}
	}
	return nil
}
