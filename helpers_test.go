package signal

import (
	"fmt"
	"reflect"
)

var (
	stringType = reflect.TypeOf("")
	intType    = reflect.TypeOf(0)
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// journal records invocations across receivers so dispatch order is
// observable in tests.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// greeter is the standard test receiver.
type greeter struct {
	name string
	log  *journal
}

func newGreeter(name string, log *journal) *greeter {
	return &greeter{name: name, log: log}
}

func (g *greeter) OnMessage(msg string) {
	g.log.add("%s:OnMessage:%s", g.name, msg)
}

func (g *greeter) OnPair(msg string, n int) {
	g.log.add("%s:OnPair:%s:%d", g.name, msg, n)
}

func (g *greeter) OnErr(err error) {
	g.log.add("%s:OnErr:%v", g.name, err)
}

func (g *greeter) OnRef(c *counter) {
	g.log.add("%s:OnRef:nil=%v", g.name, c == nil)
}

func (g *greeter) OnTick() {
	g.log.add("%s:OnTick", g.name)
}

func (g *greeter) OnAny(v any) {
	g.log.add("%s:OnAny:%v", g.name, v)
}

//nolint:unused // looked up by name to exercise accessibility classification
func (g *greeter) onQuiet(msg string) {
	g.log.add("%s:onQuiet:%s", g.name, msg)
}

// counter only has pointer-receiver methods, so connecting a counter value
// exercises the accessibility classification.
type counter struct {
	total int
}

func (c *counter) Add(n int) { c.total += n }

// faulty panics from its connected method.
type faulty struct {
	cause any
}

func (f *faulty) OnMessage(string) { panic(f.cause) }

// saboteur mutates the registry of its own signal during dispatch.
type saboteur struct {
	sig *Signal
	log *journal
}

func (s *saboteur) OnMessage(msg string) {
	s.log.add("saboteur:OnMessage:%s", msg)
	s.sig.DisconnectAll()
}
