package session

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants double as statekit state IDs.
const (
	StateCollecting   = "collecting"
	StateScoring      = "scoring"
	StateIdentified   = "identified"
	StateUnidentified = "unidentified"
)

const (
	eventComplete = "complete"
	eventScore    = "score"
	eventMatch    = "match"
	eventNoMatch  = "no_match"
)

type machineContext struct {
	SessionID string
}

type lifecycle struct {
	interpreter *statekit.Interpreter[machineContext]
}

func newLifecycle(sessionID string) (*lifecycle, error) {
	builder := statekit.NewMachine[machineContext]("identification-session").
		WithInitial(statekit.StateID(StateCollecting)).
		WithContext(machineContext{SessionID: sessionID})

	builder.State(StateCollecting).
		On(eventComplete).Target(StateScoring).
		On(eventScore).Target(StateScoring).
		Done()

	builder.State(StateScoring).
		On(eventMatch).Target(StateIdentified).
		On(eventNoMatch).Target(StateUnidentified).
		Done()

	builder.State(StateIdentified).Done()
	builder.State(StateUnidentified).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build session state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	return &lifecycle{interpreter: interpreter}, nil
}

func (l *lifecycle) current() string {
	return string(l.interpreter.State().Value)
}

func (l *lifecycle) fire(event string) error {
	before := l.current()
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if l.current() == before {
		return fmt.Errorf("event %q not allowed in state %q", event, before)
	}
	return nil
}

func (l *lifecycle) terminal() bool {
	switch l.current() {
	case StateIdentified, StateUnidentified:
		return true
	default:
		return false
	}
}
