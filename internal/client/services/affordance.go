package services

import "sync"

// State is the lifecycle of one user-triggered operation.
type State int

const (
	Idle State = iota
	InFlight
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Op names an operation guarded by an Affordance.
type Op string

const (
	OpLogin            Op = "login"
	OpSignup           Op = "signup"
	OpLogout           Op = "logout"
	OpUpdatePreference Op = "update-preference"
)

// Affordance gates one operation: while it is InFlight a second invocation
// is refused. It plays the role of a disabled submit button.
type Affordance struct {
	mu     sync.Mutex
	op     Op
	state  State
	nextID int
	subs   map[int]func(Op, State)
}

func NewAffordance(op Op) *Affordance {
	return &Affordance{op: op, subs: make(map[int]func(Op, State))}
}

func (a *Affordance) Op() Op { return a.op }

func (a *Affordance) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Enabled reports whether the operation may be started.
func (a *Affordance) Enabled() bool {
	return a.State() != InFlight
}

// Subscribe registers fn for every state transition. The returned function
// removes the subscription. fn runs on the goroutine driving the operation
// and must not block.
func (a *Affordance) Subscribe(fn func(Op, State)) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// begin moves to InFlight, or returns ErrInFlight if already there.
func (a *Affordance) begin() error {
	a.mu.Lock()
	if a.state == InFlight {
		a.mu.Unlock()
		return ErrInFlight
	}
	a.state = InFlight
	subs := a.snapshot()
	a.mu.Unlock()

	notify(subs, a.op, InFlight)
	return nil
}

// finish leaves InFlight for s.
func (a *Affordance) finish(s State) {
	a.mu.Lock()
	a.state = s
	subs := a.snapshot()
	a.mu.Unlock()

	notify(subs, a.op, s)
}

func (a *Affordance) snapshot() []func(Op, State) {
	out := make([]func(Op, State), 0, len(a.subs))
	for _, fn := range a.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(Op, State), op Op, s State) {
	for _, fn := range subs {
		fn(op, s)
	}
}
