package observability

import "sync"

// NoOpObserver ignores every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Recorder keeps every observed operation in memory. It is safe for concurrent
// use and mostly useful in tests and diagnostics tooling.
type Recorder struct {
	mu  sync.Mutex
	ops []OperationContext
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveOperation records ctx.
func (r *Recorder) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	r.ops = append(r.ops, ctx)
	r.mu.Unlock()
}

// Operations returns a copy of everything recorded so far, in arrival order.
func (r *Recorder) Operations() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OperationContext, len(r.ops))
	copy(out, r.ops)
	return out
}

// Filter returns the recorded operations with the given Operation name.
func (r *Recorder) Filter(operation string) []OperationContext {
	var out []OperationContext
	for _, op := range r.Operations() {
		if op.Operation == operation {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}

// Multi fans each operation out to all non-nil observers, in order.
func Multi(observers ...Observer) Observer {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return multiObserver(filtered)
}

type multiObserver []Observer

func (m multiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}
