package res

import (
	"fmt"
	"os"
	"reflect"
	"sync"
)

// Each (T, E) instantiation owns an independent hook set: configuring the
// hooks of Result[int, string] never affects Result[float64, string]. Go
// has no per-instantiation statics, so the sets live in a registry keyed
// by the reflected type pair. The registry lock is held only for the
// lookup; the slots of each set are guarded by that set's own mutex.

type hookKey struct {
	value reflect.Type
	err   reflect.Type
}

type hookSet struct {
	mu        sync.Mutex
	log       func(message string)
	terminate func()
}

var (
	hookRegistryMu sync.Mutex
	hookRegistry   = make(map[hookKey]*hookSet)
)

func hooksOf[T, E any]() *hookSet {
	k := hookKey{
		value: reflect.TypeOf((*T)(nil)).Elem(),
		err:   reflect.TypeOf((*E)(nil)).Elem(),
	}

	hookRegistryMu.Lock()
	defer hookRegistryMu.Unlock()

	hs, ok := hookRegistry[k]
	if !ok {
		hs = &hookSet{}
		hookRegistry[k] = hs
	}
	return hs
}

// SetLogHook replaces the log function consulted by fatal and recoverable
// extractions of Result[T, E]. Passing nil restores the default, which
// writes the message to standard error.
func SetLogHook[T, E any](fn func(message string)) {
	hs := hooksOf[T, E]()
	hs.mu.Lock()
	hs.log = fn
	hs.mu.Unlock()
}

// SetTerminateHook replaces the termination function invoked by fatal
// extractions of Result[T, E]. Passing nil restores the default, which
// exits the process. A custom hook may return; the extraction then yields
// the zero value of the demanded payload type.
func SetTerminateHook[T, E any](fn func()) {
	hs := hooksOf[T, E]()
	hs.mu.Lock()
	hs.terminate = fn
	hs.mu.Unlock()
}

// ClearHooks resets both hooks of Result[T, E] to their defaults.
func ClearHooks[T, E any]() {
	hs := hooksOf[T, E]()
	hs.mu.Lock()
	hs.log = nil
	hs.terminate = nil
	hs.mu.Unlock()
}

func (h *hookSet) logError(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.log != nil {
		h.log(message)
		return
	}
	fmt.Fprintln(os.Stderr, message)
}

func (h *hookSet) terminateNow() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.terminate != nil {
		h.terminate()
		return
	}
	os.Exit(1)
}
