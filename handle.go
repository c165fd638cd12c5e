package hostlib

import "sync"

// Handle is the once-initialized slot that owns the singleton capability
// instance. The composition root creates it, initializes it exactly once,
// and passes it to whoever performs lookups; there is no ambient global
// state.
//
// The zero value is ready to use.
type Handle[C any] struct {
	once     sync.Once
	mu       sync.RWMutex
	instance C
	present  bool
	err      error
}

// Init builds the instance exactly once, even under concurrent first access:
// concurrent callers block until the single construction finishes and then
// observe the identical outcome. A failed construction leaves the handle
// permanently empty; Init never retries.
func (h *Handle[C]) Init(build func() (C, error)) error {
	h.once.Do(func() {
		instance, err := build()
		h.mu.Lock()
		defer h.mu.Unlock()
		if err != nil {
			h.err = err
			return
		}
		h.instance = instance
		h.present = true
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Get returns the singleton instance. The second result is false when no
// instance was registered, whether because Init was never called or because
// construction failed; there is never a half-built instance.
func (h *Handle[C]) Get() (C, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.instance, h.present
}
