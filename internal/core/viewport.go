package core

import "sync"

// Viewport holds the output surface dimensions of a front end and notifies
// subscribers when they change. It is created and closed by whoever owns the
// window or terminal; there is no package-level instance.
type Viewport struct {
	mu     sync.Mutex
	w, h   int
	nextID int
	subs   map[int]func(w, h int)
	closed bool
}

// NewViewport returns a viewport with the given initial size.
func NewViewport(w, h int) *Viewport {
	return &Viewport{w: w, h: h, subs: make(map[int]func(w, h int))}
}

// Size returns the current dimensions.
func (v *Viewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

// Subscribe registers fn for resize notifications and returns a function that
// removes it. Subscribing to a closed viewport is a no-op.
func (v *Viewport) Subscribe(fn func(w, h int)) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || fn == nil {
		return func() {}
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}

// Resize records new dimensions and notifies subscribers when they differ
// from the current ones. It reports whether a change happened.
func (v *Viewport) Resize(w, h int) bool {
	v.mu.Lock()
	if v.closed || (w == v.w && h == v.h) {
		v.mu.Unlock()
		return false
	}
	v.w, v.h = w, h
	fns := make([]func(w, h int), 0, len(v.subs))
	for id := 0; id < v.nextID; id++ {
		if fn, ok := v.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
	return true
}

// Close drops all subscribers; later Resize calls are ignored.
func (v *Viewport) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	clear(v.subs)
}
