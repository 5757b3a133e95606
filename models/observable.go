package models

import "sync"

// FieldListener is invoked synchronously whenever a watched field's
// setter runs. oldValue and newValue carry the values before and
// after the mutation.
type FieldListener func(field string, oldValue, newValue interface{})

// Observable gives an entity a per-field subscription hook. The
// presentation layer subscribes to keep displayed rows fresh without
// re-fetching; the core itself never subscribes. The zero value is
// ready to use, so entities scanned straight out of the store support
// subscriptions without extra setup.
type Observable struct {
	mu        sync.Mutex
	listeners map[string]map[int]FieldListener
	nextID    int
}

// Subscribe registers fn for changes to the named field and returns a
// function that removes the registration.
func (o *Observable) Subscribe(field string, fn FieldListener) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.listeners == nil {
		o.listeners = make(map[string]map[int]FieldListener)
	}
	if o.listeners[field] == nil {
		o.listeners[field] = make(map[int]FieldListener)
	}
	o.nextID++
	id := o.nextID
	o.listeners[field][id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners[field], id)
	}
}

// notify runs every listener registered for field. Listeners are
// invoked on the caller's goroutine, outside the registration lock.
func (o *Observable) notify(field string, oldValue, newValue interface{}) {
	o.mu.Lock()
	fns := make([]FieldListener, 0, len(o.listeners[field]))
	for _, fn := range o.listeners[field] {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(field, oldValue, newValue)
	}
}
