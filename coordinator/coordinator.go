// Package coordinator holds the most recent Weatherbit snapshots and fans
// change notifications out to registered listeners. The host's refresh
// machinery decides when data changes; this package only stores what it is
// handed and never fetches anything itself.
package coordinator

import (
	"log/slog"
	"sync"

	"weatherbit/types"
)

// listenerSet is the shared change-notification bookkeeping. Callers must
// hold the owning type's lock around every method.
type listenerSet struct {
	fns    map[int]func()
	nextID int
}

func (l *listenerSet) add(fn func()) int {
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	return id
}

func (l *listenerSet) remove(id int) {
	delete(l.fns, id)
}

func (l *listenerSet) snapshot() []func() {
	fns := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	return fns
}

// Observations holds the latest current-conditions snapshot. A nil snapshot
// means no successful refresh has happened yet.
type Observations struct {
	mu        sync.RWMutex
	data      *types.CurrentConditions
	listeners listenerSet
	logger    *slog.Logger
}

// NewObservations creates an empty current-conditions holder. A nil logger
// falls back to slog.Default().
func NewObservations(logger *slog.Logger) *Observations {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observations{logger: logger}
}

// Set swaps in a new snapshot wholesale and notifies listeners. The caller
// must not mutate the snapshot after handing it over.
func (o *Observations) Set(data *types.CurrentConditions) {
	o.mu.Lock()
	o.data = data
	fns := o.listeners.snapshot()
	o.mu.Unlock()

	o.logger.Debug("current conditions snapshot swapped", "listeners", len(fns))
	for _, fn := range fns {
		fn()
	}
}

// Data returns the latest snapshot, or nil when none has been published.
func (o *Observations) Data() *types.CurrentConditions {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data
}

// AddListener registers fn to run after every snapshot swap. The returned
// function removes the listener.
func (o *Observations) AddListener(fn func()) func() {
	o.mu.Lock()
	id := o.listeners.add(fn)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		o.listeners.remove(id)
		o.mu.Unlock()
	}
}

// Forecast holds the latest daily-forecast snapshot. An empty sequence means
// no successful refresh has happened yet.
type Forecast struct {
	mu        sync.RWMutex
	days      []types.ForecastDay
	listeners listenerSet
	logger    *slog.Logger
}

// NewForecast creates an empty forecast holder. A nil logger falls back to
// slog.Default().
func NewForecast(logger *slog.Logger) *Forecast {
	if logger == nil {
		logger = slog.Default()
	}
	return &Forecast{logger: logger}
}

// Set swaps in a new day sequence wholesale and notifies listeners. The
// caller must not mutate the slice after handing it over.
func (f *Forecast) Set(days []types.ForecastDay) {
	f.mu.Lock()
	f.days = days
	fns := f.listeners.snapshot()
	f.mu.Unlock()

	f.logger.Debug("forecast snapshot swapped", "days", len(days), "listeners", len(fns))
	for _, fn := range fns {
		fn()
	}
}

// Data returns the latest day sequence, or nil when none has been published.
func (f *Forecast) Data() []types.ForecastDay {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.days
}

// Len returns the number of days in the latest sequence.
func (f *Forecast) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.days)
}

// Day returns the day at index i, reporting false when the sequence is
// shorter than i+1 days.
func (f *Forecast) Day(i int) (types.ForecastDay, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if i < 0 || i >= len(f.days) {
		return types.ForecastDay{}, false
	}
	return f.days[i], true
}

// AddListener registers fn to run after every snapshot swap. The returned
// function removes the listener.
func (f *Forecast) AddListener(fn func()) func() {
	f.mu.Lock()
	id := f.listeners.add(fn)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		f.listeners.remove(id)
		f.mu.Unlock()
	}
}
