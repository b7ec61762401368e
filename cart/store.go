package cart

import (
	"log"
	"sync"

	"github.com/shopspring/decimal"
)

// Store holds the cart line set for one browsing session. It is the source
// of truth until checkout submission. Every mutation persists the full line
// set to the configured Storage, but only after Load has completed, so an
// empty store never clobbers a not-yet-loaded persisted cart.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
	loaded  bool
	subs    []func(Event)
}

// NewStore returns an empty store. storage may be nil, in which case the
// cart lives only in memory. Call Load before mutating.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load restores a previously persisted line set. A missing or malformed
// blob initializes the store empty. After Load returns, mutations start
// persisting.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage != nil {
		lines, err := s.storage.Load()
		if err != nil {
			log.Println("Failed to load persisted cart, starting empty:", err)
		} else if lines != nil {
			s.lines = lines
		}
	}
	s.loaded = true
}

// Subscribe registers fn to be called after every mutation. Callbacks run
// synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add merges quantity into an existing line for the same product id, or
// appends a new line.
func (s *Store) Add(item Item, quantity int) {
	s.mu.Lock()

	var event Event
	if i := s.indexOf(item.ProductID); i >= 0 {
		s.lines[i].Quantity += quantity
		event = Event{Type: EventQuantityUpdated, Name: item.Name}
	} else {
		s.lines = append(s.lines, Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  quantity,
		})
		event = Event{Type: EventItemAdded, Name: item.Name}
	}
	s.persistLocked()

	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, event)
}

// Remove deletes the line for productID. Removing an absent id is a silent
// no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()

	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	name := s.lines[i].Name
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persistLocked()

	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event{Type: EventItemRemoved, Name: name})
}

// SetQuantity overwrites the line's quantity. A quantity of zero or less
// removes the line. Unknown product ids are ignored.
func (s *Store) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()

	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Quantity = quantity
	name := s.lines[i].Name
	s.persistLocked()

	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event{Type: EventQuantityUpdated, Name: name})
}

// Clear empties the line set.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.persistLocked()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event{Type: EventCleared})
}

// Lines returns a copy of the current line set.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Subtotal is the sum of price times quantity over all lines, computed on
// demand.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount is the total quantity across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) indexOf(productID string) int {
	for i, line := range s.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// persistLocked writes the full line set. Suppressed until Load completes.
func (s *Store) persistLocked() {
	if !s.loaded || s.storage == nil {
		return
	}
	if err := s.storage.Save(s.lines); err != nil {
		log.Println("Failed to persist cart:", err)
	}
}

func (s *Store) snapshotSubs() []func(Event) {
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []func(Event), event Event) {
	for _, fn := range subs {
		fn(event)
	}
}
