package clargs

// Store holds one optional typed value per registered descriptor.
//
// Values are reached through the *Slot[T] handle returned by Register, so
// the type of a stored value is fixed at compile time and no retrieval ever
// needs a type assertion.
type Store struct {
	slots []slot
	guard func() // called before every read, see Parser
}

// slot is the type-independent view of a Slot used for bookkeeping.
type slot interface {
	descriptor() Descriptor
	isSet() bool
	clear()
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Register adds a slot for d and returns its typed handle. A fresh slot is
// absent.
func Register[T any](s *Store, d Descriptor) *Slot[T] {
	sl := &Slot[T]{desc: d, store: s}
	s.slots = append(s.slots, sl)
	return sl
}

// Reset returns every slot to absent.
func (s *Store) Reset() {
	for _, sl := range s.slots {
		sl.clear()
	}
}

// Len returns the number of registered slots.
func (s *Store) Len() int { return len(s.slots) }

// IsSet reports whether the slot registered for d holds a value.
func (s *Store) IsSet(d Descriptor) bool {
	if sl := s.lookup(d); sl != nil {
		return sl.isSet()
	}
	return false
}

func (s *Store) lookup(d Descriptor) slot {
	for _, sl := range s.slots {
		if sl.descriptor() == d {
			return sl
		}
	}
	return nil
}

// Slot is the typed storage cell of a single descriptor.
type Slot[T any] struct {
	desc  Descriptor
	store *Store
	value T
	set   bool
}

// Set stores v, replacing any previous value.
func (s *Slot[T]) Set(v T) {
	s.value = v
	s.set = true
}

// Get returns the stored value and whether one is present.
func (s *Slot[T]) Get() (T, bool) {
	s.check()
	return s.value, s.set
}

// Value returns the stored value, or the zero value when absent.
func (s *Slot[T]) Value() T {
	s.check()
	return s.value
}

// Or returns the stored value, or def when absent.
func (s *Slot[T]) Or(def T) T {
	s.check()
	if !s.set {
		return def
	}
	return s.value
}

// IsSet reports whether a value is present.
func (s *Slot[T]) IsSet() bool {
	s.check()
	return s.set
}

// Descriptor returns the descriptor this slot belongs to.
func (s *Slot[T]) Descriptor() Descriptor { return s.desc }

func (s *Slot[T]) check() {
	if s.store != nil && s.store.guard != nil {
		s.store.guard()
	}
}

func (s *Slot[T]) descriptor() Descriptor { return s.desc }
func (s *Slot[T]) isSet() bool            { return s.set }

func (s *Slot[T]) clear() {
	var zero T
	s.value = zero
	s.set = false
}

// FlagValue is the result handle of a registered flag.
type FlagValue struct {
	slot *Slot[bool]
}

// Present reports whether the flag was given on the command line.
func (f *FlagValue) Present() bool {
	return f.slot.IsSet()
}

// Descriptor returns the flag this value belongs to.
func (f *FlagValue) Descriptor() Descriptor { return f.slot.desc }
