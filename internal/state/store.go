package state

import (
	"fmt"

	"go.uber.org/zap"

	"t21dir/internal/directory"
	"t21dir/internal/filter"
)

// Store owns the session state and the loaded collections. It is not safe
// for concurrent use; the UI event loop is its only caller.
type Store struct {
	data  *directory.Collections
	sizes PageSizes
	state State
	subs  []func(Snapshot)
	log   *zap.Logger
}

// NewStore starts a session over data. A nil logger is replaced by a no-op.
func NewStore(data *directory.Collections, sizes PageSizes, log *zap.Logger) *Store {
	if data == nil {
		data = &directory.Collections{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		data:  data,
		sizes: sizes,
		state: newState(sizes),
		log:   log,
	}
}

// Dispatch applies an action. Subscribers are notified only when the state
// actually changed; the return value reports the same.
func (s *Store) Dispatch(a Action) bool {
	e := &env{sizes: s.sizes, total: s.filteredLen}
	if !a.apply(&s.state, e) {
		s.log.Debug("action ignored", zap.String("action", actionName(a)))
		return false
	}
	s.log.Debug("action applied",
		zap.String("action", actionName(a)),
		zap.Stringer("page", s.state.Page),
		zap.String("search", s.state.Search),
	)
	if len(s.subs) > 0 {
		snap := s.Snapshot()
		for _, fn := range s.subs {
			fn(snap)
		}
	}
	return true
}

// Subscribe registers fn to run after every state change.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.subs = append(s.subs, fn)
}

// State returns a copy of the current state.
func (s *Store) State() State { return s.state.clone() }

// Data returns the loaded collections.
func (s *Store) Data() *directory.Collections { return s.data }

// Snapshot captures state and data for rendering.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{State: s.state.clone(), Data: s.data, Sizes: s.sizes}
}

func (s *Store) filteredLen(l List) int {
	snap := Snapshot{State: s.state, Data: s.data, Sizes: s.sizes}
	switch l {
	case ListFinancial:
		return len(snap.FilteredFinancial())
	case ListTherapy:
		return len(snap.FilteredTherapy())
	case ListInspiration:
		return len(snap.FilteredInspiration())
	}
	return 0
}

func actionName(a Action) string {
	return fmt.Sprintf("%T%+v", a, a)
}

// Snapshot is an immutable view of the session used by renderers.
type Snapshot struct {
	State State
	Data  *directory.Collections
	Sizes PageSizes
}

// FilteredFinancial applies the search and financial facets.
func (s Snapshot) FilteredFinancial() []directory.FinancialResource {
	return filter.Financial(s.Data.Financial, s.State.Search, s.State.Selections[ListFinancial])
}

// FilteredTherapy applies the search and therapy facets.
func (s Snapshot) FilteredTherapy() []directory.TherapyService {
	return filter.Therapy(s.Data.Therapy, s.State.Search, s.State.Selections[ListTherapy])
}

// FilteredInspiration applies the inspiration facets.
func (s Snapshot) FilteredInspiration() []directory.InspirationProfile {
	return filter.Inspiration(s.Data.Inspiration, s.State.Selections[ListInspiration])
}

// FinancialPage is the visible slice of the financial list.
func (s Snapshot) FinancialPage() PageView[directory.FinancialResource] {
	return Paginate(s.FilteredFinancial(), s.State.Visible[ListFinancial])
}

// TherapyPage is the visible slice of the therapy list.
func (s Snapshot) TherapyPage() PageView[directory.TherapyService] {
	return Paginate(s.FilteredTherapy(), s.State.Visible[ListTherapy])
}

// InspirationPage is the visible slice of the inspiration grid.
func (s Snapshot) InspirationPage() PageView[directory.InspirationProfile] {
	return Paginate(s.FilteredInspiration(), s.State.Visible[ListInspiration])
}

// PageView is the first Visible of Total filtered records.
type PageView[T any] struct {
	Items   []T
	Total   int
	Visible int
}

// Remaining is how many filtered records are still hidden.
func (p PageView[T]) Remaining() int { return p.Total - p.Visible }

// HasMore reports whether a load-more control should be offered.
func (p PageView[T]) HasMore() bool { return p.Remaining() > 0 }

// Paginate slices records to the cursor.
func Paginate[T any](records []T, cursor int) PageView[T] {
	n := min(max(cursor, 0), len(records))
	return PageView[T]{Items: records[:n], Total: len(records), Visible: n}
}
