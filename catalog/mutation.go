package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

/* MutationStatus follows the lifecycle Idle -> Pending -> Succeeded/Failed.
 * Presentation code disables the triggering control while Pending.
 */
type MutationStatus int

const (
	Idle MutationStatus = iota + 1
	Pending
	Succeeded
	Failed
)

// String returns the string representation of the status
func (s MutationStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name
func (s MutationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsFinal returns true if the mutation has settled
func (s MutationStatus) IsFinal() bool {
	return s == Succeeded || s == Failed
}

// Operation is a write performed by the console.
type Operation int

const (
	Create Operation = iota + 1
	Update
	Delete
)

func (o Operation) String() string {
	switch o {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// MarshalText encodes the operation by name
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MutationState is the last known state of a (kind, operation) pair.
// Reason holds the user message when Status is Failed.
type MutationState struct {
	ID        string         `json:"id,omitempty"`
	Kind      string         `json:"kind"`
	Operation Operation      `json:"operation"`
	Status    MutationStatus `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type mutationKey struct {
	kind Kind
	op   Operation
}

type mutationSlot struct {
	state    MutationState
	inFlight int
}

// Mutations tracks mutation state per (kind, operation). It does not serialize calls:
// the pair stays Pending while any call is in flight and reports the last settlement.
type Mutations struct {
	mu    sync.Mutex
	slots map[mutationKey]*mutationSlot
	now   func() time.Time
}

func NewMutations() *Mutations {
	return &Mutations{
		slots: make(map[mutationKey]*mutationSlot),
		now:   time.Now,
	}
}

// begin marks the pair as Pending and returns the id of the new mutation.
func (m *Mutations) begin(kind Kind, op Operation) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot := m.slot(kind, op)
	slot.inFlight++
	id := uuid.New().String()
	slot.state.ID = id
	slot.state.Status = Pending
	slot.state.Reason = ""
	slot.state.UpdatedAt = m.now()
	return id
}

// settle records the outcome of the mutation started with id.
func (m *Mutations) settle(kind Kind, op Operation, id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot := m.slot(kind, op)
	if slot.inFlight > 0 {
		slot.inFlight--
	}
	if slot.inFlight > 0 {
		return
	}
	slot.state.ID = id
	slot.state.UpdatedAt = m.now()
	if err != nil {
		slot.state.Status = Failed
		slot.state.Reason = Message(err)
		return
	}
	slot.state.Status = Succeeded
	slot.state.Reason = ""
}

// State returns the state of a pair; pairs never used are Idle.
func (m *Mutations) State(kind Kind, op Operation) MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot, ok := m.slots[mutationKey{kind, op}]; ok {
		return slot.state
	}
	return MutationState{Kind: kind.String(), Operation: op, Status: Idle}
}

// All returns every pair that has been used, ordered by kind then operation.
func (m *Mutations) All() []MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]mutationKey, 0, len(m.slots))
	for k := range m.slots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].kind != keys[j].kind {
			return keys[i].kind < keys[j].kind
		}
		return keys[i].op < keys[j].op
	})
	out := make([]MutationState, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.slots[k].state)
	}
	return out
}

// PendingCount returns how many pairs are currently Pending.
func (m *Mutations) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, slot := range m.slots {
		if slot.inFlight > 0 {
			n++
		}
	}
	return n
}

func (m *Mutations) slot(kind Kind, op Operation) *mutationSlot {
	k := mutationKey{kind, op}
	slot, ok := m.slots[k]
	if !ok {
		slot = &mutationSlot{state: MutationState{Kind: kind.String(), Operation: op, Status: Idle}}
		m.slots[k] = slot
	}
	return slot
}
