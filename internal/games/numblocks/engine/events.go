package engine

import "github.com/google/uuid"

// EventKind names a board event.
type EventKind string

const (
	EventSpawned EventKind = "spawned"
	EventRotated EventKind = "rotated"
	EventSplit   EventKind = "split"
	EventMerged  EventKind = "merged"
)

// Event is emitted by the Board after every successful operation.
// Rejected or no-op operations emit nothing.
type Event interface {
	Kind() EventKind
	boardEvent()
}

// Spawned is emitted when a new block is added.
type Spawned struct {
	Block Block
}

func (Spawned) Kind() EventKind { return EventSpawned }

func (Spawned) boardEvent() {}

// Rotated is emitted when a block changes shape.
type Rotated struct {
	Block Block
	From  int // Previous width
}

func (Rotated) Kind() EventKind { return EventRotated }

func (Rotated) boardEvent() {}

// SplitEvent is emitted when a unit is broken off a block.
type SplitEvent struct {
	Remaining Block // The original block, one smaller
	Fragment  Block // The new unit block
}

func (SplitEvent) Kind() EventKind { return EventSplit }

func (SplitEvent) boardEvent() {}

// Merged is emitted when two blocks combine.
type Merged struct {
	Result  Block
	Sources [2]uuid.UUID // Source then target
}

func (Merged) Kind() EventKind { return EventMerged }

func (Merged) boardEvent() {}
