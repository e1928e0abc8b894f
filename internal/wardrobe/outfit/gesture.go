// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit

import "time"

// StateKind names a reorder gesture state.
type StateKind string

const (
	StateIdle         StateKind = "idle"
	StatePressPending StateKind = "press_pending"
	StateDragging     StateKind = "dragging"
	StateDragOver     StateKind = "drag_over"
)

// State is the current gesture state. Index is the pressed or dragged outfit,
// Target the outfit hovered in [StateDragOver], PressedAt the press time in
// unix milliseconds.
type State struct {
	Kind      StateKind `json:"kind"`
	Index     int       `json:"index"`
	Target    int       `json:"target"`
	PressedAt int64     `json:"pressedAt"`
}

// EventType names a pointer event.
type EventType string

const (
	EventPress     EventType = "press"
	EventDragStart EventType = "drag_start"
	EventHold      EventType = "hold"
	EventRelease   EventType = "release"
	EventLeave     EventType = "leave"
	EventOver      EventType = "over"
	EventDrop      EventType = "drop"
	EventDragEnd   EventType = "drag_end"
)

// Event is one pointer event. At is a unix millisecond timestamp; Index is the
// outfit under the pointer, or -1 for none.
type Event struct {
	Type  EventType `json:"type"`
	Index int       `json:"index"`
	At    int64     `json:"at"`
}

// OutcomeKind names the effect of an event.
type OutcomeKind string

const (
	OutcomeNone OutcomeKind = "none"
	OutcomeTap  OutcomeKind = "tap"
	OutcomeMove OutcomeKind = "move"
)

// Outcome is the effect of an event. Tap opens the outfit at From; Move
// splices the outfit at From to To.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	From int         `json:"from"`
	To   int         `json:"to"`
}

var none = Outcome{Kind: OutcomeNone}

var idle = State{Kind: StateIdle, Index: -1, Target: -1}

// transition computes the next state. ok false means the event is ignored.
type transition func(gesture *Gesture, current State, event Event) (next State, outcome Outcome, ok bool)

// transitions is the full gesture table. Pairs not listed leave the state unchanged.
var transitions = map[StateKind]map[EventType]transition{
	StateIdle: {
		EventPress:     toPressPending,
		EventDragStart: toDragging,
	},
	StatePressPending: {
		EventHold:      holdToDragging,
		EventRelease:   releasePress,
		EventDragStart: toDragging,
		EventLeave:     toIdle,
	},
	StateDragging: {
		EventOver:    toDragOver,
		EventDrop:    dropAt,
		EventRelease: toIdle,
		EventLeave:   toIdle,
		EventDragEnd: toIdle,
	},
	StateDragOver: {
		EventOver:    toDragOver,
		EventDrop:    dropAt,
		EventRelease: toIdle,
		EventLeave:   toIdle,
		EventDragEnd: toIdle,
	},
}

func toIdle(_ *Gesture, _ State, _ Event) (State, Outcome, bool) {
	return idle, none, true
}

func toPressPending(_ *Gesture, _ State, event Event) (State, Outcome, bool) {
	return State{Kind: StatePressPending, Index: event.Index, Target: -1, PressedAt: event.At}, none, true
}

// toDragging starts a drag of the pressed outfit, or of the event's outfit from idle.
func toDragging(_ *Gesture, current State, event Event) (State, Outcome, bool) {
	index := event.Index
	if current.Kind == StatePressPending {
		index = current.Index
	}
	return State{Kind: StateDragging, Index: index, Target: -1}, none, true
}

func holdToDragging(gesture *Gesture, current State, event Event) (State, Outcome, bool) {
	if !gesture.held(current, event) {
		return current, none, false
	}
	return State{Kind: StateDragging, Index: current.Index, Target: -1}, none, true
}

// releasePress is a tap when released before the long-press threshold.
func releasePress(gesture *Gesture, current State, event Event) (State, Outcome, bool) {
	if gesture.held(current, event) {
		return idle, none, true
	}
	return idle, Outcome{Kind: OutcomeTap, From: current.Index, To: current.Index}, true
}

func toDragOver(_ *Gesture, current State, event Event) (State, Outcome, bool) {
	return State{Kind: StateDragOver, Index: current.Index, Target: event.Index}, none, true
}

// dropAt moves the dragged outfit. Dropping on itself or on no target is a no-op.
func dropAt(_ *Gesture, current State, event Event) (State, Outcome, bool) {
	if event.Index < 0 || event.Index == current.Index {
		return idle, none, true
	}
	return idle, Outcome{Kind: OutcomeMove, From: current.Index, To: event.Index}, true
}

// Gesture is the reorder state machine. It is not safe for concurrent use.
type Gesture struct {
	state     State
	threshold time.Duration
}

// NewGesture returns an idle gesture promoting presses held for threshold.
func NewGesture(threshold time.Duration) *Gesture {
	return &Gesture{state: idle, threshold: threshold}
}

// State returns the current state.
func (gesture *Gesture) State() State { return gesture.state }

// Handle feeds one event and returns its outcome.
func (gesture *Gesture) Handle(event Event) Outcome {
	step, ok := transitions[gesture.state.Kind][event.Type]
	if !ok {
		return none
	}

	next, outcome, ok := step(gesture, gesture.state, event)
	if !ok {
		return none
	}
	gesture.state = next
	return outcome
}

// Restore rewinds the gesture to a state previously returned by [Gesture.State].
func (gesture *Gesture) Restore(state State) { gesture.state = state }

func (gesture *Gesture) held(current State, event Event) bool {
	return time.Duration(event.At-current.PressedAt)*time.Millisecond >= gesture.threshold
}
