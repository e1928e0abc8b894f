// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package outfit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/closet/internal/wardrobe/outfit"
)

func ev(kind outfit.EventType, index int, at int64) outfit.Event {
	return outfit.Event{Type: kind, Index: index, At: at}
}

/*
TestGesture_Transitions walks every row of the transition table.
*/
func TestGesture_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		events    []outfit.Event
		wantState outfit.StateKind
		wantLast  outfit.Outcome
	}{
		{
			name:      "Quick tap",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 1000), ev(outfit.EventRelease, 1, 1200)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeTap, From: 1, To: 1},
		},
		{
			name:      "Long press release is not a tap",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 1000), ev(outfit.EventRelease, 1, 1500)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Early hold is ignored",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 1000), ev(outfit.EventHold, 1, 1499)},
			wantState: outfit.StatePressPending,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Hold promotes to drag",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 1000), ev(outfit.EventHold, 1, 1500)},
			wantState: outfit.StateDragging,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Leave cancels a press",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 1000), ev(outfit.EventLeave, -1, 1100)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name: "Long press drag and drop",
			events: []outfit.Event{
				ev(outfit.EventPress, 0, 1000), ev(outfit.EventHold, 0, 1600),
				ev(outfit.EventOver, 1, 1700), ev(outfit.EventOver, 2, 1800), ev(outfit.EventDrop, 2, 1900),
			},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeMove, From: 0, To: 2},
		},
		{
			name:      "Native drag from idle",
			events:    []outfit.Event{ev(outfit.EventDragStart, 2, 0), ev(outfit.EventDrop, 0, 10)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeMove, From: 2, To: 0},
		},
		{
			name:      "Drag start during press keeps the pressed index",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 0), ev(outfit.EventDragStart, 3, 10), ev(outfit.EventDrop, 0, 20)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeMove, From: 1, To: 0},
		},
		{
			name:      "Drop on itself",
			events:    []outfit.Event{ev(outfit.EventDragStart, 1, 0), ev(outfit.EventOver, 1, 5), ev(outfit.EventDrop, 1, 10)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Drop without target",
			events:    []outfit.Event{ev(outfit.EventDragStart, 1, 0), ev(outfit.EventDrop, -1, 10)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Drag end cancels",
			events:    []outfit.Event{ev(outfit.EventDragStart, 1, 0), ev(outfit.EventOver, 2, 5), ev(outfit.EventDragEnd, -1, 10)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Stray events in idle are ignored",
			events:    []outfit.Event{ev(outfit.EventDrop, 1, 0), ev(outfit.EventOver, 1, 0), ev(outfit.EventRelease, 1, 0)},
			wantState: outfit.StateIdle,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
		{
			name:      "Over during press is ignored",
			events:    []outfit.Event{ev(outfit.EventPress, 1, 0), ev(outfit.EventOver, 2, 5)},
			wantState: outfit.StatePressPending,
			wantLast:  outfit.Outcome{Kind: outfit.OutcomeNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gesture := outfit.NewGesture(500 * time.Millisecond)

			var last outfit.Outcome
			for _, event := range tt.events {
				last = gesture.Handle(event)
			}

			assert.Equal(t, tt.wantState, gesture.State().Kind)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

/*
TestGesture_DragOverTracksTarget verifies the hovered index.
*/
func TestGesture_DragOverTracksTarget(t *testing.T) {
	gesture := outfit.NewGesture(500 * time.Millisecond)
	gesture.Handle(ev(outfit.EventDragStart, 0, 0))
	gesture.Handle(ev(outfit.EventOver, 3, 1))

	state := gesture.State()
	assert.Equal(t, outfit.StateDragOver, state.Kind)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 3, state.Target)
}
