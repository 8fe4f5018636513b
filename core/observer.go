// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// observer.go - lifecycle notifications.
//
// Call points:
//   • InitBegin / InitEnd      around point generation inside NewGraph.
//   • InsertBegin              once per InsertRandomEdges, before any attempt.
//   • InsertProgress           once per finished batch of attempts.
//   • InsertEnd                once per InsertRandomEdges, after all batches.
//
// Delivery:
//   • Synchronous, serialized per graph: one callback runs at a time, so an
//     observer needs no locking of its own and sees Total values in order.
//   • Every callback is guarded by recover; a panicking observer is skipped and
//     counted (Graph.ObserverFaults), never propagated into the core.
//   • Observers must not call back into InsertRandomEdges of the same graph.

package core

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// InitEvent describes point generation during construction.
type InitEvent struct {
	Nodes       int
	Parallelism int
	Seed        int64
	At          time.Time     // when the event fired
	Elapsed     time.Duration // zero on InitBegin
}

// InsertEvent describes one InsertRandomEdges call.
// On InsertBegin only RunID, Requested, Policy, Rand, Begin and Total
// (edges already present) are set.
type InsertEvent struct {
	RunID     uuid.UUID
	Requested int // count after clamping to MaxEdges
	Policy    LockPolicy
	Rand      RandPolicy
	Begin     time.Time
	Elapsed   time.Duration
	Inserted  int // edges added by this call
	Total     int // edges in the graph
}

// ProgressEvent reports one finished batch of insertion attempts.
type ProgressEvent struct {
	RunID uuid.UUID
	Batch int
	Delta int // edges this batch added
	Total int // edges in the graph after the batches finished so far
}

// Observer receives lifecycle notifications from a Graph.
type Observer interface {
	InitBegin(InitEvent)
	InitEnd(InitEvent)
	InsertBegin(InsertEvent)
	InsertProgress(ProgressEvent)
	InsertEnd(InsertEvent)
}

// NopObserver implements Observer with no-ops. Embed it to override a subset.
type NopObserver struct{}

func (NopObserver) InitBegin(InitEvent)          {}
func (NopObserver) InitEnd(InitEvent)            {}
func (NopObserver) InsertBegin(InsertEvent)      {}
func (NopObserver) InsertProgress(ProgressEvent) {}
func (NopObserver) InsertEnd(InsertEvent)        {}

// Hooks adapts plain functions to Observer. Nil fields are ignored.
type Hooks struct {
	OnInitBegin      func(InitEvent)
	OnInitEnd        func(InitEvent)
	OnInsertBegin    func(InsertEvent)
	OnInsertProgress func(ProgressEvent)
	OnInsertEnd      func(InsertEvent)
}

func (h Hooks) InitBegin(e InitEvent) {
	if h.OnInitBegin != nil {
		h.OnInitBegin(e)
	}
}

func (h Hooks) InitEnd(e InitEvent) {
	if h.OnInitEnd != nil {
		h.OnInitEnd(e)
	}
}

func (h Hooks) InsertBegin(e InsertEvent) {
	if h.OnInsertBegin != nil {
		h.OnInsertBegin(e)
	}
}

func (h Hooks) InsertProgress(e ProgressEvent) {
	if h.OnInsertProgress != nil {
		h.OnInsertProgress(e)
	}
}

func (h Hooks) InsertEnd(e InsertEvent) {
	if h.OnInsertEnd != nil {
		h.OnInsertEnd(e)
	}
}

// notifier fans events out to observers one at a time.
type notifier struct {
	mu        sync.Mutex
	observers []Observer
	faults    atomic.Uint64
}

func (n *notifier) emit(call func(Observer)) {
	if len(n.observers) == 0 {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, o := range n.observers {
		n.safe(o, call)
	}
}

func (n *notifier) safe(o Observer, call func(Observer)) {
	defer func() {
		if r := recover(); r != nil {
			n.faults.Add(1)
		}
	}()
	call(o)
}
