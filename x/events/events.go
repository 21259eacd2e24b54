/*
Package events declares the notifications emitted by the engine and a few
ways of consuming them.

Events are collected in a Buffer while an operation runs and handed to an
Emitter only once the operation committed. A failed operation emits nothing.
*/
package events

import (
	"math/big"

	"github.com/iov-one/quorum"
)

// Event is a notification about a committed state change.
type Event interface {
	// EventName returns a stable, human readable name.
	EventName() string
	// KeyVals returns the event content as logger key value pairs.
	KeyVals() []interface{}
}

// TransactionExecuted is emitted for every executed transfer. Success is
// false when a best effort dispatch failed and only the nonce was consumed.
type TransactionExecuted struct {
	To      quorum.Address
	Value   *big.Int
	Nonce   uint64
	Success bool
}

func (TransactionExecuted) EventName() string { return "TransactionExecuted" }

func (e TransactionExecuted) KeyVals() []interface{} {
	return []interface{}{"to", e.To, "value", valueString(e.Value), "nonce", e.Nonce, "success", e.Success}
}

// ExecutorChanged is emitted when the executor is replaced.
type ExecutorChanged struct {
	Executor quorum.Address
	Nonce    uint64
}

func (ExecutorChanged) EventName() string { return "ExecutorChanged" }

func (e ExecutorChanged) KeyVals() []interface{} {
	return []interface{}{"executor", e.Executor, "nonce", e.Nonce}
}

// OwnerAdded is emitted when an owner joins.
type OwnerAdded struct {
	Owner     quorum.Address
	Threshold uint32
	Nonce     uint64
}

func (OwnerAdded) EventName() string { return "OwnerAdded" }

func (e OwnerAdded) KeyVals() []interface{} {
	return []interface{}{"owner", e.Owner, "threshold", e.Threshold, "nonce", e.Nonce}
}

// OwnerRemoved is emitted when an owner leaves.
type OwnerRemoved struct {
	Owner     quorum.Address
	Threshold uint32
	Nonce     uint64
}

func (OwnerRemoved) EventName() string { return "OwnerRemoved" }

func (e OwnerRemoved) KeyVals() []interface{} {
	return []interface{}{"owner", e.Owner, "threshold", e.Threshold, "nonce", e.Nonce}
}

// ThresholdChanged is emitted whenever the threshold is set, including by
// owner additions and removals.
type ThresholdChanged struct {
	Threshold uint32
	Nonce     uint64
}

func (ThresholdChanged) EventName() string { return "ThresholdChanged" }

func (e ThresholdChanged) KeyVals() []interface{} {
	return []interface{}{"threshold", e.Threshold, "nonce", e.Nonce}
}

// NonceCancelled is emitted when the owners burn a nonce.
type NonceCancelled struct {
	Nonce uint64
}

func (NonceCancelled) EventName() string { return "NonceCancelled" }

func (e NonceCancelled) KeyVals() []interface{} {
	return []interface{}{"nonce", e.Nonce}
}

// ValueReceived is emitted when the engine is credited.
type ValueReceived struct {
	From  quorum.Address
	Value *big.Int
}

func (ValueReceived) EventName() string { return "ValueReceived" }

func (e ValueReceived) KeyVals() []interface{} {
	return []interface{}{"from", e.From, "value", valueString(e.Value)}
}

func valueString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
