package admin

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/eip712"
	"github.com/iov-one/quorum/errors"
)

// Action tags bound into the signed digest.
const (
	ActionSetExecutor  = "SET_EXECUTOR"
	ActionAddOwner     = "ADD_OWNER"
	ActionRemoveOwner  = "REMOVE_OWNER"
	ActionSetThreshold = "SET_THRESHOLD"
	ActionCancelNonce  = "CANCEL_NONCE"
)

// Request is an admin action with its parameters. Which fields are used
// depends on the action:
//
//	SET_EXECUTOR   Target is the new executor, Value is zero
//	ADD_OWNER      Target is the new owner, Value is the new threshold
//	REMOVE_OWNER   Target is the removed owner, Value is the new threshold
//	SET_THRESHOLD  Target is zero, Value is the new threshold
//	CANCEL_NONCE   Target and Value are zero
type Request struct {
	Action string
	Target quorum.Address
	Value  uint64
}

// SetExecutor returns a request replacing the executor.
func SetExecutor(executor quorum.Address) Request {
	return Request{Action: ActionSetExecutor, Target: executor}
}

// AddOwner returns a request adding an owner.
func AddOwner(owner quorum.Address, newThreshold uint32) Request {
	return Request{Action: ActionAddOwner, Target: owner, Value: uint64(newThreshold)}
}

// RemoveOwner returns a request removing an owner.
func RemoveOwner(owner quorum.Address, newThreshold uint32) Request {
	return Request{Action: ActionRemoveOwner, Target: owner, Value: uint64(newThreshold)}
}

// SetThreshold returns a request changing the threshold.
func SetThreshold(threshold uint32) Request {
	return Request{Action: ActionSetThreshold, Value: uint64(threshold)}
}

// CancelNonce returns a request burning the current nonce.
func CancelNonce() Request {
	return Request{Action: ActionCancelNonce}
}

// Validate checks that the action is known and that unused parameters are
// zero.
func (r Request) Validate() error {
	switch r.Action {
	case ActionSetExecutor:
		if r.Value != 0 {
			return errors.Wrap(errors.ErrInput, "value must be zero")
		}
	case ActionAddOwner, ActionRemoveOwner:
		if err := checkThresholdValue(r.Value); err != nil {
			return err
		}
	case ActionSetThreshold:
		if !r.Target.IsZero() {
			return errors.Wrap(errors.ErrInput, "target must be zero")
		}
		if err := checkThresholdValue(r.Value); err != nil {
			return err
		}
	case ActionCancelNonce:
		if !r.Target.IsZero() || r.Value != 0 {
			return errors.Wrap(errors.ErrInput, "target and value must be zero")
		}
	default:
		return errors.Wrapf(errors.ErrInput, "unknown action %q", r.Action)
	}
	return nil
}

func checkThresholdValue(v uint64) error {
	if v > uint64(^uint32(0)) {
		return errors.Wrapf(errors.ErrInvalidThreshold, "%d out of range", v)
	}
	return nil
}

// AdminAction returns the typed data that owners sign for this request.
func (r Request) AdminAction(nonce uint64) eip712.AdminAction {
	return eip712.AdminAction{
		Action: r.Action,
		Target: r.Target,
		Value:  r.Value,
		Nonce:  nonce,
	}
}
