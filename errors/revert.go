package errors

import (
	"encoding/hex"
	"fmt"
)

// Revert returns an ErrCallReverted instance carrying the failure payload
// returned by a callee. Use RevertData to read the payload back.
func Revert(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	return Wrap(&revertError{data: cp}, "dispatch")
}

type revertError struct {
	data []byte
}

func (e *revertError) Error() string {
	return fmt.Sprintf("%s: 0x%s", ErrCallReverted.desc, hex.EncodeToString(e.data))
}

func (e *revertError) Cause() error {
	return ErrCallReverted
}

// RevertData returns the callee failure payload carried by given error.
func RevertData(err error) ([]byte, bool) {
	for err != nil {
		if r, ok := err.(*revertError); ok {
			return r.data, true
		}
		c, ok := err.(causer)
		if !ok {
			return nil, false
		}
		err = c.Cause()
	}
	return nil, false
}
