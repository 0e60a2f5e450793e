package keeper

import (
	"fmt"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// noHeaderIndex marks an Error that is not about a particular header.
const noHeaderIndex = -1

// Error is the error returned by the validity predicate. Kind is one of the
// error kinds registered in types (ErrInvalidKey, ErrStateChange, ErrClient,
// ErrHeader, ErrProofVerification, ErrDecodingTxData, ErrIBCData) and
// errors.Is(err, Kind) holds. The remaining fields give the context the error
// was raised in; Height is nil and HeaderIndex is negative when they do not
// apply.
type Error struct {
	Kind        *sdkerrors.Error
	ClientID    string
	Height      exported.Height
	HeaderIndex int
	Cause       error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.ClientID != "" {
		fmt.Fprintf(&sb, ": client %s", e.ClientID)
	}
	if e.Height != nil {
		fmt.Fprintf(&sb, ": height %s", e.Height)
	}
	if e.HeaderIndex >= 0 {
		fmt.Fprintf(&sb, ": header %d", e.HeaderIndex)
	}
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %s", e.Cause)
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return e.Kind.Is(target)
}

// ABCICode returns the code of the error kind.
func (e *Error) ABCICode() uint32 {
	return e.Kind.ABCICode()
}

// Codespace returns the codespace of the error kind.
func (e *Error) Codespace() string {
	return e.Kind.Codespace()
}

func newError(kind *sdkerrors.Error, clientID string, cause error) *Error {
	return &Error{
		Kind:        kind,
		ClientID:    clientID,
		HeaderIndex: noHeaderIndex,
		Cause:       cause,
	}
}

func newKeyError(key string, cause error) *Error {
	return newError(types.ErrInvalidKey, "", sdkerrors.Wrapf(cause, "key %s", key))
}

func newStateChangeError(clientID string, cause error) *Error {
	return newError(types.ErrStateChange, clientID, cause)
}

func newClientError(clientID string, cause error) *Error {
	return newError(types.ErrClient, clientID, cause)
}

func newConsensusError(clientID string, height exported.Height, cause error) *Error {
	err := newError(types.ErrClient, clientID, cause)
	err.Height = height
	return err
}

func newHeaderError(clientID string, index int, cause error) *Error {
	err := newError(types.ErrHeader, clientID, cause)
	err.HeaderIndex = index
	return err
}

func newProofVerificationError(clientID string, cause error) *Error {
	return newError(types.ErrProofVerification, clientID, cause)
}

func newDecodingTxDataError(clientID string, cause error) *Error {
	return newError(types.ErrDecodingTxData, clientID, cause)
}

func newIBCDataError(clientID string, cause error) *Error {
	return newError(types.ErrIBCData, clientID, cause)
}
