package host

import (
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// clientIDSegment is the position of the client identifier in a client key:
// "ibc" / "clients" / "{clientID}" / ...
const clientIDSegment = 2

// ParseClientIDFromKey extracts the client identifier from a client storage key.
// It returns an error wrapping ErrInvalidPath if the key does not live under
// "ibc/clients/" or has no identifier segment, and one wrapping ErrInvalidID if
// the segment is not a valid client identifier.
func ParseClientIDFromKey(key string) (string, error) {
	segments := strings.Split(key, "/")
	if len(segments) <= clientIDSegment {
		return "", sdkerrors.Wrapf(ErrInvalidPath, "key %s has no client identifier segment", key)
	}
	if segments[0] != exported.ModuleName || segments[1] != string(KeyClientStorePrefix) {
		return "", sdkerrors.Wrapf(ErrInvalidPath, "key %s is not a client key", key)
	}

	clientID := segments[clientIDSegment]
	if err := ClientIdentifierValidator(clientID); err != nil {
		return "", sdkerrors.Wrapf(err, "key %s", key)
	}

	return clientID, nil
}

// IsClientCounterKey returns true if the key is the global client counter key.
func IsClientCounterKey(key string) bool {
	return key == ClientCounterPath()
}
