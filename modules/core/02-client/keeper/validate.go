package keeper

import (
	metrics "github.com/armon/go-metrics"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	coremetrics "github.com/ibc-validity/ibc-vp/modules/core/metrics"
)

// ValidateClientKey validates the change the transaction made to the client
// owning the storage key. The key must be a client key carrying a valid client
// identifier.
func (k Keeper) ValidateClientKey(ctx types.Context, key string, txData []byte) (bool, error) {
	clientID, err := host.ParseClientIDFromKey(key)
	if err != nil {
		return false, newKeyError(key, err)
	}
	return k.ValidateClient(ctx, clientID, txData)
}

// ValidateClient returns true if the transaction changed the client clientID in
// a way the IBC client protocol allows. A client may only be created or
// updated: creations are checked for consistency of the written states,
// updates are replayed from the headers or upgrade proofs in txData and must
// produce exactly the states the transaction wrote.
//
// false with a nil error is a rejection of an otherwise well formed
// transaction; any error aborts validation and is a *Error.
func (k Keeper) ValidateClient(ctx types.Context, clientID string, txData []byte) (bool, error) {
	change, err := k.GetClientStateChange(ctx, clientID)
	if err != nil {
		return false, err
	}

	switch change {
	case types.Created:
		ok, err := k.validateCreatedClient(ctx, clientID)
		k.observe(coremetrics.MsgTypeCreate, clientID, ok, err)
		return ok, err
	case types.Updated:
		return k.validateUpdatedClient(ctx, clientID, txData)
	default:
		return false, newStateChangeError(clientID, sdkerrors.Wrapf(
			types.ErrInvalidStateChange, "the state change of the client is invalid: %s", change,
		))
	}
}

// validateCreatedClient checks that the client type, the client state and the
// consensus state at the latest height were all written and agree on the
// client type. The client type must be allowed and routed.
func (k Keeper) validateCreatedClient(ctx types.Context, clientID string) (bool, error) {
	clientType, found := k.GetClientType(ctx, clientID)
	if !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrClientNotFound, "the client type doesn't exist"))
	}
	if _, found := k.getLightClientModule(clientType); !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrRouteNotFound, clientType))
	}
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return false, newClientError(clientID, sdkerrors.Wrap(types.ErrClientNotFound, "the client state doesn't exist"))
	}
	height := clientState.GetLatestHeight()
	consensusState, found := k.GetClientConsensusState(ctx, clientID, height)
	if !found {
		return false, newConsensusError(clientID, height, sdkerrors.Wrap(types.ErrConsensusNotFound, "the consensus state doesn't exist"))
	}

	return clientType == clientState.ClientType() && clientType == consensusState.ClientType(), nil
}

// validateUpdatedClient dispatches on the payload: update client data is
// verified header by header, anything else must be upgrade client data.
func (k Keeper) validateUpdatedClient(ctx types.Context, clientID string, txData []byte) (bool, error) {
	if data, err := types.UnmarshalUpdateClientData(txData); err == nil {
		ok, err := k.verifyUpdateClient(ctx, clientID, data)
		k.observe(coremetrics.MsgTypeUpdate, clientID, ok, err)
		return ok, err
	}

	data, err := types.UnmarshalUpgradeClientData(txData)
	if err != nil {
		err := newDecodingTxDataError(clientID, err)
		k.observe(coremetrics.MsgTypeUpgrade, clientID, false, err)
		return false, err
	}
	ok, err := k.verifyUpgradeClient(ctx, clientID, data)
	k.observe(coremetrics.MsgTypeUpgrade, clientID, ok, err)
	return ok, err
}

// checkClientID checks the client identifier carried by the payload against
// the one of the client being validated.
func checkClientID(clientID, dataClientID string) error {
	if err := host.ClientIdentifierValidator(dataClientID); err != nil {
		return newIBCDataError(clientID, sdkerrors.Wrap(types.ErrInvalidClientID, err.Error()))
	}
	if dataClientID != clientID {
		return newClientError(clientID, sdkerrors.Wrapf(
			types.ErrInvalidClientID, "the client ID is mismatched: %s in the tx data, %s in the key", dataClientID, clientID,
		))
	}
	return nil
}

// observe logs the outcome of a validation and counts it on the metrics
// instance, if any.
func (k Keeper) observe(msgType, clientID string, ok bool, err error) {
	outcome := coremetrics.OutcomeAccepted
	switch {
	case err != nil:
		outcome = coremetrics.OutcomeError
		k.Logger().Debug("client validation failed", "client-id", clientID, "msg-type", msgType, "error", err)
	case !ok:
		outcome = coremetrics.OutcomeRejected
		k.Logger().Info("client change rejected", "client-id", clientID, "msg-type", msgType)
	default:
		k.Logger().Info("client change accepted", "client-id", clientID, "msg-type", msgType)
	}

	if k.metrics == nil {
		return
	}

	clientType, _, parseErr := types.ParseClientIdentifier(clientID)
	if parseErr != nil {
		clientType = "unknown"
	}
	k.metrics.IncrCounterWithLabels(
		[]string{"ibc", "client", "vp", msgType},
		1,
		[]metrics.Label{
			{Name: coremetrics.LabelClientType, Value: clientType},
			{Name: coremetrics.LabelClientID, Value: clientID},
			{Name: coremetrics.LabelMsgType, Value: msgType},
			{Name: coremetrics.LabelOutcome, Value: outcome},
		},
	)
}
