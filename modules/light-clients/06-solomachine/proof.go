package solomachine

import (
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// SentinelHeaderPath defines a placeholder path value used for headers in solomachine client updates
const SentinelHeaderPath = "solomachine:header"

// HeaderSignBytes returns the bytes the key registered at the given sequence
// and diversifier must sign to authorise header.
func HeaderSignBytes(sequence uint64, diversifier string, header *Header) ([]byte, error) {
	headerData := &HeaderData{
		NewPubKey:      header.NewPublicKey,
		NewDiversifier: header.NewDiversifier,
	}

	dataBz, err := headerData.Marshal()
	if err != nil {
		return nil, err
	}

	signBytes := &SignBytes{
		Sequence:    sequence,
		Timestamp:   header.Timestamp,
		Diversifier: diversifier,
		Path:        []byte(SentinelHeaderPath),
		Data:        dataBz,
	}

	return signBytes.Marshal()
}

// VerifySignature verifies if the provided public key generated the signature
// over the given data.
func VerifySignature(pubKey cryptotypes.PubKey, signBytes []byte, signature []byte) error {
	if !pubKey.VerifySignature(signBytes, signature) {
		return sdkerrors.Wrapf(ErrSignatureVerificationFailed, "public key %s", pubKey)
	}

	return nil
}
