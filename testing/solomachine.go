package ibctesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
)

// Solomachine is a testing helper used to simulate a counterparty
// solo machine client.
type Solomachine struct {
	t *testing.T

	ClientID    string
	PrivateKey  cryptotypes.PrivKey // key used for signing
	PublicKey   cryptotypes.PubKey  // key used for verification
	Sequence    uint64
	Time        uint64
	Diversifier string
}

// NewSolomachine returns a new solomachine instance with a generated
// secp256k1 key pair and a sequence starting at 1.
func NewSolomachine(t *testing.T, clientID, diversifier string) *Solomachine {
	t.Helper()
	privKey := secp256k1.GenPrivKey()

	return &Solomachine{
		t:           t,
		ClientID:    clientID,
		PrivateKey:  privKey,
		PublicKey:   privKey.PubKey(),
		Sequence:    1,
		Time:        10,
		Diversifier: diversifier,
	}
}

// ClientState returns a new solo machine ClientState instance.
func (solo *Solomachine) ClientState() *solomachine.ClientState {
	return solomachine.NewClientState(solo.Sequence, solo.ConsensusState())
}

// ConsensusState returns a new solo machine ConsensusState instance
func (solo *Solomachine) ConsensusState() *solomachine.ConsensusState {
	publicKey, err := codectypes.NewAnyWithValue(solo.PublicKey)
	require.NoError(solo.t, err)

	return &solomachine.ConsensusState{
		PublicKey:   publicKey,
		Diversifier: solo.Diversifier,
		Timestamp:   solo.Time,
	}
}

// GetHeight returns an exported.Height with Sequence as RevisionHeight
func (solo *Solomachine) GetHeight() exported.Height {
	return clienttypes.NewHeight(0, solo.Sequence)
}

// CreateHeader generates a new private/public key pair and creates the
// necessary signature to construct a valid solo machine header.
// A new diversifier will be used as well
func (solo *Solomachine) CreateHeader(newDiversifier string) *solomachine.Header {
	// generate new private key and signature for header
	newPrivKey := secp256k1.GenPrivKey()

	publicKey, err := codectypes.NewAnyWithValue(newPrivKey.PubKey())
	require.NoError(solo.t, err)

	header := &solomachine.Header{
		Sequence:       solo.Sequence,
		Timestamp:      solo.Time,
		NewPublicKey:   publicKey,
		NewDiversifier: newDiversifier,
	}

	signBytes, err := solomachine.HeaderSignBytes(solo.Sequence, solo.Diversifier, header)
	require.NoError(solo.t, err)

	header.Signature = solo.GenerateSignature(signBytes)

	// assumes successful header update
	solo.Sequence++
	solo.Time++
	solo.PrivateKey = newPrivKey
	solo.PublicKey = newPrivKey.PubKey()
	solo.Diversifier = newDiversifier

	return header
}

// GenerateSignature signs signBytes with the current private key.
func (solo *Solomachine) GenerateSignature(signBytes []byte) []byte {
	sig, err := solo.PrivateKey.Sign(signBytes)
	require.NoError(solo.t, err)
	return sig
}
