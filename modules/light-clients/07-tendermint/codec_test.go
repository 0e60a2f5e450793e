package tendermint_test

import (
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

func (suite *TendermintTestSuite) TestClientStateEncoding() {
	clientState := suite.chain.ClientState(ibctesting.NewTendermintConfig())

	bz, err := clienttypes.MarshalClientState(suite.cdc, clientState)
	suite.Require().NoError(err)

	decoded, err := clienttypes.UnmarshalClientState(suite.cdc, bz)
	suite.Require().NoError(err)
	suite.Require().True(clienttypes.ClientStatesEqual(suite.cdc, clientState, decoded))

	tmClientState, ok := decoded.(*ibctm.ClientState)
	suite.Require().True(ok)
	suite.Require().NoError(tmClientState.Validate())
	suite.Require().Equal(clientState.TrustLevel, tmClientState.TrustLevel)
	suite.Require().Equal(clientState.TrustingPeriod, tmClientState.TrustingPeriod)
	suite.Require().Equal(clientState.UpgradePath, tmClientState.UpgradePath)
	suite.Require().Len(tmClientState.ProofSpecs, 1)
}

func (suite *TendermintTestSuite) TestConsensusStateEncoding() {
	consensusState := suite.chain.ConsensusState()

	bz, err := clienttypes.MarshalConsensusState(suite.cdc, consensusState)
	suite.Require().NoError(err)

	decoded, err := clienttypes.UnmarshalConsensusState(suite.cdc, bz)
	suite.Require().NoError(err)
	suite.Require().True(clienttypes.ConsensusStatesEqual(suite.cdc, consensusState, decoded))

	tmConsensusState, ok := decoded.(*ibctm.ConsensusState)
	suite.Require().True(ok)
	suite.Require().NoError(tmConsensusState.ValidateBasic())
	suite.Require().Equal(consensusState.Root, tmConsensusState.Root)
	suite.Require().Equal(consensusState.GetTimestamp(), tmConsensusState.GetTimestamp())
}

func (suite *TendermintTestSuite) TestHeaderEncoding() {
	header := suite.chain.UpdateHeader(suite.chain.LastHeight())

	bz, err := header.Marshal()
	suite.Require().NoError(err)

	var decoded ibctm.Header
	suite.Require().NoError(decoded.Unmarshal(bz))
	suite.Require().NoError(decoded.ValidateBasic())
	suite.Require().Equal(header.TrustedHeight, decoded.TrustedHeight)
	suite.Require().Equal(header.GetHeight(), decoded.GetHeight())
	suite.Require().Equal(bz, decoded.MustMarshal())
}

func (suite *TendermintTestSuite) TestStrictDecoding() {
	var header ibctm.Header
	// the signed header is required
	suite.Require().ErrorIs(header.Unmarshal(nil), ibctm.ErrInvalidHeader)
	// unknown field
	suite.Require().ErrorIs(header.Unmarshal([]byte{0x0a, 0x00, 0x28, 0x01}), ibctm.ErrInvalidHeader)

	var clientState ibctm.ClientState
	// the chain id must be length delimited
	suite.Require().ErrorIs(clientState.Unmarshal([]byte{0x08, 0x01}), clienttypes.ErrInvalidClient)
	// the latest height is required
	suite.Require().ErrorIs(clientState.Unmarshal([]byte{0x0a, 0x01, 'a'}), clienttypes.ErrInvalidClient)

	var consensusState ibctm.ConsensusState
	// the timestamp is required
	suite.Require().ErrorIs(consensusState.Unmarshal(nil), clienttypes.ErrInvalidConsensus)

	// the trust level is a strict message too
	var fraction ibctm.Fraction
	suite.Require().Error(fraction.Unmarshal([]byte{0x1a, 0x00}))
}
