package solomachine_test

import (
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
)

func (suite *SoloMachineTestSuite) TestClientStateEncoding() {
	clientState := suite.solomachine.ClientState()

	bz, err := clienttypes.MarshalClientState(suite.cdc, clientState)
	suite.Require().NoError(err)

	decoded, err := clienttypes.UnmarshalClientState(suite.cdc, bz)
	suite.Require().NoError(err)
	suite.Require().True(clienttypes.ClientStatesEqual(suite.cdc, clientState, decoded))

	smClientState, ok := decoded.(*solomachine.ClientState)
	suite.Require().True(ok)
	suite.Require().NoError(smClientState.Validate())

	publicKey, err := smClientState.ConsensusState.GetPubKey()
	suite.Require().NoError(err)
	suite.Require().True(suite.solomachine.PublicKey.Equals(publicKey))
}

func (suite *SoloMachineTestSuite) TestConsensusStateEncoding() {
	consensusState := suite.solomachine.ConsensusState()

	bz, err := clienttypes.MarshalConsensusState(suite.cdc, consensusState)
	suite.Require().NoError(err)

	decoded, err := clienttypes.UnmarshalConsensusState(suite.cdc, bz)
	suite.Require().NoError(err)
	suite.Require().True(clienttypes.ConsensusStatesEqual(suite.cdc, consensusState, decoded))
	suite.Require().NoError(decoded.(*solomachine.ConsensusState).ValidateBasic())
}

func (suite *SoloMachineTestSuite) TestHeaderEncoding() {
	header := suite.solomachine.CreateHeader("rotated")

	bz, err := header.Marshal()
	suite.Require().NoError(err)

	var decoded solomachine.Header
	suite.Require().NoError(decoded.Unmarshal(bz))
	suite.Require().Equal(header.Sequence, decoded.Sequence)
	suite.Require().Equal(header.Timestamp, decoded.Timestamp)
	suite.Require().Equal(header.Signature, decoded.Signature)
	suite.Require().Equal(header.NewDiversifier, decoded.NewDiversifier)
	suite.Require().Equal(header.NewPublicKey.Value, decoded.NewPublicKey.Value)

	// strict decoding
	suite.Require().ErrorIs(decoded.Unmarshal(append(bz, 0x30, 0x01)), solomachine.ErrInvalidHeader)

	var clientState solomachine.ClientState
	suite.Require().ErrorIs(clientState.Unmarshal([]byte{0x10, 0x02}), clienttypes.ErrInvalidClient)

	var consensusState solomachine.ConsensusState
	suite.Require().ErrorIs(consensusState.Unmarshal([]byte{0x08, 0x01}), clienttypes.ErrInvalidConsensus)
}
