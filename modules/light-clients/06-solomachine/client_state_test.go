package solomachine_test

import (
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
)

func (suite *SoloMachineTestSuite) TestClientState() {
	clientState := suite.solomachine.ClientState()

	suite.Require().Equal(exported.Solomachine, clientState.ClientType())
	suite.Require().Equal(clienttypes.NewHeight(0, suite.solomachine.Sequence), clientState.GetLatestHeight())
	suite.Require().Equal(suite.solomachine.GetHeight(), clientState.GetLatestHeight())
}

func (suite *SoloMachineTestSuite) TestClientStateValidate() {
	testCases := []struct {
		name        string
		clientState *solomachine.ClientState
		expPass     bool
	}{
		{
			"valid client state",
			suite.solomachine.ClientState(),
			true,
		},
		{
			"sequence is zero",
			solomachine.NewClientState(0, suite.solomachine.ConsensusState()),
			false,
		},
		{
			"consensus state is nil",
			solomachine.NewClientState(1, nil),
			false,
		},
		{
			"consensus state timestamp is zero",
			solomachine.NewClientState(1, &solomachine.ConsensusState{
				PublicKey:   suite.solomachine.ConsensusState().PublicKey,
				Diversifier: suite.solomachine.Diversifier,
			}),
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			err := tc.clientState.Validate()

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
