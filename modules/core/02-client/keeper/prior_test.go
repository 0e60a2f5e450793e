package keeper_test

import (
	ics23 "github.com/confio/ics23/go"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

// TestUpgradeDegenerateProofSpec stores a prior tendermint client whose proof
// spec has neither a leaf nor an inner spec under an otherwise valid upgrade.
func (suite *KeeperTestSuite) TestUpgradeDegenerateProofSpec() {
	newClientState, newConsensusState, proofClient, proofConsState := suite.setupUpgrade()

	clientState := suite.chain.ClientState(ibctesting.NewTendermintConfig())
	clientState.ProofSpecs = []*ics23.ProofSpec{{}}
	suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
	suite.writeClient(tmClientID, newClientState, newConsensusState)

	var (
		valid bool
		err   error
	)
	suite.Require().NotPanics(func() {
		valid, err = suite.keeper.ValidateClient(suite.ctx(), tmClientID, suite.upgradeTxData(tmClientID, proofClient, proofConsState))
	})
	suite.Require().False(valid)
	suite.requireKeeperError(err, types.ErrProofVerification)
	suite.Require().ErrorIs(err, ibctm.ErrInvalidProofSpecs)
}

// TestMalformedPriorClientState drives updates and upgrades of every light
// client from a prior client state that was stored without validation.
func (suite *KeeperTestSuite) TestMalformedPriorClientState() {
	var (
		clientID string
		txData   []byte
	)

	// updateTendermint stores the result of a valid single header update and
	// returns the prior client state to corrupt.
	updateTendermint := func() *ibctm.ClientState {
		clientState, _ := suite.setupTendermintClient()
		header := suite.chain.UpdateHeader(clientState.LatestHeight)

		cs := *clientState
		newClientState := &cs
		newClientState.LatestHeight = suite.chain.LastHeight()
		suite.writeClient(tmClientID, newClientState, header.ConsensusState())

		clientID, txData = tmClientID, suite.updateTxData(tmClientID, header.MustMarshal())
		return clientState
	}

	// upgradeTendermint stores the result of a valid upgrade and returns the
	// prior client state to corrupt.
	upgradeTendermint := func() *ibctm.ClientState {
		newClientState, newConsensusState, proofClient, proofConsState := suite.setupUpgrade()
		suite.writeClient(tmClientID, newClientState, newConsensusState)

		clientID, txData = tmClientID, suite.upgradeTxData(tmClientID, proofClient, proofConsState)
		return suite.chain.ClientState(ibctesting.NewTendermintConfig())
	}

	updateSolomachine := func(malleate func(*solomachine.ClientState)) {
		clientState := suite.solomachine.ClientState()
		suite.snapshot.SetClient(ibctesting.Pre, smClientID, clientState, clientState.ConsensusState).CopyPreToPost()

		header := suite.solomachine.CreateHeader("diversifier")
		newClientState := solomachine.NewClientState(header.Sequence+1, &solomachine.ConsensusState{
			PublicKey:   header.NewPublicKey,
			Diversifier: header.NewDiversifier,
			Timestamp:   header.Timestamp,
		})
		suite.writeClient(smClientID, newClientState, newClientState.ConsensusState)

		malleate(clientState)
		suite.snapshot.SetClient(ibctesting.Pre, smClientID, clientState, clientState.ConsensusState)

		headerBz, err := header.Marshal()
		suite.Require().NoError(err)
		clientID, txData = smClientID, suite.updateTxData(smClientID, headerBz)
	}

	testCases := []struct {
		name     string
		malleate func()
		expKind  error
		expErr   error
	}{
		{
			"tendermint update: degenerate proof spec",
			func() {
				clientState := updateTendermint()
				clientState.ProofSpecs = []*ics23.ProofSpec{{}}
				suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
			},
			types.ErrHeader, ibctm.ErrInvalidProofSpecs,
		},
		{
			"tendermint update: zero trust level",
			func() {
				clientState := updateTendermint()
				clientState.TrustLevel = ibctm.Fraction{}
				suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
			},
			types.ErrHeader, ibctm.ErrInvalidTrustLevel,
		},
		{
			"tendermint update: zero max clock drift",
			func() {
				clientState := updateTendermint()
				clientState.MaxClockDrift = 0
				suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
			},
			types.ErrHeader, ibctm.ErrInvalidMaxClockDrift,
		},
		{
			"tendermint upgrade: proof spec without leaf spec",
			func() {
				clientState := upgradeTendermint()
				clientState.ProofSpecs = []*ics23.ProofSpec{{InnerSpec: ics23.TendermintSpec.InnerSpec}}
				suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
			},
			types.ErrProofVerification, ibctm.ErrInvalidProofSpecs,
		},
		{
			"tendermint upgrade: zero unbonding period",
			func() {
				clientState := upgradeTendermint()
				clientState.UnbondingPeriod = 0
				suite.snapshot.SetClientState(ibctesting.Pre, tmClientID, clientState)
			},
			types.ErrProofVerification, ibctm.ErrInvalidUnbondingPeriod,
		},
		{
			"solomachine update: zero sequence",
			func() {
				updateSolomachine(func(cs *solomachine.ClientState) { cs.Sequence = 0 })
			},
			types.ErrHeader, types.ErrInvalidClient,
		},
		{
			"solomachine update: consensus state without public key",
			func() {
				updateSolomachine(func(cs *solomachine.ClientState) { cs.ConsensusState.PublicKey = nil })
			},
			types.ErrHeader, types.ErrInvalidConsensus,
		},
		{
			"mock update: zero latest height",
			func() {
				_, consensusState := suite.setupMockClient()
				header := mock.NewHeader(types.NewHeight(0, 2), consensusState.Timestamp)
				suite.writeClient(mockClientID, mock.NewClientState(header.Height), mock.NewConsensusState(header.Timestamp))
				suite.snapshot.SetClient(ibctesting.Pre, mockClientID, mock.NewClientState(types.ZeroHeight()), consensusState)

				clientID, txData = mockClientID, suite.updateTxData(mockClientID, header.MustMarshal())
			},
			types.ErrHeader, mock.ErrInvalidState,
		},
		{
			"mock upgrade: zero latest height",
			func() {
				_, consensusState := suite.setupMockClient()
				suite.writeClient(mockClientID, mock.NewClientState(types.NewHeight(1, 1)), mock.NewConsensusState(consensusState.Timestamp+1))
				suite.snapshot.SetClient(ibctesting.Pre, mockClientID, mock.NewClientState(types.ZeroHeight()), consensusState)

				clientID, txData = mockClientID, suite.upgradeTxData(mockClientID, []byte("proof"), []byte("proof"))
			},
			types.ErrProofVerification, mock.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			var (
				valid bool
				err   error
			)
			suite.Require().NotPanics(func() {
				valid, err = suite.keeper.ValidateClient(suite.ctx(), clientID, txData)
			})
			suite.Require().False(valid)
			suite.requireKeeperError(err, tc.expKind)
			suite.Require().ErrorIs(err, tc.expErr)
		})
	}
}
