package keeper_test

import (
	"time"

	"github.com/tendermint/tendermint/crypto/tmhash"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

const upgradedChainID = "testchain0-2"

func (suite *KeeperTestSuite) TestUpgradeTendermintClient() {
	var (
		newClientState    *ibctm.ClientState
		newConsensusState *ibctm.ConsensusState
		proofClient       []byte
		proofConsState    []byte
		clientID          string
	)

	testCases := []struct {
		name     string
		malleate func()
		expValid bool
		expErr   error
	}{
		{
			"success",
			func() {},
			true, nil,
		},
		{
			"posterior client state differs",
			func() {
				newClientState.TrustingPeriod--
			},
			false, nil,
		},
		{
			"posterior consensus state differs",
			func() {
				newConsensusState.Root = tmhash.Sum([]byte("other root"))
			},
			false, types.ErrProofVerification,
		},
		{
			"tampered client proof",
			func() {
				proofClient[len(proofClient)-1] ^= 0x01
			},
			false, types.ErrProofVerification,
		},
		{
			"proofs swapped",
			func() {
				proofClient, proofConsState = proofConsState, proofClient
			},
			false, types.ErrProofVerification,
		},
		{
			"empty proof",
			func() {
				proofConsState = []byte{}
			},
			false, types.ErrIBCData,
		},
		{
			"client id mismatch with valid proofs",
			func() {
				clientID = "07-tendermint-1"
			},
			false, types.ErrClient,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			newClientState, newConsensusState, proofClient, proofConsState = suite.setupUpgrade()
			clientID = tmClientID

			tc.malleate()

			suite.writeClient(tmClientID, newClientState, newConsensusState)

			valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, suite.upgradeTxData(clientID, proofClient, proofConsState))
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.requireKeeperError(err, tc.expErr)
			}
			suite.Require().Equal(tc.expValid, valid)
		})
	}
}

// setupUpgrade stores a tendermint client whose latest consensus state root
// commits to an upgrade of the chain to a new revision, and returns the states
// the client upgrades to with the proofs of the upgrade.
func (suite *KeeperTestSuite) setupUpgrade() (*ibctm.ClientState, *ibctm.ConsensusState, []byte, []byte) {
	cfg := ibctesting.NewTendermintConfig()
	clientState := suite.chain.ClientState(cfg)
	lastHeight := clientState.LatestHeight

	// the upgraded chain halves the unbonding period
	upgradedClient := ibctm.NewClientState(
		upgradedChainID, ibctm.Fraction{}, 0, cfg.UnbondingPeriod/2, 0,
		types.NewHeight(2, 1), ibctm.GetProofSpecs(), cfg.UpgradePath,
	)
	upgradedConsState := ibctm.NewConsensusState(
		suite.now.Add(-time.Minute), tmhash.Sum([]byte("upgraded root")), suite.chain.Vals.Hash(),
	)

	clientValue, err := suite.cdc.MarshalInterface(upgradedClient.ZeroCustomFields())
	suite.Require().NoError(err)
	consValue, err := suite.cdc.MarshalInterface(upgradedConsState)
	suite.Require().NoError(err)

	tree := ibctesting.NewCommitmentTree(suite.T(),
		ibctm.UpgradedClientKey(cfg.UpgradePath, lastHeight), clientValue,
		ibctm.UpgradedConsStateKey(cfg.UpgradePath, lastHeight), consValue,
	)

	consensusState := ibctm.NewConsensusState(suite.chain.LastHeader.GetTime(), tree.Root(), suite.chain.Vals.Hash())
	suite.snapshot.SetClient(ibctesting.Pre, tmClientID, clientState, consensusState).CopyPreToPost()

	newClientState := ibctm.NewClientState(
		upgradedChainID, cfg.TrustLevel, cfg.TrustingPeriod/2, upgradedClient.UnbondingPeriod, cfg.MaxClockDrift,
		upgradedClient.LatestHeight, upgradedClient.ProofSpecs, upgradedClient.UpgradePath,
	)
	return newClientState, upgradedConsState, tree.Proof(0), tree.Proof(1)
}

func (suite *KeeperTestSuite) TestUpgradeMockClient() {
	clientState, consensusState := suite.setupMockClient()

	upgradedClient := mock.NewClientState(types.NewHeight(1, 1))
	upgradedConsState := mock.NewConsensusState(consensusState.Timestamp + 1)

	clientValue, err := upgradedClient.Marshal()
	suite.Require().NoError(err)
	consValue, err := upgradedConsState.Marshal()
	suite.Require().NoError(err)

	proofClient := mock.NewUpgradeProof(mock.UpgradedClientKey(clientState.LatestHeight), consensusState.Timestamp, clientValue)
	proofConsState := mock.NewUpgradeProof(mock.UpgradedConsStateKey(clientState.LatestHeight), consensusState.Timestamp, consValue)

	suite.writeClient(mockClientID, upgradedClient, upgradedConsState)

	valid, err := suite.keeper.ValidateClient(suite.ctx(), mockClientID, suite.upgradeTxData(mockClientID, proofClient, proofConsState))
	suite.Require().NoError(err)
	suite.Require().True(valid)

	// a proof bound to another trusted consensus state is rejected
	proofClient = mock.NewUpgradeProof(mock.UpgradedClientKey(clientState.LatestHeight), consensusState.Timestamp+1, clientValue)
	valid, err = suite.keeper.ValidateClient(suite.ctx(), mockClientID, suite.upgradeTxData(mockClientID, proofClient, proofConsState))
	suite.Require().False(valid)
	suite.requireKeeperError(err, types.ErrProofVerification)
	suite.Require().ErrorIs(err, mock.ErrInvalidProof)
}

func (suite *KeeperTestSuite) TestUpgradeSolomachineClient() {
	clientState := suite.solomachine.ClientState()
	suite.snapshot.SetClient(ibctesting.Pre, smClientID, clientState, clientState.ConsensusState).CopyPreToPost()

	valid, err := suite.keeper.ValidateClient(suite.ctx(), smClientID, suite.upgradeTxData(smClientID, []byte("proof"), []byte("proof")))
	suite.Require().False(valid)
	suite.requireKeeperError(err, types.ErrProofVerification)
}
