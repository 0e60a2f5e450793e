package tendermint_test

import (
	"time"

	ics23 "github.com/confio/ics23/go"
	"github.com/tendermint/tendermint/crypto/tmhash"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

const upgradedChainID = "testchain0-2"

func (suite *TendermintTestSuite) TestUpgradeKeys() {
	height := clienttypes.NewHeight(1, 10)

	suite.Require().Equal("upgrade/upgradedIBCState/10/upgradedClient", string(ibctm.UpgradedClientKey(ibctm.DefaultUpgradePath, height)))
	suite.Require().Equal("upgrade/upgradedIBCState/10/upgradedConsState", string(ibctm.UpgradedConsStateKey(ibctm.DefaultUpgradePath, height)))
	suite.Require().Equal("upgradedIBCState/10/upgradedClient", string(ibctm.UpgradedClientKey([]string{"upgradedIBCState"}, height)))
}

func (suite *TendermintTestSuite) TestVerifyUpgradeAndUpdateState() {
	var (
		ctx               verifyContext
		clientState       *ibctm.ClientState
		upgradedClient    exported.ClientState
		upgradedConsState exported.ConsensusState
		proofClient       []byte
		proofConsState    []byte
		expTrustingPeriod time.Duration
	)

	cfg := ibctesting.NewTendermintConfig()

	// commit stores the client and consensus state values in a tree whose root
	// is the trusted consensus state root at the latest client height.
	commit := func(clientValue, consValue []byte) {
		tree := ibctesting.NewCommitmentTree(suite.T(),
			ibctm.UpgradedClientKey(cfg.UpgradePath, clientState.LatestHeight), clientValue,
			ibctm.UpgradedConsStateKey(cfg.UpgradePath, clientState.LatestHeight), consValue,
		)
		ctx.trusted[clientState.LatestHeight] = ibctm.NewConsensusState(suite.chain.LastHeader.GetTime(), tree.Root(), suite.chain.Vals.Hash())
		proofClient, proofConsState = tree.Proof(0), tree.Proof(1)
	}

	// commitUpgrade commits the zeroed upgraded client and the upgraded consensus state.
	commitUpgrade := func() {
		clientValue, err := suite.cdc.MarshalInterface(upgradedClient.(*ibctm.ClientState).ZeroCustomFields())
		suite.Require().NoError(err)
		consValue, err := suite.cdc.MarshalInterface(upgradedConsState)
		suite.Require().NoError(err)
		commit(clientValue, consValue)
	}

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: unbonding period halved",
			func() {},
			nil,
		},
		{
			"success: unbonding period unchanged",
			func() {
				upgradedClient.(*ibctm.ClientState).UnbondingPeriod = cfg.UnbondingPeriod
				expTrustingPeriod = cfg.TrustingPeriod
				commitUpgrade()
			},
			nil,
		},
		{
			"upgraded height not above latest height",
			func() {
				upgradedClient.(*ibctm.ClientState).ChainId = ibctesting.ChainID
				upgradedClient.(*ibctm.ClientState).LatestHeight = clientState.LatestHeight
				commitUpgrade()
			},
			ibctm.ErrInvalidUpgradeClient,
		},
		{
			"upgraded client fails validation",
			func() {
				upgradedClient.(*ibctm.ClientState).ChainId = ibctesting.ChainID
				commitUpgrade()
			},
			ibctm.ErrInvalidHeaderHeight,
		},
		{
			"committed client keeps custom fields",
			func() {
				upgradedClient.(*ibctm.ClientState).TrustingPeriod = cfg.TrustingPeriod
				clientValue, err := suite.cdc.MarshalInterface(upgradedClient)
				suite.Require().NoError(err)
				consValue, err := suite.cdc.MarshalInterface(upgradedConsState)
				suite.Require().NoError(err)
				commit(clientValue, consValue)
			},
			ibctm.ErrInvalidProof,
		},
		{
			"committed client is not a tendermint client",
			func() {
				clientValue, err := suite.cdc.MarshalInterface(mock.NewClientState(clienttypes.NewHeight(2, 1)))
				suite.Require().NoError(err)
				consValue, err := suite.cdc.MarshalInterface(upgradedConsState)
				suite.Require().NoError(err)
				commit(clientValue, consValue)
			},
			clienttypes.ErrInvalidClientType,
		},
		{
			"upgraded consensus state differs from the committed one",
			func() {
				upgradedConsState.(*ibctm.ConsensusState).Root = tmhash.Sum([]byte("other root"))
			},
			ibctm.ErrInvalidProof,
		},
		{
			"upgraded consensus state of another type",
			func() {
				upgradedConsState = mock.NewConsensusState(1)
			},
			clienttypes.ErrInvalidConsensus,
		},
		{
			"proofs verified against another root",
			func() {
				ctx.trusted[clientState.LatestHeight] = ibctm.NewConsensusState(
					suite.chain.LastHeader.GetTime(), tmhash.Sum([]byte("other root")), suite.chain.Vals.Hash(),
				)
			},
			ibctm.ErrInvalidProof,
		},
		{
			"proofs swapped",
			func() {
				proofClient, proofConsState = proofConsState, proofClient
			},
			ibctm.ErrInvalidUpgradeClient,
		},
		{
			"undecodable proof",
			func() {
				proofConsState = []byte("garbage")
			},
			ibctm.ErrInvalidProof,
		},
		{
			"client proof is not an existence proof",
			func() {
				proof := &ics23.CommitmentProof{
					Proof: &ics23.CommitmentProof_Nonexist{Nonexist: &ics23.NonExistenceProof{Key: []byte("key")}},
				}
				var err error
				proofClient, err = proof.Marshal()
				suite.Require().NoError(err)
			},
			ibctm.ErrInvalidProof,
		},
		{
			"trusted consensus state missing",
			func() {
				delete(ctx.trusted, clientState.LatestHeight)
			},
			ibctm.ErrConsensusStateNotFound,
		},
		{
			"no upgrade path",
			func() {
				clientState.UpgradePath = nil
			},
			ibctm.ErrInvalidUpgradeClient,
		},
		{
			"client is frozen",
			func() {
				clientState.FrozenHeight = clienttypes.NewHeight(1, 1)
			},
			ibctm.ErrClientFrozen,
		},
		{
			"prior client state with degenerate proof spec",
			func() {
				clientState.ProofSpecs = []*ics23.ProofSpec{{}}
			},
			ibctm.ErrInvalidProofSpecs,
		},
		{
			"prior client state without inner spec",
			func() {
				spec := *ibctm.GetProofSpecs()[0]
				spec.InnerSpec = nil
				clientState.ProofSpecs = []*ics23.ProofSpec{&spec}
			},
			ibctm.ErrInvalidProofSpecs,
		},
		{
			"prior client state with zero unbonding period",
			func() {
				clientState.UnbondingPeriod = 0
			},
			ibctm.ErrInvalidUnbondingPeriod,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			ctx = suite.verifyContext()
			clientState = suite.chain.ClientState(cfg)
			upgradedClient = ibctm.NewClientState(
				upgradedChainID, ibctm.Fraction{}, 0, cfg.UnbondingPeriod/2, 0,
				clienttypes.NewHeight(2, 1), ibctm.GetProofSpecs(), cfg.UpgradePath,
			)
			upgradedConsState = ibctm.NewConsensusState(
				suite.now.Add(-time.Minute), tmhash.Sum([]byte("upgraded root")), suite.chain.Vals.Hash(),
			)
			expTrustingPeriod = cfg.TrustingPeriod / 2
			commitUpgrade()

			tc.malleate()

			newClientState, newConsensusState, err := suite.module.VerifyUpgradeAndUpdateState(
				ctx, clientState, upgradedConsState, proofClient, proofConsState,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				tmUpgradedClient := upgradedClient.(*ibctm.ClientState)
				expClientState := ibctm.NewClientState(
					tmUpgradedClient.ChainId, clientState.TrustLevel, expTrustingPeriod, tmUpgradedClient.UnbondingPeriod,
					clientState.MaxClockDrift, tmUpgradedClient.LatestHeight, tmUpgradedClient.ProofSpecs, tmUpgradedClient.UpgradePath,
				)
				suite.Require().True(clienttypes.ClientStatesEqual(suite.cdc, expClientState, newClientState))
				suite.Require().True(clienttypes.ConsensusStatesEqual(suite.cdc, upgradedConsState, newConsensusState))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Nil(newClientState)
				suite.Require().Nil(newConsensusState)
			}
		})
	}
}
