package keeper_test

import (
	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

func (suite *KeeperTestSuite) TestGetClientCounter() {
	testCases := []struct {
		name       string
		malleate   func()
		expCounter types.ClientCounter
	}{
		{
			"counter available",
			func() {
				suite.snapshot.SetClientCounter(ibctesting.Post, 3)
			},
			types.NewClientCounter(3),
		},
		{
			"counter missing",
			func() {
				// only the prior counter exists
				suite.snapshot.SetClientCounter(ibctesting.Pre, 3)
			},
			types.UnavailableClientCounter(),
		},
		{
			"counter malformed",
			func() {
				suite.snapshot.SetRaw(ibctesting.Post, host.ClientCounterKey(), []byte{1, 2, 3})
			},
			types.UnavailableClientCounter(),
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			counter := suite.keeper.GetClientCounter(suite.ctx())
			suite.Require().Equal(tc.expCounter, counter)
		})
	}
}

func (suite *KeeperTestSuite) TestGetClientCounterReadFailure() {
	suite.snapshot.SetClientCounter(ibctesting.Post, 3)
	ctx := suite.ctx().WithSnapshot(ibctesting.ErrSnapshot{Snapshot: suite.snapshot.Snapshot(), FailPost: true})

	counter := suite.keeper.GetClientCounter(ctx)
	suite.Require().Equal(uint64(0), counter.Value)
	suite.Require().False(counter.IsAvailable())
}

func (suite *KeeperTestSuite) TestPosteriorGettersTolerateFailures() {
	clientState, _ := suite.setupTendermintClient()
	ctx := suite.ctx().WithSnapshot(ibctesting.ErrSnapshot{Snapshot: suite.snapshot.Snapshot(), FailPost: true})

	_, found := suite.keeper.GetClientType(ctx, tmClientID)
	suite.Require().False(found)
	_, found = suite.keeper.GetClientState(ctx, tmClientID)
	suite.Require().False(found)
	_, found = suite.keeper.GetClientConsensusState(ctx, tmClientID, clientState.LatestHeight)
	suite.Require().False(found)

	clientType, found := suite.keeper.GetClientType(suite.ctx(), tmClientID)
	suite.Require().True(found)
	suite.Require().Equal(clientState.ClientType(), clientType)

	cs, found := suite.keeper.GetClientState(suite.ctx(), tmClientID)
	suite.Require().True(found)
	suite.Require().True(types.ClientStatesEqual(suite.cdc, clientState, cs))
}

func (suite *KeeperTestSuite) TestGetPriorClientState() {
	clientState, consensusState := suite.setupTendermintClient()

	cs, err := suite.keeper.GetPriorClientState(suite.ctx(), tmClientID)
	suite.Require().NoError(err)
	suite.Require().True(types.ClientStatesEqual(suite.cdc, clientState, cs))

	consState, err := suite.keeper.GetPriorConsensusState(suite.ctx(), tmClientID, clientState.LatestHeight)
	suite.Require().NoError(err)
	suite.Require().True(types.ConsensusStatesEqual(suite.cdc, consensusState, consState))

	// the prior getters never read the posterior snapshot
	suite.snapshot.Delete(ibctesting.Pre, host.FullClientStateKey(tmClientID))
	_, err = suite.keeper.GetPriorClientState(suite.ctx(), tmClientID)
	suite.requireKeeperError(err, types.ErrClient)
	suite.Require().ErrorIs(err, types.ErrClientNotFound)

	_, err = suite.keeper.GetPriorConsensusState(suite.ctx(), tmClientID, clientState.LatestHeight.Increment())
	kerr := suite.requireKeeperError(err, types.ErrClient)
	suite.Require().Equal(clientState.LatestHeight.Increment(), kerr.Height)
	suite.Require().ErrorIs(err, types.ErrConsensusNotFound)
}

func (suite *KeeperTestSuite) TestGetPriorClientCounter() {
	_, err := suite.keeper.GetPriorClientCounter(suite.ctx())
	suite.requireKeeperError(err, types.ErrClient)
	suite.Require().ErrorIs(err, types.ErrCounterNotFound)

	suite.snapshot.SetClientCounter(ibctesting.Pre, 2).SetClientCounter(ibctesting.Post, 3)
	counter, err := suite.keeper.GetPriorClientCounter(suite.ctx())
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), counter)

	suite.snapshot.SetRaw(ibctesting.Pre, host.ClientCounterKey(), []byte("bad"))
	_, err = suite.keeper.GetPriorClientCounter(suite.ctx())
	suite.requireKeeperError(err, types.ErrClient)
	suite.Require().ErrorIs(err, types.ErrInvalidCounter)
}
