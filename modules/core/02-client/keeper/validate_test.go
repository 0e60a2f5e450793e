package keeper_test

import (
	"time"

	metrics "github.com/armon/go-metrics"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/02-client/keeper"
	"github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	coremetrics "github.com/ibc-validity/ibc-vp/modules/core/metrics"
	mock "github.com/ibc-validity/ibc-vp/modules/light-clients/00-mock"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

func (suite *KeeperTestSuite) TestValidateCreatedClient() {
	var (
		clientState    *ibctm.ClientState
		consensusState *ibctm.ConsensusState
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
			"client type does not match the client state",
			func() {
				suite.snapshot.SetClientType(ibctesting.Post, tmClientID, exported.Solomachine)
			},
			false, nil,
		},
		{
			"consensus state of another client type",
			func() {
				suite.snapshot.SetConsensusState(ibctesting.Post, tmClientID, clientState.LatestHeight, mock.NewConsensusState(1))
			},
			false, nil,
		},
		{
			"client type missing",
			func() {
				suite.snapshot.Delete(ibctesting.Post, host.FullClientTypeKey(tmClientID))
			},
			false, types.ErrClient,
		},
		{
			"client type not allowed",
			func() {
				suite.snapshot.SetClientType(ibctesting.Post, tmClientID, "08-wasm")
			},
			false, types.ErrClient,
		},
		{
			"client state undecodable",
			func() {
				suite.snapshot.SetRaw(ibctesting.Post, host.FullClientStateKey(tmClientID), []byte("garbage"))
			},
			false, types.ErrClient,
		},
		{
			"consensus state missing",
			func() {
				suite.snapshot.Delete(ibctesting.Post, host.FullConsensusStateKey(tmClientID, clientState.LatestHeight))
			},
			false, types.ErrClient,
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientState = suite.chain.ClientState(ibctesting.NewTendermintConfig())
			consensusState = suite.chain.ConsensusState()
			suite.snapshot.SetClient(ibctesting.Post, tmClientID, clientState, consensusState)

			tc.malleate()

			valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, nil)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				kerr := suite.requireKeeperError(err, tc.expErr)
				suite.Require().Equal(tmClientID, kerr.ClientID)
			}
			suite.Require().Equal(tc.expValid, valid)
		})
	}
}

func (suite *KeeperTestSuite) TestValidateCreatedClientTypeNotAllowed() {
	clientState := suite.chain.ClientState(ibctesting.NewTendermintConfig())
	suite.snapshot.SetClient(ibctesting.Post, tmClientID, clientState, suite.chain.ConsensusState())
	suite.snapshot.SetClientType(ibctesting.Post, tmClientID, "08-wasm")

	// the stored type is well formed, only the route is missing
	clientType, found := suite.keeper.GetClientType(suite.ctx(), tmClientID)
	suite.Require().True(found)
	suite.Require().Equal("08-wasm", clientType)

	valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, nil)
	suite.Require().False(valid)
	suite.requireKeeperError(err, types.ErrClient)
	suite.Require().ErrorIs(err, types.ErrRouteNotFound)
}

func (suite *KeeperTestSuite) TestValidateCreatedClientConsensusHeight() {
	clientState := suite.chain.ClientState(ibctesting.NewTendermintConfig())
	suite.snapshot.SetClientType(ibctesting.Post, tmClientID, exported.Tendermint).
		SetClientState(ibctesting.Post, tmClientID, clientState).
		SetConsensusState(ibctesting.Post, tmClientID, clientState.LatestHeight.Increment(), suite.chain.ConsensusState())

	valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, nil)
	suite.Require().False(valid)

	kerr := suite.requireKeeperError(err, types.ErrClient)
	suite.Require().Equal(clientState.LatestHeight, kerr.Height)
	suite.Require().ErrorIs(err, types.ErrConsensusNotFound)
}

func (suite *KeeperTestSuite) TestValidateClientStateChange() {
	testCases := []struct {
		name     string
		malleate func()
	}{
		{
			"client does not exist",
			func() {},
		},
		{
			"client deleted",
			func() {
				suite.setupTendermintClient()
				suite.snapshot.Delete(ibctesting.Post, host.FullClientStateKey(tmClientID))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			suite.SetupTest()

			tc.malleate()

			valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, nil)
			suite.Require().False(valid)
			suite.requireKeeperError(err, types.ErrStateChange)
			suite.Require().ErrorIs(err, types.ErrInvalidStateChange)
		})
	}
}

func (suite *KeeperTestSuite) TestValidateClientSnapshotUnavailable() {
	suite.setupTendermintClient()

	for _, snapshot := range []ibctesting.ErrSnapshot{
		{Snapshot: suite.snapshot.Snapshot(), FailPre: true},
		{Snapshot: suite.snapshot.Snapshot(), FailPost: true},
	} {
		ctx := suite.ctx().WithSnapshot(snapshot)

		valid, err := suite.keeper.ValidateClient(ctx, tmClientID, nil)
		suite.Require().False(valid)
		suite.requireKeeperError(err, types.ErrStateChange)
		suite.Require().ErrorIs(err, ibctesting.ErrSnapshotRead)
	}
}

func (suite *KeeperTestSuite) TestValidateClientKey() {
	suite.snapshot.SetClient(ibctesting.Post, tmClientID, suite.chain.ClientState(ibctesting.NewTendermintConfig()), suite.chain.ConsensusState())

	testCases := []struct {
		name    string
		key     string
		expPass bool
	}{
		{"client state key", host.FullClientStatePath(tmClientID), true},
		{"client type key", host.FullClientTypePath(tmClientID), true},
		{"consensus state key", host.FullConsensusStatePath(tmClientID, types.NewHeight(1, 1)), true},
		{"counter key", host.ClientCounterPath(), false},
		{"not a client key", "ibc/connections/connection-0", false},
		{"invalid client identifier", "ibc/clients/c/clientState", false},
		{"empty key", "", false},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			valid, err := suite.keeper.ValidateClientKey(suite.ctx(), tc.key, nil)
			if tc.expPass {
				suite.Require().NoError(err)
				suite.Require().True(valid)
			} else {
				suite.Require().False(valid)
				kerr := suite.requireKeeperError(err, types.ErrInvalidKey)
				suite.Require().Empty(kerr.ClientID)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestValidateUpdatedClientDecoding() {
	suite.setupTendermintClient()

	testCases := []struct {
		name   string
		txData []byte
	}{
		{"nil tx data", nil},
		{"garbage", []byte("garbage")},
		{"update without headers", suite.updateTxData(tmClientID)},
		{"unknown field", append(suite.updateTxData(tmClientID, []byte("header")), 0x28, 0x01)},
	}

	for _, tc := range testCases {
		tc := tc
		suite.Run(tc.name, func() {
			valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, tc.txData)
			suite.Require().False(valid)
			suite.requireKeeperError(err, types.ErrDecodingTxData)
		})
	}
}

func (suite *KeeperTestSuite) TestValidateClientDeterminism() {
	clientState, _ := suite.setupTendermintClient()
	header := suite.chain.UpdateHeader(clientState.LatestHeight)

	newClientState := *clientState
	newClientState.LatestHeight = suite.chain.LastHeight()
	suite.writeClient(tmClientID, &newClientState, header.ConsensusState())

	txData := suite.updateTxData(tmClientID, header.MustMarshal())
	for i := 0; i < 3; i++ {
		valid, err := suite.keeper.ValidateClient(suite.ctx(), tmClientID, txData)
		suite.Require().NoError(err)
		suite.Require().True(valid)
	}
}

func (suite *KeeperTestSuite) TestErrorABCIInfo() {
	valid, err := suite.keeper.ValidateClientKey(suite.ctx(), "ibc/clients", nil)
	suite.Require().False(valid)

	codespace, code, _ := sdkerrors.ABCIInfo(err, false)
	suite.Require().Equal(types.Codespace, codespace)
	suite.Require().Equal(types.ErrInvalidKey.ABCICode(), code)
}

func (suite *KeeperTestSuite) TestMetrics() {
	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	cfg := metrics.DefaultConfig("")
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false
	m, err := metrics.New(cfg, sink)
	suite.Require().NoError(err)

	router := types.NewRouter().AddRoute(exported.Mock, mock.NewLightClientModule())
	k := keeper.NewKeeper(suite.cdc, router, ibctesting.DefaultParams, keeper.WithMetrics(m))

	suite.snapshot.SetClient(ibctesting.Post, mockClientID, mock.NewClientState(types.NewHeight(0, 1)), mock.NewConsensusState(1))
	valid, err := k.ValidateClient(suite.ctx(), mockClientID, nil)
	suite.Require().NoError(err)
	suite.Require().True(valid)

	intervals := sink.Data()
	suite.Require().NotEmpty(intervals)

	var found bool
	for _, counter := range intervals[0].Counters {
		if counter.Name != "ibc.client.vp."+coremetrics.MsgTypeCreate {
			continue
		}
		found = true
		suite.Require().Equal(1, counter.Count)
		suite.Require().Contains(counter.Labels, metrics.Label{Name: coremetrics.LabelClientType, Value: exported.Mock})
		suite.Require().Contains(counter.Labels, metrics.Label{Name: coremetrics.LabelOutcome, Value: coremetrics.OutcomeAccepted})
	}
	suite.Require().True(found)
}

func (suite *KeeperTestSuite) TestLogging() {
	logger := ibctesting.NewRecordingLogger()
	k := ibctesting.NewTestKeeper(suite.cdc, keeper.WithLogger(logger)).ClientKeeper

	suite.snapshot.SetClient(ibctesting.Post, mockClientID, mock.NewClientState(types.NewHeight(0, 1)), mock.NewConsensusState(1))
	valid, err := k.ValidateClient(suite.ctx(), mockClientID, nil)
	suite.Require().NoError(err)
	suite.Require().True(valid)

	suite.snapshot.SetClientType(ibctesting.Post, mockClientID, exported.Tendermint)
	valid, err = k.ValidateClient(suite.ctx(), mockClientID, nil)
	suite.Require().NoError(err)
	suite.Require().False(valid)

	suite.Require().Equal([]string{"client change accepted", "client change rejected"}, logger.Messages())
	suite.Require().Contains(logger.InfoLogs[0].Params, mockClientID)
	suite.Require().Equal([]interface{}{"module", "x/" + exported.ModuleName + "/" + types.ModuleName}, logger.WithRecord[:2])
}
