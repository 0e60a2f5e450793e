package tendermint_test

import (
	"time"

	tmprotocrypto "github.com/tendermint/tendermint/proto/tendermint/crypto"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
	ibctesting "github.com/ibc-validity/ibc-vp/testing"
)

func (suite *TendermintTestSuite) TestGetHeight() {
	header := suite.chain.LastHeader
	suite.Require().NotEqual(uint64(0), header.GetHeight().GetRevisionHeight())
	suite.Require().Equal(uint64(1), header.GetHeight().GetRevisionNumber())
}

func (suite *TendermintTestSuite) TestGetTime() {
	header := suite.chain.LastHeader
	suite.Require().NotEqual(time.Time{}, header.GetTime())
}

func (suite *TendermintTestSuite) TestHeaderConsensusState() {
	header := suite.chain.LastHeader
	consensusState := header.ConsensusState()

	suite.Require().Equal(header.GetTime(), consensusState.Timestamp)
	suite.Require().Equal(suite.chain.AppHash, consensusState.Root)
	suite.Require().Equal(suite.chain.Vals.Hash(), []byte(consensusState.NextValidatorsHash))
}

func (suite *TendermintTestSuite) TestHeaderValidateBasic() {
	var header *ibctm.Header

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{"valid header", func() {}, true},
		{"header is nil", func() {
			header.Header = nil
		}, false},
		{"signed header is nil", func() {
			header.SignedHeader = nil
		}, false},
		{"SignedHeaderFromProto failed", func() {
			header.Commit.Height = -1
		}, false},
		{"signed header failed tendermint ValidateBasic", func() {
			header.Commit = nil
		}, false},
		{"trusted height is equal to header height", func() {
			header.TrustedHeight = header.GetHeight().(clienttypes.Height)
		}, false},
		{"validator set nil", func() {
			header.ValidatorSet = nil
		}, false},
		{"ValidatorSetFromProto failed", func() {
			header.ValidatorSet.Validators[0].PubKey = tmprotocrypto.PublicKey{}
		}, false},
		{"header validator hash does not equal hash of validator set", func() {
			otherVals, _ := suite.otherValidators()
			vals, err := otherVals.ToProto()
			suite.Require().NoError(err)
			header.ValidatorSet = vals
		}, false},
	}

	suite.Require().Equal(exported.Tendermint, suite.chain.LastHeader.ClientType())

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest()

			header = suite.chain.UpdateHeader(suite.chain.LastHeight())

			tc.malleate()

			err := header.ValidateBasic()
			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}

func (suite *TendermintTestSuite) TestHeaderClientType() {
	header := suite.chain.UpdateHeader(suite.chain.LastHeight())

	suite.Require().Equal(exported.Tendermint, header.ClientType())
	suite.Require().Equal(ibctesting.ChainID, header.Header.ChainID)
}
