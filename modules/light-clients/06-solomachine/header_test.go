package solomachine_test

import (
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
	solomachine "github.com/ibc-validity/ibc-vp/modules/light-clients/06-solomachine"
)

func (suite *SoloMachineTestSuite) TestHeaderValidateBasic() {
	header := suite.solomachine.CreateHeader(suite.solomachine.Diversifier)

	cases := []struct {
		name    string
		header  *solomachine.Header
		expPass bool
	}{
		{
			"valid header",
			header,
			true,
		},
		{
			"sequence is zero",
			&solomachine.Header{
				Sequence:       0,
				Timestamp:      header.Timestamp,
				Signature:      header.Signature,
				NewPublicKey:   header.NewPublicKey,
				NewDiversifier: header.NewDiversifier,
			},
			false,
		},
		{
			"timestamp is zero",
			&solomachine.Header{
				Sequence:       header.Sequence,
				Timestamp:      0,
				Signature:      header.Signature,
				NewPublicKey:   header.NewPublicKey,
				NewDiversifier: header.NewDiversifier,
			},
			false,
		},
		{
			"signature is empty",
			&solomachine.Header{
				Sequence:       header.Sequence,
				Timestamp:      header.Timestamp,
				Signature:      []byte{},
				NewPublicKey:   header.NewPublicKey,
				NewDiversifier: header.NewDiversifier,
			},
			false,
		},
		{
			"diversifier contains only spaces",
			&solomachine.Header{
				Sequence:       header.Sequence,
				Timestamp:      header.Timestamp,
				Signature:      header.Signature,
				NewPublicKey:   header.NewPublicKey,
				NewDiversifier: " ",
			},
			false,
		},
		{
			"public key is nil",
			&solomachine.Header{
				Sequence:       header.Sequence,
				Timestamp:      header.Timestamp,
				Signature:      header.Signature,
				NewPublicKey:   nil,
				NewDiversifier: header.NewDiversifier,
			},
			false,
		},
	}

	suite.Require().Equal(exported.Solomachine, header.ClientType())
	suite.Require().Equal(uint64(1), header.GetHeight().GetRevisionHeight())

	for _, tc := range cases {
		tc := tc

		suite.Run(tc.name, func() {
			err := tc.header.ValidateBasic()

			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
