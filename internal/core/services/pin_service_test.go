package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/utils"
)

type PINServiceTestSuite struct {
	suite.Suite
	mockVault *MockPINVault
	service   *services.PINService
}

func (suite *PINServiceTestSuite) SetupTest() {
	suite.mockVault = new(MockPINVault)
	suite.service = services.NewPINService(suite.mockVault)
}

func (suite *PINServiceTestSuite) TestSetPIN_StoresHashNotPlaintext() {
	ctx := context.Background()

	suite.mockVault.On("SavePINHash", ctx, mock.MatchedBy(func(hash string) bool {
		return hash != "1234" && utils.CheckPIN("1234", hash)
	})).Return(nil).Once()

	suite.NoError(suite.service.SetPIN(ctx, "1234"))
	suite.mockVault.AssertExpectations(suite.T())
}

func (suite *PINServiceTestSuite) TestSetPIN_RejectsShortPIN() {
	err := suite.service.SetPIN(context.Background(), "12")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVault.AssertNotCalled(suite.T(), "SavePINHash", mock.Anything, mock.Anything)
}

func (suite *PINServiceTestSuite) TestChallenge_GrantedAndDenied() {
	ctx := context.Background()
	hash, err := utils.HashPIN("1234")
	suite.Require().NoError(err)

	suite.mockVault.On("PINHash", ctx).Return(hash, true, nil).Twice()

	suite.Equal(portssvc.AuthGranted, suite.service.Challenge(ctx, "1234"))
	suite.Equal(portssvc.AuthDenied, suite.service.Challenge(ctx, "9999"))
}

func (suite *PINServiceTestSuite) TestChallenge_NoPINConfiguredIsUnavailable() {
	ctx := context.Background()
	suite.mockVault.On("PINHash", ctx).Return("", false, nil).Once()

	suite.Equal(portssvc.AuthUnavailable, suite.service.Challenge(ctx, "1234"))
}

func (suite *PINServiceTestSuite) TestChallenge_VaultFailureIsUnavailable() {
	ctx := context.Background()
	suite.mockVault.On("PINHash", ctx).Return("", false, errors.New("disk gone")).Once()

	suite.Equal(portssvc.AuthUnavailable, suite.service.Challenge(ctx, "1234"))
}

func TestPINServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PINServiceTestSuite))
}
