package forgetpassword

import (
	"context"
	"errors"
	"testing"
	"time"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL       = c.Email("test@test.test")
	RESET_TOKEN = "test-reset-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger              *logging.FakeLogger
	AccountRepository   *account.FakeRepository
	ResetTokenGenerator *account.FakeResetTokenGenerator
	Service             services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.AccountRepository = account.NewFakeRepository()
	suite.ResetTokenGenerator = account.NewFakeResetTokenGenerator(RESET_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.AccountRepository,
		suite.ResetTokenGenerator,
	)
}

func TestForgetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount() account.Account {
	a, err := suite.AccountRepository.Create(context.Background(), account.CreateAccountInput{
		Name:         "Jo",
		Email:        EMAIL,
		PasswordHash: account.PasswordHash("test"),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return a
}

func (suite *testSuite) TestSuccess() {
	created := suite.createAccount()

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(account.ResetToken(RESET_TOKEN), result.Token)

	stored, err := suite.AccountRepository.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.True(stored.ResetToken.IsPresent)
	assert.Equal(account.ResetToken(RESET_TOKEN), stored.ResetToken.Value)
}

func (suite *testSuite) TestAccountDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
	assert.Len(suite.AccountRepository.Accounts, 0)
}

func (suite *testSuite) TestRepeatedCallOverwritesToken() {
	created := suite.createAccount()

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})
	suite.Require().Nil(err)

	suite.ResetTokenGenerator.Token = account.ResetToken("new-token")
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(account.ResetToken("new-token"), result.Token)

	stored, err := suite.AccountRepository.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(account.ResetToken("new-token"), stored.ResetToken.Value)
}
