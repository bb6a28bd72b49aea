package account

import (
	"context"
	"errors"
	"testing"
	"time"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"
	"userhub/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("test@test.test")
	PASSWORD_HASH = account.PasswordHash("test-password-hash")
	RESET_TOKEN   = account.ResetToken("test-reset-token")
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxAccountRepository
}

func (suite *testSuite) SetupSuite() {
	if db.TestPostgresqlURL() == "" {
		suite.T().Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAccountRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount(email c.Email) account.Account {
	a, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		Name:         "Jo",
		Email:        email,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return a
}

func (suite *testSuite) TestCreateSuccess() {
	a := suite.createAccount(EMAIL)

	assert := suite.Require()
	assert.NotEqual(account.ID(0), a.ID)
	assert.Equal("Jo", a.Name)
	assert.Equal(EMAIL, a.Email)
	assert.Equal(PASSWORD_HASH, a.PasswordHash)
	assert.False(a.ResetToken.IsPresent)
	assert.True(NOW.Equal(a.CreatedAt))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createAccount(EMAIL)

	_, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		Name:         "Other",
		Email:        EMAIL,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByID() {
	created := suite.createAccount(EMAIL)

	a, err := suite.repo.GetByID(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.Equal(created.Email, a.Email)

	_, err = suite.repo.GetByID(context.Background(), created.ID+100)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createAccount(EMAIL)

	a, err := suite.repo.GetByEmail(context.Background(), EMAIL)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)

	_, err = suite.repo.GetByEmail(context.Background(), c.Email("other@test.test"))
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestSetResetToken() {
	created := suite.createAccount(EMAIL)

	err := suite.repo.SetResetToken(context.Background(), created.ID, RESET_TOKEN)

	assert := suite.Require()
	assert.Nil(err)

	a, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.True(a.ResetToken.IsPresent)
	assert.Equal(RESET_TOKEN, a.ResetToken.Value)

	err = suite.repo.SetResetToken(context.Background(), created.ID+100, RESET_TOKEN)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestResetPasswordByToken() {
	created := suite.createAccount(EMAIL)
	err := suite.repo.SetResetToken(context.Background(), created.ID, RESET_TOKEN)
	suite.Require().Nil(err)

	newHash := account.PasswordHash("new-password-hash")
	a, err := suite.repo.ResetPasswordByToken(context.Background(), RESET_TOKEN, newHash)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.Equal(newHash, a.PasswordHash)
	assert.False(a.ResetToken.IsPresent)

	// The token has been cleared, a second redemption must fail.
	_, err = suite.repo.ResetPasswordByToken(context.Background(), RESET_TOKEN, newHash)
	assert.True(errors.Is(err, account.ErrInvalidResetToken))
}

func (suite *testSuite) TestResetPasswordByNeverIssuedToken() {
	suite.createAccount(EMAIL)

	_, err := suite.repo.ResetPasswordByToken(
		context.Background(),
		account.ResetToken("never-issued"),
		account.PasswordHash("new-password-hash"),
	)

	suite.Require().True(errors.Is(err, account.ErrInvalidResetToken))
}
