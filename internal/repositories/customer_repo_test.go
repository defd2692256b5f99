package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"martstore/internal/common"
	"martstore/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerRepoTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo CustomerRepository
	ctx  context.Context
}

func (suite *CustomerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewCustomerRepo(mock)
	suite.ctx = context.Background()
}

func (suite *CustomerRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestCustomerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepoTestSuite))
}

func (suite *CustomerRepoTestSuite) customer() *models.Customer {
	now := time.Now()
	return &models.Customer{
		ID:        uuid.New(),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (suite *CustomerRepoTestSuite) TestCreate_Success() {
	customer := suite.customer()

	suite.mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO customers (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`)).WithArgs(customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, customer)
	assert.NoError(suite.T(), err)
}

func (suite *CustomerRepoTestSuite) TestCreate_UniqueViolationMapsToDuplicateEmail() {
	customer := suite.customer()

	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO customers`)).
		WithArgs(customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"})

	err := suite.repo.Create(suite.ctx, customer)
	assert.ErrorIs(suite.T(), err, common.ErrDuplicateEmail)
}

func (suite *CustomerRepoTestSuite) TestCreate_OtherErrorsPassThrough() {
	customer := suite.customer()
	dbErr := errors.New("connection reset")

	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO customers`)).
		WithArgs(customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt).
		WillReturnError(dbErr)

	err := suite.repo.Create(suite.ctx, customer)
	assert.ErrorIs(suite.T(), err, dbErr)
}

func (suite *CustomerRepoTestSuite) TestGetByEmail_Found() {
	customer := suite.customer()

	rows := pgxmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
		AddRow(customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt)
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, created_at, updated_at`)).
		WithArgs(customer.Email).
		WillReturnRows(rows)

	got, err := suite.repo.GetByEmail(suite.ctx, customer.Email)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), customer.ID, got.ID)
	assert.Equal(suite.T(), customer.Email, got.Email)
}

func (suite *CustomerRepoTestSuite) TestGetByEmail_AbsentReturnsNil() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, created_at, updated_at`)).
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}))

	got, err := suite.repo.GetByEmail(suite.ctx, "nobody@example.com")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *CustomerRepoTestSuite) TestGetByID_AbsentReturnsNil() {
	id := uuid.New()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, created_at, updated_at`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}))

	got, err := suite.repo.GetByID(suite.ctx, id)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}
