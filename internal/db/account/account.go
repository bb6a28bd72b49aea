package account

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"userhub/internal/core/domain/account"
	c "userhub/internal/core/domain/common"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so the repository can
// run standalone or inside a unit of work.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxAccountRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxAccountRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAccountRepository{db: db}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, password_hash, reset_token, created_at`,
		input.Name,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = scanAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	return a, err
}

func (r *PgxAccountRepository) GetByID(ctx context.Context, id account.ID) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, reset_token, created_at
		 FROM account WHERE id = $1`,
		int64(id),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxAccountRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, email, password_hash, reset_token, created_at
		 FROM account WHERE email = $1`,
		string(email),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxAccountRepository) SetResetToken(
	ctx context.Context,
	id account.ID,
	token account.ResetToken,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account SET reset_token = $2 WHERE id = $1`,
		int64(id),
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

// ResetPasswordByToken is a compare-and-clear: the password changes and the
// token disappears in the same statement, keyed on the exact token value.
func (r *PgxAccountRepository) ResetPasswordByToken(
	ctx context.Context,
	token account.ResetToken,
	hash account.PasswordHash,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account SET password_hash = $2, reset_token = NULL
		 WHERE reset_token = $1
		 RETURNING id, name, email, password_hash, reset_token, created_at`,
		string(token),
		string(hash),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrInvalidResetToken
	}
	return a, err
}

func scanAccount(row pgx.Row) (a account.Account, err error) {
	var (
		id           int64
		name         string
		email        string
		passwordHash string
		resetToken   sql.NullString
		createdAt    time.Time
	)
	err = row.Scan(&id, &name, &email, &passwordHash, &resetToken, &createdAt)
	if err != nil {
		return a, err
	}
	return account.Account{
		ID:           account.ID(id),
		Name:         name,
		Email:        c.Email(email),
		PasswordHash: account.PasswordHash(passwordHash),
		ResetToken:   c.NewOptional(account.ResetToken(resetToken.String), resetToken.Valid),
		CreatedAt:    createdAt,
	}, nil
}
