package account

import (
	"context"
	"time"
	c "userhub/internal/core/domain/common"
)

type CreateAccountInput struct {
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

// Repository persists accounts. Email uniqueness is enforced by the store
// itself (insert-or-fail), and reset token redemption is a single conditional
// update, so concurrent registrations and resets cannot interleave.
type Repository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByID(ctx context.Context, id ID) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	// SetResetToken overwrites any previously issued token.
	SetResetToken(ctx context.Context, id ID, token ResetToken) error
	// ResetPasswordByToken sets the password hash and clears the reset token
	// for the account holding exactly the given token. Returns
	// ErrInvalidResetToken if no account holds it.
	ResetPasswordByToken(ctx context.Context, token ResetToken, hash PasswordHash) (Account, error)
}
