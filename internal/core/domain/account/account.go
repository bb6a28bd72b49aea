package account

import (
	"time"
	c "userhub/internal/core/domain/common"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// ResetToken authorizes exactly one password change. It is set by the
// forget-password flow and cleared when the password is reset.
type ResetToken string

// Account is the persisted user record. PasswordHash and ResetToken are
// credential material and must never appear in any response; handlers render
// accounts through the sanitized response view only.
type Account struct {
	ID           ID
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	ResetToken   c.Optional[ResetToken]
	CreatedAt    time.Time
}

// IsResetPending reports whether a password reset flow is in progress,
// i.e. a reset token has been issued and not yet consumed.
func (a *Account) IsResetPending() bool {
	return a.ResetToken.IsPresent
}
