package response

import (
	"time"
	"userhub/internal/core/domain/account"
)

// Account is the sanitized view rendered to clients. It deliberately has no
// field for the password hash or the reset token.
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.ID = int64(da.ID)
	a.Name = da.Name
	a.Email = string(da.Email)
	a.CreatedAt = da.CreatedAt
}
