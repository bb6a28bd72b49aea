package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	c "userhub/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Accounts {
		if a.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
		maxID = a.ID
	}
	a = Account{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %v", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account by email %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) SetResetToken(ctx context.Context, id ID, token ResetToken) error {
	if r.ReturnError {
		return fmt.Errorf("could not set reset token for account %v", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts[ix].ResetToken = c.NewOptional(token, true)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) ResetPasswordByToken(
	ctx context.Context,
	token ResetToken,
	hash PasswordHash,
) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not reset password by token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ResetToken.IsPresent && a.ResetToken.Value == token {
			r.Accounts[ix].PasswordHash = hash
			r.Accounts[ix].ResetToken = c.NewOptional(ResetToken(""), false)
			return r.Accounts[ix], nil
		}
	}
	return a, ErrInvalidResetToken
}
