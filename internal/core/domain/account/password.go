package account

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}
