package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Account field limits.
const (
	// MaxUsernameLength matches the width of the account.username column.
	MaxUsernameLength = 255

	// MinPasswordLength is the shortest plaintext password accepted.
	MinPasswordLength = 4

	// MaxPasswordBytes is bcrypt's input limit; longer inputs are rejected
	// rather than silently truncated.
	MaxPasswordBytes = 72
)

// Account validation errors. All of them wrap ErrValidation.
var (
	ErrEmptyAccountID      = fmt.Errorf("%w: account ID cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong     = fmt.Errorf("%w: username must be at most %d characters long", ErrValidation, MaxUsernameLength)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most %d bytes long", ErrValidation, MaxPasswordBytes)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Account represents a registered user of the service.
type Account struct {
	ID             int    `json:"account_id"`
	Username       string `json:"username"`
	Password       string `json:"-"` // Plaintext password, used only during registration/updates
	HashedPassword string `json:"-"` // Never expose password hash in JSON
}

// NewAccount creates a new, not yet persisted Account with the given
// credentials. The ID is assigned by the store on insert.
//
// The caller is responsible for hashing the password before storing the account.
func NewAccount(username, password string) (*Account, error) {
	account := &Account{
		Username: username,
		Password: password,
	}

	if err := account.ValidateCredentials(); err != nil {
		return nil, err
	}

	return account, nil
}

// ValidateCredentials checks the username and the plaintext password.
func (a *Account) ValidateCredentials() error {
	if err := ValidateUsername(a.Username); err != nil {
		return err
	}
	return ValidatePassword(a.Password)
}

// Validate checks that a persisted account is complete: it has an ID,
// a valid username and a password hash.
func (a *Account) Validate() error {
	if a.ID == 0 {
		return ErrEmptyAccountID
	}
	if err := ValidateUsername(a.Username); err != nil {
		return err
	}
	if a.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// ValidateUsername rejects blank and over-long usernames.
// Usernames are case-sensitive and stored exactly as given.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

// ValidatePassword checks a plaintext password against the length rules.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
