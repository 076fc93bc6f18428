package service

import (
	"context"
	"errors"
	"strings"

	dom "MedDesk/internal/domain"
	"MedDesk/internal/password"
	"MedDesk/internal/repo"
	"MedDesk/internal/utils"
	"MedDesk/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Registration failure messages, field-scoped.
const (
	msgPasswordMismatch = "Password fields didn't match."
	msgUsernameExists   = "Username already exists."
	msgEmailExists      = "Email already exists."
)

// RegisterInput is the candidate account for Register.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Password2 string
}

// AccountService handles registration and credential checks.
type AccountService struct {
	repo   repo.AccountRepo
	policy password.Policy
}

// NewAccountService returns a new AccountService.
func NewAccountService(r repo.AccountRepo, p password.Policy) *AccountService {
	return &AccountService{repo: r, policy: p}
}

// Register applies the registration rule set. All independent checks are
// collected into one FieldErrors value so the caller sees every conflict
// at once. Nothing is written unless every check passes; uniqueness is
// additionally re-verified by the store's constraints at insert time,
// since another request may register the same name concurrently.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (dom.Account, validation.FieldErrors, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	fe := validation.FieldErrors{}
	if in.Password != in.Password2 {
		fe.Add("password", msgPasswordMismatch)
	} else {
		for _, reason := range s.policy.Validate(in.Password, in.Username, in.Email) {
			fe.Add("password", reason)
		}
	}

	taken, err := s.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return dom.Account{}, nil, err
	}
	if taken {
		fe.Add("username", msgUsernameExists)
	}
	taken, err = s.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return dom.Account{}, nil, err
	}
	if taken {
		fe.Add("email", msgEmailExists)
	}
	if !fe.Empty() {
		return dom.Account{}, fe, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dom.Account{}, nil, err
	}
	a, err := s.repo.Create(ctx, dom.Account{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			// The row appeared between the existence checks and the insert.
			if strings.Contains(utils.PGConstraintName(err), "email") {
				fe.Add("email", msgEmailExists)
			} else {
				fe.Add("username", msgUsernameExists)
			}
			return dom.Account{}, fe, nil
		}
		return dom.Account{}, nil, err
	}
	return a, nil, nil
}

// ValidateCredentials checks username and password; returns the account
// if valid.
func (s *AccountService) ValidateCredentials(ctx context.Context, username, pw string) (dom.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || pw == "" {
		return dom.Account{}, ErrInvalidCredentials
	}
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Account{}, ErrInvalidCredentials
		}
		return dom.Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(pw)); err != nil {
		return dom.Account{}, ErrInvalidCredentials
	}
	return a, nil
}
