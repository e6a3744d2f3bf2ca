package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ployem/account-api/internal/model"
	"github.com/ployem/account-api/internal/repository"
	"github.com/ployem/account-api/internal/security"
	"github.com/ployem/account-api/internal/validate"
)

// AccountUsecase defines the business logic for account registration.
type AccountUsecase interface {
	// SignUp validates the candidate fields, then creates and persists a new
	// unverified account. Nothing is persisted when any precondition fails.
	SignUp(ctx context.Context, params SignUpParams) (*model.Account, error)
}

// SignUpParams defines the parameters for account registration.
type SignUpParams struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Password    string
}

var ErrEmailTaken = errors.New("email is already registered")

type accountUsecase struct {
	accountRepo repository.AccountRepository
}

// NewAccountUsecase creates a new instance of AccountUsecase.
func NewAccountUsecase(accountRepo repository.AccountRepository) AccountUsecase {
	return &accountUsecase{accountRepo: accountRepo}
}

func (u *accountUsecase) SignUp(ctx context.Context, params SignUpParams) (*model.Account, error) {
	if err := validate.Email(params.Email); err != nil {
		return nil, err
	}

	profile := validate.Profile{
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Email:       params.Email,
		DateOfBirth: params.DateOfBirth,
	}
	if err := validate.Password(params.Password, profile); err != nil {
		return nil, err
	}

	if err := validate.DateOfBirth(params.DateOfBirth); err != nil {
		return nil, err
	}

	if _, err := u.accountRepo.GetAccountByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	account, err := u.accountRepo.CreateAccount(ctx, &model.Account{
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		DateOfBirth:      params.DateOfBirth,
		Email:            params.Email,
		PasswordHash:     passwordHash,
		Active:           true,
		Verified:         false,
		VerificationCode: uuid.NewString(),
	})
	if err != nil {
		// Concurrent sign-ups with the same email race on the unique index.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return account, nil
}
