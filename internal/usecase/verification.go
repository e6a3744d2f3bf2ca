package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ployem/account-api/internal/repository"
)

// VerificationUsecase defines the business logic for email verification.
type VerificationUsecase interface {
	// SendCode rotates the account's pending verification code and emails the
	// fresh one. Delivery failures are logged, never surfaced: the rotation
	// sticks regardless.
	SendCode(ctx context.Context, email string) (string, error)

	// Confirm compares the submitted code against the account's pending one.
	// A match marks the account verified and retires the code; a mismatch
	// leaves the account untouched.
	Confirm(ctx context.Context, email, code string) error
}

// VerificationMailer delivers verification codes to an email address.
type VerificationMailer interface {
	SendVerificationCode(to, code string) error
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrCodeMismatch    = errors.New("verification code mismatch")
)

type verificationUsecase struct {
	accountRepo repository.AccountRepository
	mailer      VerificationMailer
	logger      *zerolog.Logger
}

// NewVerificationUsecase creates a new instance of VerificationUsecase.
func NewVerificationUsecase(
	accountRepo repository.AccountRepository,
	mailer VerificationMailer,
	logger *zerolog.Logger,
) VerificationUsecase {
	return &verificationUsecase{
		accountRepo: accountRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (u *verificationUsecase) SendCode(ctx context.Context, email string) (string, error) {
	account, err := u.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrAccountNotFound
		}

		return "", err
	}

	code := uuid.NewString()
	account, err = u.accountRepo.RotateVerificationCode(ctx, account.ID.Hex(), code)
	if err != nil {
		return "", err
	}

	if err := u.mailer.SendVerificationCode(account.Email, code); err != nil {
		u.logger.Error().Err(err).Str("email", account.Email).Msg("failed to deliver verification email")
	}

	return code, nil
}

func (u *verificationUsecase) Confirm(ctx context.Context, email, code string) error {
	account, err := u.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}

		return err
	}

	// Full-token comparison. The short P- form in the email body is display
	// only and is never accepted here.
	if code == "" || code != account.VerificationCode {
		return ErrCodeMismatch
	}

	if _, err := u.accountRepo.MarkVerified(ctx, account.ID.Hex(), uuid.NewString()); err != nil {
		return err
	}

	return nil
}
