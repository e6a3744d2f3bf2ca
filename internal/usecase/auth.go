package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ployem/account-api/internal/config"
	"github.com/ployem/account-api/internal/model"
	"github.com/ployem/account-api/internal/repository"
	"github.com/ployem/account-api/internal/security"
	"github.com/ployem/account-api/internal/token"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	// SignIn checks the credentials and verification status and establishes a
	// session. Unknown email, wrong password and an unverified account are
	// deliberately indistinguishable to the caller.
	SignIn(ctx context.Context, params SignInParams) (*Tokens, error)

	// SignOut revokes every session held by the account. It succeeds even
	// when the email is unknown or no session exists.
	SignOut(ctx context.Context, email string) error
}

// SignInParams defines the parameters for signing in.
type SignInParams struct {
	Email    string
	Password string
}

// Tokens carries the session tokens the client stores and presents.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type authUsecase struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	tokenAuth   token.Authenticator
	tokenCfg    config.TokenConfig
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	tokenAuth token.Authenticator,
	tokenCfg config.TokenConfig,
) AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		tokenAuth:   tokenAuth,
		tokenCfg:    tokenCfg,
	}
}

func (u *authUsecase) SignIn(ctx context.Context, params SignInParams) (*Tokens, error) {
	account, err := u.accountRepo.GetAccountByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(params.Password, account.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	if !account.Verified {
		return nil, ErrInvalidCredentials
	}

	return u.createSession(ctx, account.ID.Hex())
}

func (u *authUsecase) SignOut(ctx context.Context, email string) error {
	account, err := u.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}

		return err
	}

	if _, err := u.sessionRepo.DeleteSessionsByAccountID(ctx, account.ID.Hex()); err != nil {
		return err
	}

	return nil
}

func (u *authUsecase) createSession(ctx context.Context, accountID string) (*Tokens, error) {
	session, err := u.sessionRepo.CreateSession(ctx, &model.Session{AccountID: accountID})
	if err != nil {
		return nil, err
	}

	accessToken, err := u.generateToken(
		accountID,
		session.ID.Hex(),
		u.tokenCfg.AccessTokenSecret,
		u.tokenCfg.AccessTokenExpiresIn,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateToken(
		accountID,
		session.ID.Hex(),
		u.tokenCfg.RefreshTokenSecret,
		u.tokenCfg.RefreshTokenExpiresIn,
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if _, err := u.sessionRepo.UpdateTokens(ctx, session.ID.Hex(), repository.UpdateTokensParams{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  now.Add(u.tokenCfg.AccessTokenExpiresIn),
		RefreshTokenExpiresAt: now.Add(u.tokenCfg.RefreshTokenExpiresIn),
	}); err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) generateToken(accountID, sessionID, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := token.Claims{
		AccountID: accountID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    u.tokenCfg.Issuer,
			Audience:  jwt.ClaimStrings{u.tokenCfg.Issuer},
		},
	}

	return u.tokenAuth.Generate(claims, secret)
}
