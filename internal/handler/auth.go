package handler

import (
	"errors"
	"net/http"

	"github.com/ployem/account-api/internal/usecase"
	"github.com/ployem/account-api/internal/validate"
)

// SignUp registers a new account. Any unmet precondition, a duplicate email
// included, collapses to 412 so callers cannot tell which check failed.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.accountUsecase.SignUp(r.Context(), usecase.SignUpParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrInvalidEmail),
			errors.Is(err, validate.ErrWeakPassword),
			errors.Is(err, validate.ErrInvalidDate),
			errors.Is(err, usecase.ErrEmailTaken):
			h.respondJSON(w, http.StatusPreconditionFailed, ErrorResponse{Error: "precondition failed"})
		default:
			h.logger.Error().Err(err).Msg("failed to sign up")
			h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		}

		return
	}

	h.respondJSON(w, http.StatusCreated, AccountResponse{
		ID:          account.ID.Hex(),
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		DateOfBirth: account.DateOfBirth,
		Email:       account.Email,
		Verified:    account.Verified,
	})
}

// SendVerify issues a fresh verification code and emails it to the account.
func (h *AuthHandler) SendVerify(w http.ResponseWriter, r *http.Request) {
	var req SendVerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	if _, err := h.verificationUsecase.SendCode(r.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			h.respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "account not found"})
			return
		}

		h.logger.Error().Err(err).Msg("failed to send verification code")
		h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		return
	}

	h.respondJSON(w, http.StatusOK, nil)
}

// ConfirmVerify checks a submitted verification code. An unknown email and a
// wrong code both answer 403.
func (h *AuthHandler) ConfirmVerify(w http.ResponseWriter, r *http.Request) {
	var req ConfirmVerifyRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.verificationUsecase.Confirm(r.Context(), req.Email, req.VerificationCode); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound), errors.Is(err, usecase.ErrCodeMismatch):
			h.respondJSON(w, http.StatusForbidden, ErrorResponse{Error: "verification rejected"})
		default:
			h.logger.Error().Err(err).Msg("failed to confirm verification")
			h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		}

		return
	}

	h.respondJSON(w, http.StatusAccepted, nil)
}

// SignIn authenticates the credentials and establishes a session.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !h.decode(w, r, &req) {
		return
	}

	tokens, err := h.authUsecase.SignIn(r.Context(), usecase.SignInParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.respondJSON(w, http.StatusForbidden, ErrorResponse{Error: "invalid credentials"})
			return
		}

		h.logger.Error().Err(err).Msg("failed to sign in")
		h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		return
	}

	h.respondJSON(w, http.StatusOK, SignInResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// SignOut revokes the account's sessions. It answers 200 even when the email
// is unknown.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req SignOutRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.authUsecase.SignOut(r.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Msg("failed to sign out")
		h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		return
	}

	h.respondJSON(w, http.StatusOK, nil)
}
