// Package handler maps the account HTTP operations onto the usecases.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog"

	"github.com/ployem/account-api/internal/usecase"
)

// AuthHandler serves the account sign-up, verification and session routes.
type AuthHandler struct {
	accountUsecase      usecase.AccountUsecase
	verificationUsecase usecase.VerificationUsecase
	authUsecase         usecase.AuthUsecase
	payloads            *payloadValidator
	logger              *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(
	accountUsecase usecase.AccountUsecase,
	verificationUsecase usecase.VerificationUsecase,
	authUsecase usecase.AuthUsecase,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accountUsecase:      accountUsecase,
		verificationUsecase: verificationUsecase,
		authUsecase:         authUsecase,
		payloads:            newPayloadValidator(),
		logger:              logger,
	}
}

// RegisterRoutes mounts the account routes on the router. All mutating
// operations are POST.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/send-verify", h.SendVerify)
		r.Post("/confirm-verify", h.ConfirmVerify)
		r.Post("/signin", h.SignIn)
		r.Post("/signout", h.SignOut)
	})
}

// decode parses the JSON body into payload and runs the presence checks.
// A false return means the response has already been written.
func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return false
	}

	if fields := h.payloads.check(payload); len(fields) > 0 {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "missing required fields",
			Fields: fields,
		})
		return false
	}

	return true
}

func (h *AuthHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

// payloadValidator checks request payload tags and translates field errors
// into readable messages.
type payloadValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func newPayloadValidator() *payloadValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, trans)

	return &payloadValidator{
		validate: v,
		trans:    trans,
	}
}

func (pv *payloadValidator) check(payload any) []string {
	err := pv.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Translate(pv.trans))
	}

	return messages
}
