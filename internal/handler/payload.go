package handler

// SignUpRequest carries the fields required to register an account. Field
// presence is checked here; format and policy rules live in the usecase.
type SignUpRequest struct {
	FirstName   string `json:"firstName"   validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Email       string `json:"email"       validate:"required"`
	Password    string `json:"password"    validate:"required"`
}

type SendVerifyRequest struct {
	Email string `json:"email" validate:"required"`
}

type ConfirmVerifyRequest struct {
	Email            string `json:"email"            validate:"required"`
	VerificationCode string `json:"verificationCode" validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignOutRequest struct {
	Email string `json:"email" validate:"required"`
}

// AccountResponse is the public view of a newly created account.
type AccountResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Verified    bool   `json:"verified"`
}

type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ErrorResponse reports a failed request. Fields holds per-field validation
// messages when presence checks fail.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
