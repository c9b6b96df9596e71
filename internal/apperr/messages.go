package apperr

// Public messages. Auth failures always collapse to one of the two auth
// errors regardless of the underlying reason.
var (
	ErrInvalidCredentials = Auth("Invalid username or password")
	ErrInvalidToken       = Auth("Invalid token")

	ErrRegistrationFailed = Validation("registration failed")
	ErrInvalidGender      = Validation("gender must be MALE or FEMALE")
	ErrMissingCredentials = Validation("username and password are required")
	ErrPasswordTooLong    = Validation("password is too long")

	// Kind-only targets for errors.Is.
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrDecryption = &Error{Kind: KindDecryption}
	ErrStorage    = &Error{Kind: KindStorage}
	ErrConfig     = &Error{Kind: KindConfig}
)

func ErrRegistrationStorage(cause error) error {
	return Wrap(KindStorage, "registration failed", cause)
}

func ErrProfileStorage(cause error) error {
	return Wrap(KindStorage, "Something went wrong", cause)
}
