package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.user_not_found")
	ErrProfessionalNotFound = errors.New("error.professional_not_found")
	ErrPostNotFound         = errors.New("error.post_not_found")

	ErrEmailAlreadyExists        = errors.New("error.email_already_exists")
	ErrUsernameAlreadyExists     = errors.New("error.username_already_exists")
	ErrCPFAlreadyExists          = errors.New("error.cpf_already_exists")
	ErrPhoneAlreadyExists        = errors.New("error.phone_already_exists")
	ErrRegistrationAlreadyExists = errors.New("error.registration_already_exists")
	ErrDuplicateRecord           = errors.New("error.duplicate_record")

	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrWrongPassword      = errors.New("error.wrong_current_password")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
	ErrProfessionalOnly   = errors.New("error.professional_only")
	ErrInternal           = errors.New("error.internal")
	ErrMissingFields      = errors.New("error.missing_fields")
	ErrMissingCredentials = errors.New("error.missing_credentials")
	ErrMissingPasswords   = errors.New("error.missing_passwords")
	ErrMissingPostFields  = errors.New("error.missing_post_fields")
	ErrMissingProfilePic  = errors.New("error.missing_profile_pic")
	ErrInvalidImageURLs   = errors.New("error.invalid_image_urls")
	ErrInvalidRequestBody = errors.New("error.invalid_request_body")
	ErrDatastoreNotReady  = errors.New("error.datastore_unavailable")
	ErrTooManyRequests    = errors.New("error.too_many_requests")
	ErrRouteNotFound      = errors.New("error.route_not_found")
	ErrNothingToUpdate    = errors.New("error.nothing_to_update")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
var (
	ErrInvalidEmail     = errors.New("error.invalid_email")
	ErrInvalidCPF       = errors.New("error.invalid_cpf")
	ErrInvalidUsername  = errors.New("error.invalid_username")
	ErrInvalidPhone     = errors.New("error.invalid_phone")
	ErrWeakPassword     = errors.New("error.weak_password")
	ErrInvalidBirthDate = errors.New("error.invalid_birth_date")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeUnavailable  = "/problems/service-unavailable"
	ProblemTypeRateLimited  = "/problems/too-many-requests"
)

// Kind classifica o erro de domínio; cada Kind corresponde a um status HTTP
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindUnavailable
	KindRateLimited
)

// DomainError representa um erro de domínio com contexto adicional.
// Message é o message ID traduzido na borda HTTP.
type DomainError struct {
	Kind    Kind
	Type    string
	Title   string
	Message string
	Fields  []string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, problemType, title string, cause error) *DomainError {
	return &DomainError{
		Kind:    kind,
		Type:    problemType,
		Title:   title,
		Message: cause.Error(),
		Err:     cause,
	}
}

// Validation cria um erro de entrada inválida (400)
func Validation(cause error, fields ...string) *DomainError {
	e := newError(KindValidation, ProblemTypeValidation, "error.validation.title", cause)
	e.Fields = fields
	return e
}

// Conflict cria um erro de unicidade (409)
func Conflict(cause error, fields ...string) *DomainError {
	e := newError(KindConflict, ProblemTypeConflict, "error.conflict.title", cause)
	e.Fields = fields
	return e
}

// Unauthenticated cria um erro de autenticação (401)
func Unauthenticated(cause error) *DomainError {
	return newError(KindAuthentication, ProblemTypeUnauthorized, "error.unauthorized.title", cause)
}

// Forbidden cria um erro de autorização (403)
func Forbidden(cause error) *DomainError {
	return newError(KindAuthorization, ProblemTypeForbidden, "error.forbidden.title", cause)
}

// NotFound cria um erro de recurso inexistente (404)
func NotFound(cause error) *DomainError {
	return newError(KindNotFound, ProblemTypeNotFound, "error.not_found.title", cause)
}

// Unavailable indica que uma dependência (banco) ainda não está pronta (503)
func Unavailable(cause error) *DomainError {
	return newError(KindUnavailable, ProblemTypeUnavailable, "error.unavailable.title", cause)
}

// RateLimited indica excesso de requisições (429)
func RateLimited() *DomainError {
	return newError(KindRateLimited, ProblemTypeRateLimited, "error.rate_limited.title", ErrTooManyRequests)
}

// Internal embrulha uma falha inesperada (500). A causa nunca é exposta ao cliente.
func Internal(cause error) *DomainError {
	e := newError(KindInternal, ProblemTypeInternal, "error.internal.title", ErrInternal)
	e.Err = cause
	return e
}

// KindOf retorna o Kind do erro; erros desconhecidos são KindInternal
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// As é um atalho para errors.As com *DomainError
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
