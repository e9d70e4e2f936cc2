package common

// Error codes surfaced in the GraphQL error envelope under extensions.code.
const (
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeAlreadyAuthenticated = "ALREADY_AUTHENTICATED"
	CodeInvalidQuery         = "INVALID_QUERY_ERROR"
	CodeInternal             = "INTERNAL_SERVER_ERROR"
)

// APIError is the one error shape crossing the resolver boundary. It
// implements the graphql ExtendedError contract so the code lands in the
// error extensions.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func NewAuthenticationError(message string) *APIError {
	return &APIError{Message: message, Code: CodeUnauthenticated}
}

func NewAlreadyAuthenticatedError(message string) *APIError {
	return &APIError{Message: message, Code: CodeAlreadyAuthenticated}
}

func NewInvalidQueryError(message string) *APIError {
	return &APIError{Message: message, Code: CodeInvalidQuery}
}

func NewInternalError(message string) *APIError {
	return &APIError{Message: message, Code: CodeInternal}
}
