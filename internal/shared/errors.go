package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// secret file content errors
const (
	ErrSecretLength   = Error("link secret must be 64 hex characters")
	ErrSecretEncoding = Error("link secret must be lowercase hex")
)
