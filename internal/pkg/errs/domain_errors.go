package errs

// Category markers. Layers attach them with Mark so the HTTP edge can pick a
// status code without knowing every concrete sentinel.
var (
	ErrValidation      = New("validation failed")
	ErrNotFound        = New("not found")
	ErrConflict        = New("conflict")
	ErrUnauthenticated = New("unauthenticated")
)
