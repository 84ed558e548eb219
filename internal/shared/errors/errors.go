package errors

import "errors"

var (
	ErrMissingNotionToken = errors.New("NOTION_TOKEN environment variable is required")
	ErrValidation         = errors.New("validation error")
	ErrAccessDenied       = errors.New("This database_id is not allowed.")
	ErrUpstream           = errors.New("upstream error")
	ErrDatabaseNotFound   = errors.New("database not found")
)

// classified tags an error with one of the sentinels above while keeping
// its own message, so callers can both match the class and show the text.
type classified struct {
	class error
	msg   string
	err   error
}

func (e *classified) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *classified) Unwrap() []error {
	if e.err != nil {
		return []error{e.class, e.err}
	}
	return []error{e.class}
}

// Validation reports malformed or missing input.
func Validation(msg string) error {
	return &classified{class: ErrValidation, msg: msg}
}

// Upstream marks err as a failure of the external source.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &classified{class: ErrUpstream, err: err}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
