package webhook

import (
	"errors"
	"fmt"
	"net/http"
)

// errDuplicateMessage short-circuits processing of a replayed message id.
// It maps to 204 with no side effects and is not worth a warning.
var errDuplicateMessage = errors.New("duplicate message id")

// httpError is a webhook-boundary error with a response status. 403 and
// 500 answers carry an empty body so verification failures and internals
// leak nothing to the caller.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func errVerification(format string, args ...any) error {
	return &httpError{status: http.StatusForbidden, msg: fmt.Sprintf(format, args...)}
}

func errBadRequest(format string, args ...any) error {
	return &httpError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

func errInternal(format string, args ...any) error {
	return &httpError{status: http.StatusInternalServerError, msg: fmt.Sprintf(format, args...)}
}

// statusOf maps any handler error to a response status; unclassified
// errors (store failures and the like) are internal.
func statusOf(err error) int {
	var he *httpError
	if errors.As(err, &he) {
		return he.status
	}
	return http.StatusInternalServerError
}
