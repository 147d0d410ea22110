package spotify

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/zmb3/spotify/v2"

	"github.com/ytget/spotmobile/internal/model"
)

// httpStatusPattern matches errors the SDK builds for empty error bodies
var httpStatusPattern = regexp.MustCompile(`HTTP (\d{3})`)

// classify wraps err into the model error taxonomy. Cancellation is passed
// through so callers can tell it apart from failures.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return errors.Wrap(err, op)
	}

	var apiErr spotify.Error
	if errors.As(err, &apiErr) {
		return statusError(op, apiErr.Status, apiErr.Message)
	}
	var apiErrPtr *spotify.Error
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return statusError(op, apiErrPtr.Status, apiErrPtr.Message)
	}

	if m := httpStatusPattern.FindStringSubmatch(err.Error()); m != nil {
		if status, convErr := strconv.Atoi(m[1]); convErr == nil {
			return statusError(op, status, err.Error())
		}
	}

	// Network failures and timeouts
	return errors.Wrapf(model.ErrTransient, "%s: %v", op, err)
}

// statusError maps an HTTP status to a taxonomy error
func statusError(op string, status int, message string) error {
	kind := kindForStatus(status)
	if message == "" {
		message = http.StatusText(status)
	}
	return errors.Wrapf(kind, "%s: status %d: %s", op, status, message)
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return model.ErrUnauthorized
	case status == http.StatusNotFound, status == http.StatusBadRequest:
		return model.ErrNotFound
	default:
		return model.ErrTransient
	}
}
