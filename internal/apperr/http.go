package apperr

import (
	"errors"
	"net/http"

	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ToResponse maps err to a status code and the JSON body sent to the caller.
func ToResponse(err error) (int, ErrorResponse) {
	kind := KindOf(err)
	resp := ErrorResponse{
		Error: "internal server error",
		Code:  kind.String(),
	}

	var appErr *Error
	if kind != KindInternal && errors.As(err, &appErr) && appErr.Message != "" {
		resp.Error = appErr.Message
	}

	return kind.HTTPStatus(), resp
}

// WriteHTTP writes err as a JSON error response. Internal errors are logged.
func WriteHTTP(w http.ResponseWriter, err error) {
	status, resp := ToResponse(err)
	if status == http.StatusInternalServerError {
		log.Errorf("internal error: %s", err)
	} else {
		log.Tracef("request failed [%d]: %s", status, err)
	}
	pkg.WriteJSONResponse(w, resp, status)
}
