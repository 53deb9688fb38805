package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// MaxJSONBodyBytes bounds the size of a decoded request body.
const MaxJSONBodyBytes = 1 << 20

var (
	ErrInvalidContentType = errors.New("invalid content type, expected application/json")
	ErrEmptyBody          = errors.New("empty request body")
	ErrBodyTooLarge       = fmt.Errorf("request body larger than %d bytes", MaxJSONBodyBytes)
)

// DecodeJSONBody decodes a JSON request body of at most MaxJSONBodyBytes into v.
func DecodeJSONBody(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != ContentType.JSON {
		return ErrInvalidContentType
	}

	body := http.MaxBytesReader(nil, r.Body, MaxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		}
		return fmt.Errorf("malformed json: %w", err)
	}
	return nil
}

// PathIntVar reads a numeric mux path variable.
func PathIntVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, fmt.Errorf("%s empty", name)
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s out of range", name)
		}
		return 0, fmt.Errorf("%s NaN", name)
	}
	return int(v), nil
}

// QueryIntParam reads an optional numeric query parameter. Absent yields nil.
func QueryIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("query param %s out of range", name)
		}
		return nil, fmt.Errorf("query param %s must be a number", name)
	}
	v := int(parsed)
	return &v, nil
}
