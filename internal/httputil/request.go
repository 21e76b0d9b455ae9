package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies read by ParseJSON
const MaxBodyBytes = 1 << 20

// TypeError reports a JSON value whose type does not match the target.
// Field is the dotted JSON path, empty for the top-level value.
type TypeError struct {
	Field string
}

func (e *TypeError) Error() string {
	field := e.Field
	if field == "" {
		field = "body"
	}
	return fmt.Sprintf("invalid JSON: %s: invalid type", field)
}

// ParseJSON decodes a single JSON value from the request body into dest.
// Unknown fields are ignored. An empty body is reported as an error.
// Returned errors are safe to send to the client.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return decodeError(err)
	}

	if decoder.More() {
		return errors.New("invalid JSON: unexpected data after top-level value")
	}

	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return errors.New("invalid JSON: empty request body")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("invalid JSON: unexpected end of body")
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("invalid JSON: syntax error at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return &TypeError{Field: typeErr.Field}
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("request body exceeds %d bytes", maxBytesErr.Limit)
	default:
		return errors.New("invalid JSON")
	}
}
