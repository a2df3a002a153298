package utils

import (
	"cobalt-screening-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSONBody reads the request body into dst. An empty body leaves dst untouched.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrReadBody(err)
	}

	if len(body) == 0 {
		return nil
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
