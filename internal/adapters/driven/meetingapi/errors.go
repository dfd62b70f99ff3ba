package meetingapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// maxRawDetail bounds a non-JSON error body used as the detail.
const maxRawDetail = 200

// decodeAPIError builds an APIError from a non-2xx response.
// FastAPI reports {"detail": "..."} or, for validation failures,
// {"detail": [{"msg": "...", ...}]}.
func decodeAPIError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &domain.APIError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		Detail:     errorDetail(body),
	}
}

func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var text string
		if json.Unmarshal(payload.Detail, &text) == nil {
			return text
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if json.Unmarshal(payload.Detail, &items) == nil {
			msgs := make([]string, 0, len(items))
			for _, item := range items {
				if item.Msg != "" {
					msgs = append(msgs, item.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}

		return string(payload.Detail)
	}

	return domain.Truncate(strings.TrimSpace(string(body)), maxRawDetail)
}

// malformed wraps a decode failure.
func malformed(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrMalformedResponse, err)
}

// routeMissDetails are the 404 bodies of a missing route: FastAPI's default
// and net/http's NotFound. Any other 404 detail from /search means no match.
var routeMissDetails = map[string]bool{
	"":                   true,
	"Not Found":          true,
	"404 page not found": true,
}

// isNoMatches reports whether err is the search endpoint's empty-result 404.
func isNoMatches(err error) bool {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		return false
	}
	return !routeMissDetails[apiErr.Detail]
}
