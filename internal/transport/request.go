package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/tablesync/pkg/errors"
)

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 4 << 10

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// DecodeResponse decodes a JSON response into the target structure and closes
// the body. Non-2xx responses become an *errors.APIError carrying the body text.
func DecodeResponse(ctx context.Context, resp *http.Response, target any) error {
	defer drain(ctx, resp)

	if !IsSuccess(resp.StatusCode) {
		return ResponseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

// ResponseError builds an *errors.APIError from a non-success response,
// reading at most a few KiB of its body. It does not close the body.
func ResponseError(resp *http.Response) *errors.APIError {
	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.Path
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return errors.NewAPIError(endpoint, resp.StatusCode, message)
}

// Discard reads the rest of resp.Body and closes it.
func Discard(ctx context.Context, resp *http.Response) {
	drain(ctx, resp)
}
