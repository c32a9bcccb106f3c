package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// checkResponse turns a non-2xx notify response into an error. retry is
// false for client errors other than 408 and 429.
func checkResponse(resp *resty.Response) (retry bool, err error) {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return false, nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return true, fmt.Errorf("%w: http %d: %s", ErrTargetUnavailable, code, body)
	case code >= http.StatusBadRequest:
		return false, fmt.Errorf("%w: http %d: %s", ErrNotifyRejected, code, body)
	default:
		return false, fmt.Errorf("unexpected notify response: http %d: %s", code, body)
	}
}
