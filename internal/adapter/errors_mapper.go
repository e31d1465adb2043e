package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-mjml-api/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusNotFound:
		var er models.ErrorResponse
		if json.Unmarshal(resp.Body(), &er) == nil && er.Message != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, er.Message)
		}
		return ErrNotFound
	case http.StatusServiceUnavailable:
		return ErrServerBusy
	case http.StatusInternalServerError:
		var er models.ErrorResponse
		if err := json.Unmarshal(resp.Body(), &er); err != nil {
			return &CompileError{Message: body}
		}
		return &CompileError{Message: er.Message, Errors: er.Errors}
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
