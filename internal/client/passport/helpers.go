package passport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// apiResponse is the envelope every member API endpoint answers with.
// Code equals apiCodeSuccess for accepted requests; Data carries the payload.
type apiResponse[T any] struct {
	// Code is the envelope result code.
	Code int `json:"code"`
	// Message is the human-readable result description.
	Message string `json:"message"`
	// Data is the endpoint-specific payload.
	Data T `json:"data"`
}

// getJSON performs a GET request and decodes the response envelope.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func getJSON[T any](c *ClientImpl, ctx context.Context, uri string, query url.Values) (*apiResponse[T], error) {
	return doJSON[T](c, ctx, http.MethodGet, uri, query, nil)
}

// postJSON performs a POST request with a JSON body and decodes the response envelope.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func postJSON[T any](c *ClientImpl, ctx context.Context, uri string, payload any) (*apiResponse[T], error) {
	return doJSON[T](c, ctx, http.MethodPost, uri, nil, payload)
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func doJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method string,
	uri string,
	query url.Values,
	payload any,
) (*apiResponse[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody

	if payload != nil {
		encoded, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request payload: %w", marshalErr)
		}

		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, body)
	if err != nil {
		return nil, err
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return decodeEnvelope[T](c, request, query)
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func decodeEnvelope[T any](c *ClientImpl, request *http.Request, query url.Values) (*apiResponse[T], error) {
	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var envelope apiResponse[T]
	if err = json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if envelope.Code != apiCodeSuccess {
		return &envelope, &APIError{Code: envelope.Code, Message: envelope.Message}
	}

	return &envelope, nil
}
