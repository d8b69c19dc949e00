package mocks

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// CreateEmptyHttpResponse creates an empty http response for the specified request and status code
func CreateEmptyHttpResponse(request *http.Request, statusCode int) (*http.Response, error) {
	return &http.Response{
		Request:    request,
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       http.NoBody,
	}, nil
}

// CreateHttpResponseWithBody creates an http response for the specified request,
// status code and response body
func CreateHttpResponseWithBody[T any](request *http.Request, statusCode int, responseBody T) (*http.Response, error) {
	jsonBytes, err := json.Marshal(responseBody)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Request:    request,
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewBuffer(jsonBytes)),
	}, nil
}
