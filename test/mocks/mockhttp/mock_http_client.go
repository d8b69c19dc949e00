package mockhttp

import (
	"fmt"
	"net/http"
)

// MockHttpClient implements [policy.Transporter] over a set of registered
// predicate/response pairs, letting tests mock SDK clients at the transport layer.
type MockHttpClient struct {
	expressions []*HttpExpression
}

type HttpExpression struct {
	http        *MockHttpClient
	predicateFn RequestPredicate
	response    *http.Response
	responseFn  RespondFn
	error       error
}

type RequestPredicate func(request *http.Request) bool
type RespondFn func(request *http.Request) (*http.Response, error)

func NewMockHttpUtil() *MockHttpClient {
	return &MockHttpClient{
		expressions: []*HttpExpression{},
	}
}

func (mock *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	var match *HttpExpression

	for _, expr := range mock.expressions {
		if expr.predicateFn(req) {
			match = expr
			break
		}
	}

	if match == nil {
		panic(fmt.Sprintf("No mock found for request: '%s %s'", req.Method, req.URL))
	}

	// If the response function has been set, return the value
	if match.responseFn != nil {
		return match.responseFn(req)
	}

	return match.response, match.error
}

func (mock *MockHttpClient) When(predicate RequestPredicate) *HttpExpression {
	expr := HttpExpression{
		http:        mock,
		predicateFn: predicate,
	}

	mock.expressions = append(mock.expressions, &expr)
	return &expr
}

func (mock *MockHttpClient) Reset() {
	mock.expressions = []*HttpExpression{}
}

func (e *HttpExpression) Respond(response *http.Response) *MockHttpClient {
	e.response = response
	return e.http
}

func (e *HttpExpression) RespondFn(responseFn RespondFn) *MockHttpClient {
	e.responseFn = responseFn
	return e.http
}

func (e *HttpExpression) SetError(err error) *MockHttpClient {
	e.error = err
	return e.http
}
