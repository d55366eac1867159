package mocks

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

// HTTPClient is a mock type for the HTTPClient type
type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	ret := _m.Called(req)
	var r0 *http.Response
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*http.Response)
	}
	return r0, ret.Error(1)
}

// NewHTTPClient creates a new instance of HTTPClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHTTPClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *HTTPClient {
	m := &HTTPClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
