// Package mocks provides test doubles for the distancematrix client.
package mocks

import (
	"context"

	distancematrix "github.com/taimone/closest-facilities-lookup/pkg/distancematrix"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Row provides a mock function with given fields: ctx, origin, destinations
func (_m *MockClient) Row(ctx context.Context, origin string, destinations []string) ([]*distancematrix.Element, error) {
	ret := _m.Called(ctx, origin, destinations)

	if len(ret) == 0 {
		panic("no return value specified for Row")
	}

	var r0 []*distancematrix.Element
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []string) ([]*distancematrix.Element, error)); ok {
		return rf(ctx, origin, destinations)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, []string) []*distancematrix.Element); ok {
		r0 = rf(ctx, origin, destinations)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*distancematrix.Element)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, []string) error); ok {
		r1 = rf(ctx, origin, destinations)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
