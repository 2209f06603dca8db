// Package mocks holds hand-written testify mocks of the port interfaces.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockSheetReader is a testify mock of the SheetReader type
type MockSheetReader struct {
	mock.Mock
}

type MockSheetReader_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSheetReader) EXPECT() *MockSheetReader_Expecter {
	return &MockSheetReader_Expecter{mock: &_m.Mock}
}

// ReadRange provides a mock function with given fields: ctx, spreadsheetID, readRange
func (_m *MockSheetReader) ReadRange(ctx context.Context, spreadsheetID string, readRange string) ([][]string, error) {
	ret := _m.Called(ctx, spreadsheetID, readRange)

	if len(ret) == 0 {
		panic("no return value specified for ReadRange")
	}

	var r0 [][]string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) ([][]string, error)); ok {
		return rf(ctx, spreadsheetID, readRange)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) [][]string); ok {
		r0 = rf(ctx, spreadsheetID, readRange)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([][]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, spreadsheetID, readRange)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSheetReader_ReadRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadRange'
type MockSheetReader_ReadRange_Call struct {
	*mock.Call
}

// ReadRange is a helper method to define mock.On call
//   - ctx context.Context
//   - spreadsheetID string
//   - readRange string
func (_e *MockSheetReader_Expecter) ReadRange(ctx interface{}, spreadsheetID interface{}, readRange interface{}) *MockSheetReader_ReadRange_Call {
	return &MockSheetReader_ReadRange_Call{Call: _e.mock.On("ReadRange", ctx, spreadsheetID, readRange)}
}

func (_c *MockSheetReader_ReadRange_Call) Run(run func(ctx context.Context, spreadsheetID string, readRange string)) *MockSheetReader_ReadRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockSheetReader_ReadRange_Call) Return(_a0 [][]string, _a1 error) *MockSheetReader_ReadRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSheetReader_ReadRange_Call) RunAndReturn(run func(context.Context, string, string) ([][]string, error)) *MockSheetReader_ReadRange_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSheetReader creates a new instance of MockSheetReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSheetReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSheetReader {
	mock := &MockSheetReader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
