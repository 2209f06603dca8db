package mocks

import (
	context "context"

	domain "creative-pulse/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockTodoRepository is a testify mock of the TodoRepository type
type MockTodoRepository struct {
	mock.Mock
}

type MockTodoRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoRepository) EXPECT() *MockTodoRepository_Expecter {
	return &MockTodoRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, listID, text
func (_m *MockTodoRepository) Create(ctx context.Context, listID string, text string) (*domain.Todo, error) {
	ret := _m.Called(ctx, listID, text)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *domain.Todo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Todo)
	}
	return r0, ret.Error(1)
}

type MockTodoRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) Create(ctx interface{}, listID interface{}, text interface{}) *MockTodoRepository_Create_Call {
	return &MockTodoRepository_Create_Call{Call: _e.mock.On("Create", ctx, listID, text)}
}

func (_c *MockTodoRepository_Create_Call) Return(_a0 *domain.Todo, _a1 error) *MockTodoRepository_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockTodoRepository) Delete(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	return ret.Bool(0), ret.Error(1)
}

type MockTodoRepository_Delete_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockTodoRepository_Delete_Call {
	return &MockTodoRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockTodoRepository_Delete_Call) Return(_a0 bool, _a1 error) *MockTodoRepository_Delete_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// DeleteByList provides a mock function with given fields: ctx, listID
func (_m *MockTodoRepository) DeleteByList(ctx context.Context, listID string) (int, error) {
	ret := _m.Called(ctx, listID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByList")
	}

	return ret.Int(0), ret.Error(1)
}

type MockTodoRepository_DeleteByList_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) DeleteByList(ctx interface{}, listID interface{}) *MockTodoRepository_DeleteByList_Call {
	return &MockTodoRepository_DeleteByList_Call{Call: _e.mock.On("DeleteByList", ctx, listID)}
}

func (_c *MockTodoRepository_DeleteByList_Call) Return(_a0 int, _a1 error) *MockTodoRepository_DeleteByList_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockTodoRepository) Get(ctx context.Context, id string) (*domain.Todo, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.Todo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Todo)
	}
	return r0, ret.Error(1)
}

type MockTodoRepository_Get_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) Get(ctx interface{}, id interface{}) *MockTodoRepository_Get_Call {
	return &MockTodoRepository_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockTodoRepository_Get_Call) Return(_a0 *domain.Todo, _a1 error) *MockTodoRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockTodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Todo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Todo)
	}
	return r0, ret.Error(1)
}

type MockTodoRepository_List_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) List(ctx interface{}) *MockTodoRepository_List_Call {
	return &MockTodoRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockTodoRepository_List_Call) Return(_a0 []domain.Todo, _a1 error) *MockTodoRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// ListByList provides a mock function with given fields: ctx, listID
func (_m *MockTodoRepository) ListByList(ctx context.Context, listID string) ([]domain.Todo, error) {
	ret := _m.Called(ctx, listID)

	if len(ret) == 0 {
		panic("no return value specified for ListByList")
	}

	var r0 []domain.Todo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Todo)
	}
	return r0, ret.Error(1)
}

type MockTodoRepository_ListByList_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) ListByList(ctx interface{}, listID interface{}) *MockTodoRepository_ListByList_Call {
	return &MockTodoRepository_ListByList_Call{Call: _e.mock.On("ListByList", ctx, listID)}
}

func (_c *MockTodoRepository_ListByList_Call) Return(_a0 []domain.Todo, _a1 error) *MockTodoRepository_ListByList_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Update provides a mock function with given fields: ctx, id, p
func (_m *MockTodoRepository) Update(ctx context.Context, id string, p domain.TodoPatch) (*domain.Todo, error) {
	ret := _m.Called(ctx, id, p)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *domain.Todo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Todo)
	}
	return r0, ret.Error(1)
}

type MockTodoRepository_Update_Call struct {
	*mock.Call
}

func (_e *MockTodoRepository_Expecter) Update(ctx interface{}, id interface{}, p interface{}) *MockTodoRepository_Update_Call {
	return &MockTodoRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, p)}
}

func (_c *MockTodoRepository_Update_Call) Return(_a0 *domain.Todo, _a1 error) *MockTodoRepository_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockTodoRepository creates a new instance of MockTodoRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTodoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoRepository {
	mock := &MockTodoRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
