package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
	}
	lockListCategories sync.RWMutex
}

func (mock *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("categoryServiceMock.ListCategoriesFunc: method is nil but categoryService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *categoryServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}
