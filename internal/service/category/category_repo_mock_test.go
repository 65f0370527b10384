package category

import (
	"context"
	"sync"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListAllFunc func(ctx context.Context) ([]domain.Category, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
}

func (mock *categoryRepoMock) ListAll(ctx context.Context) ([]domain.Category, error) {
	if mock.ListAllFunc == nil {
		panic("categoryRepoMock.ListAllFunc: method is nil but categoryRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *categoryRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
