package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/legends-backend/internal/domain"
	"github.com/heartmarshall/legends-backend/internal/service/legend"
)

var _ legendService = &legendServiceMock{}

type legendServiceMock struct {
	CreateFunc func(ctx context.Context, input legend.CreateInput) (*domain.Legend, error)
	DeleteFunc func(ctx context.Context, id int64) error
	FilterFunc func(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error)
	GetFunc    func(ctx context.Context, id int64) (*domain.LegendView, error)
	ListFunc   func(ctx context.Context) ([]domain.LegendView, error)
	UpdateFunc func(ctx context.Context, input legend.UpdateInput) (*domain.Legend, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input legend.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Filter []struct {
			Ctx context.Context
			F   domain.LegendFilter
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input legend.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockFilter sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *legendServiceMock) Create(ctx context.Context, input legend.CreateInput) (*domain.Legend, error) {
	if mock.CreateFunc == nil {
		panic("legendServiceMock.CreateFunc: method is nil but legendService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input legend.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *legendServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input legend.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *legendServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("legendServiceMock.DeleteFunc: method is nil but legendService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *legendServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *legendServiceMock) Filter(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error) {
	if mock.FilterFunc == nil {
		panic("legendServiceMock.FilterFunc: method is nil but legendService.Filter was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LegendFilter
	}{Ctx: ctx, F: f}
	mock.lockFilter.Lock()
	mock.calls.Filter = append(mock.calls.Filter, callInfo)
	mock.lockFilter.Unlock()
	return mock.FilterFunc(ctx, f)
}

func (mock *legendServiceMock) FilterCalls() []struct {
	Ctx context.Context
	F   domain.LegendFilter
} {
	mock.lockFilter.RLock()
	calls := mock.calls.Filter
	mock.lockFilter.RUnlock()
	return calls
}

func (mock *legendServiceMock) Get(ctx context.Context, id int64) (*domain.LegendView, error) {
	if mock.GetFunc == nil {
		panic("legendServiceMock.GetFunc: method is nil but legendService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *legendServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *legendServiceMock) List(ctx context.Context) ([]domain.LegendView, error) {
	if mock.ListFunc == nil {
		panic("legendServiceMock.ListFunc: method is nil but legendService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *legendServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *legendServiceMock) Update(ctx context.Context, input legend.UpdateInput) (*domain.Legend, error) {
	if mock.UpdateFunc == nil {
		panic("legendServiceMock.UpdateFunc: method is nil but legendService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input legend.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *legendServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input legend.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
