package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

var _ geoService = &geoServiceMock{}

type geoServiceMock struct {
	ListCantonsFunc   func(ctx context.Context, provinceID *int64) ([]domain.Canton, error)
	ListDistrictsFunc func(ctx context.Context, cantonID *int64, provinceID *int64) ([]domain.District, error)
	ListProvincesFunc func(ctx context.Context) ([]domain.Province, error)

	calls struct {
		ListCantons []struct {
			Ctx        context.Context
			ProvinceID *int64
		}
		ListDistricts []struct {
			Ctx        context.Context
			CantonID   *int64
			ProvinceID *int64
		}
		ListProvinces []struct {
			Ctx context.Context
		}
	}
	lockListCantons   sync.RWMutex
	lockListDistricts sync.RWMutex
	lockListProvinces sync.RWMutex
}

func (mock *geoServiceMock) ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error) {
	if mock.ListCantonsFunc == nil {
		panic("geoServiceMock.ListCantonsFunc: method is nil but geoService.ListCantons was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProvinceID *int64
	}{Ctx: ctx, ProvinceID: provinceID}
	mock.lockListCantons.Lock()
	mock.calls.ListCantons = append(mock.calls.ListCantons, callInfo)
	mock.lockListCantons.Unlock()
	return mock.ListCantonsFunc(ctx, provinceID)
}

func (mock *geoServiceMock) ListCantonsCalls() []struct {
	Ctx        context.Context
	ProvinceID *int64
} {
	mock.lockListCantons.RLock()
	calls := mock.calls.ListCantons
	mock.lockListCantons.RUnlock()
	return calls
}

func (mock *geoServiceMock) ListDistricts(ctx context.Context, cantonID *int64, provinceID *int64) ([]domain.District, error) {
	if mock.ListDistrictsFunc == nil {
		panic("geoServiceMock.ListDistrictsFunc: method is nil but geoService.ListDistricts was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CantonID   *int64
		ProvinceID *int64
	}{Ctx: ctx, CantonID: cantonID, ProvinceID: provinceID}
	mock.lockListDistricts.Lock()
	mock.calls.ListDistricts = append(mock.calls.ListDistricts, callInfo)
	mock.lockListDistricts.Unlock()
	return mock.ListDistrictsFunc(ctx, cantonID, provinceID)
}

func (mock *geoServiceMock) ListDistrictsCalls() []struct {
	Ctx        context.Context
	CantonID   *int64
	ProvinceID *int64
} {
	mock.lockListDistricts.RLock()
	calls := mock.calls.ListDistricts
	mock.lockListDistricts.RUnlock()
	return calls
}

func (mock *geoServiceMock) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	if mock.ListProvincesFunc == nil {
		panic("geoServiceMock.ListProvincesFunc: method is nil but geoService.ListProvinces was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListProvinces.Lock()
	mock.calls.ListProvinces = append(mock.calls.ListProvinces, callInfo)
	mock.lockListProvinces.Unlock()
	return mock.ListProvincesFunc(ctx)
}

func (mock *geoServiceMock) ListProvincesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListProvinces.RLock()
	calls := mock.calls.ListProvinces
	mock.lockListProvinces.RUnlock()
	return calls
}
