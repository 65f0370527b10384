package geo

import (
	"context"
	"sync"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

var _ geoRepo = &geoRepoMock{}

type geoRepoMock struct {
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

func (mock *geoRepoMock) ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error) {
	if mock.ListCantonsFunc == nil {
		panic("geoRepoMock.ListCantonsFunc: method is nil but geoRepo.ListCantons was just called")
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

func (mock *geoRepoMock) ListCantonsCalls() []struct {
	Ctx        context.Context
	ProvinceID *int64
} {
	mock.lockListCantons.RLock()
	calls := mock.calls.ListCantons
	mock.lockListCantons.RUnlock()
	return calls
}

func (mock *geoRepoMock) ListDistricts(ctx context.Context, cantonID *int64, provinceID *int64) ([]domain.District, error) {
	if mock.ListDistrictsFunc == nil {
		panic("geoRepoMock.ListDistrictsFunc: method is nil but geoRepo.ListDistricts was just called")
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

func (mock *geoRepoMock) ListDistrictsCalls() []struct {
	Ctx        context.Context
	CantonID   *int64
	ProvinceID *int64
} {
	mock.lockListDistricts.RLock()
	calls := mock.calls.ListDistricts
	mock.lockListDistricts.RUnlock()
	return calls
}

func (mock *geoRepoMock) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	if mock.ListProvincesFunc == nil {
		panic("geoRepoMock.ListProvincesFunc: method is nil but geoRepo.ListProvinces was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListProvinces.Lock()
	mock.calls.ListProvinces = append(mock.calls.ListProvinces, callInfo)
	mock.lockListProvinces.Unlock()
	return mock.ListProvincesFunc(ctx)
}

func (mock *geoRepoMock) ListProvincesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListProvinces.RLock()
	calls := mock.calls.ListProvinces
	mock.lockListProvinces.RUnlock()
	return calls
}
