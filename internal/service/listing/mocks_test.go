package listing

import (
	"context"
	"sync"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

var (
	_ vendorLoader     = &vendorLoaderMock{}
	_ restaurantLoader = &restaurantLoaderMock{}
	_ menuLoader       = &menuLoaderMock{}
)

type vendorLoaderMock struct {
	LoadFunc func(ctx context.Context) ([]domain.Vendor, error)

	calls struct {
		Load []struct{ Ctx context.Context }
	}
	lockLoad sync.RWMutex
}

func (mock *vendorLoaderMock) Load(ctx context.Context) ([]domain.Vendor, error) {
	if mock.LoadFunc == nil {
		panic("vendorLoaderMock.LoadFunc: method is nil but vendorLoader.Load was just called")
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *vendorLoaderMock) LoadCalls() []struct{ Ctx context.Context } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

type restaurantLoaderMock struct {
	LoadFunc func(ctx context.Context) ([]domain.Restaurant, error)

	calls struct {
		Load []struct{ Ctx context.Context }
	}
	lockLoad sync.RWMutex
}

func (mock *restaurantLoaderMock) Load(ctx context.Context) ([]domain.Restaurant, error) {
	if mock.LoadFunc == nil {
		panic("restaurantLoaderMock.LoadFunc: method is nil but restaurantLoader.Load was just called")
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *restaurantLoaderMock) LoadCalls() []struct{ Ctx context.Context } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

type menuLoaderMock struct {
	LoadFunc func(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error)

	calls struct {
		Load []struct {
			Ctx          context.Context
			RestaurantID domain.ID
		}
	}
	lockLoad sync.RWMutex
}

func (mock *menuLoaderMock) Load(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	if mock.LoadFunc == nil {
		panic("menuLoaderMock.LoadFunc: method is nil but menuLoader.Load was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RestaurantID domain.ID
	}{Ctx: ctx, RestaurantID: restaurantID}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, restaurantID)
}

func (mock *menuLoaderMock) LoadCalls() []struct {
	Ctx          context.Context
	RestaurantID domain.ID
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}
