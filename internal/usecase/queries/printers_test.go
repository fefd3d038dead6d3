//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"droidforge/internal/domain/printer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPrinterReadStore struct {
	mock.Mock
}

func (m *MockPrinterReadStore) FindActive(ctx context.Context) ([]*printer.Printer, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*printer.Printer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPrinterReadStore) FindAll(ctx context.Context) ([]*printer.Printer, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*printer.Printer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPrinterReadStore) FindByLocation(ctx context.Context, country string, state *string) ([]*printer.Printer, error) {
	args := m.Called(ctx, country, state)
	if v := args.Get(0); v != nil {
		return v.([]*printer.Printer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPrinterReadStore) FindApplicationByUser(ctx context.Context, userID uuid.UUID) (*ApplicationView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*ApplicationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func buildPrinter(t *testing.T, name string, lat, lon float64, materials []string, status printer.Status, rating float64, completed int) *printer.Printer {
	t.Helper()
	now := time.Now().UTC()
	return printer.ReconstructPrinter(
		uuid.New(), uuid.New(), name,
		printer.Location{Country: "US", City: "Austin", Latitude: lat, Longitude: lon},
		printer.Capabilities{Materials: materials, MaxSize: printer.BuildVolume{X: 250, Y: 250, Z: 300}, Precision: 0.1, SupportedFormats: []string{"stl"}},
		status, 0.15, completed, rating, true, now, now,
	)
}

func TestFindNearest(t *testing.T) {
	// Austin-ish origin; Dallas is closer than Denver.
	origin := NearestParams{Latitude: 30.27, Longitude: -97.74, Materials: []string{"pla"}}

	dallas := buildPrinter(t, "dallas", 32.78, -96.80, []string{"pla", "petg"}, printer.StatusActive, 4.8, 120)
	denver := buildPrinter(t, "denver", 39.74, -104.99, []string{"pla"}, printer.StatusActive, 4.9, 80)
	resinOnly := buildPrinter(t, "resin-shop", 30.30, -97.70, []string{"resin"}, printer.StatusActive, 5.0, 40)
	offline := buildPrinter(t, "offline", 30.28, -97.75, []string{"pla"}, printer.StatusInactive, 4.2, 10)

	t.Run("picks the closest printer that covers the materials", func(t *testing.T) {
		store := new(MockPrinterReadStore)
		store.On("FindActive", mock.Anything).
			Return([]*printer.Printer{denver, dallas, resinOnly, offline}, nil)

		q := NewPrinterQueries(store)
		view, err := q.FindNearest(context.Background(), origin)

		assert.NoError(t, err)
		if assert.NotNil(t, view) {
			assert.Equal(t, "dallas", view.Printer.Name)
			assert.Greater(t, view.DistanceKm, 0.0)
			assert.Less(t, view.DistanceKm, 400.0)
		}
		store.AssertExpectations(t)
	})

	t.Run("returns nil when no printer carries the material", func(t *testing.T) {
		store := new(MockPrinterReadStore)
		store.On("FindActive", mock.Anything).
			Return([]*printer.Printer{dallas, denver}, nil)

		q := NewPrinterQueries(store)
		view, err := q.FindNearest(context.Background(), NearestParams{
			Latitude: 30.27, Longitude: -97.74, Materials: []string{"carbon_fiber"},
		})

		assert.NoError(t, err)
		assert.Nil(t, view)
		store.AssertExpectations(t)
	})
}

func TestPrinterStats(t *testing.T) {
	active1 := buildPrinter(t, "a", 30, -97, []string{"pla"}, printer.StatusActive, 4.0, 100)
	active2 := buildPrinter(t, "b", 31, -98, []string{"pla"}, printer.StatusActive, 5.0, 50)
	inactive := buildPrinter(t, "c", 32, -99, []string{"pla"}, printer.StatusInactive, 1.0, 999)

	store := new(MockPrinterReadStore)
	store.On("FindAll", mock.Anything).
		Return([]*printer.Printer{active1, active2, inactive}, nil)

	q := NewPrinterQueries(store)
	stats, err := q.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPrinters)
	assert.Equal(t, 2, stats.ActivePrinters)
	// inactive printers do not skew the average or totals
	assert.InDelta(t, 4.5, stats.AverageRating, 0.001)
	assert.Equal(t, 150, stats.TotalCompletedOrders)
	assert.Equal(t, 2, stats.PrintersByCountry["US"])
	store.AssertExpectations(t)
}

func TestListByLocation(t *testing.T) {
	t.Run("empty country lists everything", func(t *testing.T) {
		store := new(MockPrinterReadStore)
		store.On("FindAll", mock.Anything).Return([]*printer.Printer{}, nil)

		q := NewPrinterQueries(store)
		_, err := q.ListByLocation(context.Background(), "", nil)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("country filter delegates to the store", func(t *testing.T) {
		state := "TX"
		store := new(MockPrinterReadStore)
		store.On("FindByLocation", mock.Anything, "US", &state).Return([]*printer.Printer{}, nil)

		q := NewPrinterQueries(store)
		_, err := q.ListByLocation(context.Background(), "US", &state)

		assert.NoError(t, err)
		store.AssertExpectations(t)
	})
}
