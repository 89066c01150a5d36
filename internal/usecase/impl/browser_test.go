package impl

import (
	"context"
	"testing"

	"directory/config"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	mockUsecase "directory/internal/mocks/usecase"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// browserFixtures holds all test dependencies for browser tests.
type browserFixtures struct {
	browser   usecase.Browser
	directory *mockUsecase.MockDirectoryUsecase
}

func createTestBrowser(t *testing.T) browserFixtures {
	directory := mockUsecase.NewMockDirectoryUsecase(t)

	cfg := &config.Config{}
	cfg.Map.DefaultLatitude = 39.8283
	cfg.Map.DefaultLongitude = -98.5795
	cfg.Map.DefaultZoom = 4
	cfg.Map.CityZoom = 12
	cfg.Map.BusinessZoom = 16
	cfg.Directory.BrowserLimit = 500

	return browserFixtures{
		browser:   NewBrowser(directory, cfg),
		directory: directory,
	}
}

func testCities() []*entity.City {
	return []*entity.City{
		{ID: uuid.New(), Name: "Austin", Latitude: "30.2672", Longitude: "-97.7431"},
		{ID: uuid.New(), Name: "Dallas", Latitude: "32.7767", Longitude: "-96.7970"},
		{ID: uuid.New(), Name: "Houston", Latitude: "", Longitude: ""},
		{ID: uuid.New(), Name: "El Paso", Latitude: "not-a-number", Longitude: "-106.4850"},
	}
}

func loadTestCities(t *testing.T, fx browserFixtures, cities []*entity.City) {
	fx.directory.EXPECT().
		ListCities(mock.Anything, usecase.ListCitiesInput{Page: 1, Limit: 500}).
		Return(&usecase.CityListOutput{Total: int64(len(cities)), Cities: cities}, nil).
		Once()

	require.NoError(t, fx.browser.LoadCities(context.Background()))
}

func TestBrowser_StartsInCitiesView(t *testing.T) {
	fx := createTestBrowser(t)

	assert.Equal(t, usecase.ViewModeCities, fx.browser.Mode())
	assert.Empty(t, fx.browser.Cities())
	assert.Nil(t, fx.browser.SelectedCity())
}

func TestBrowser_Markers_ExcludeUnmappableCities(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	// Four cities loaded, two with parseable coordinates.
	assert.Len(t, fx.browser.Cities(), 4)

	markers := fx.browser.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, "Austin", markers[0].Name)
	assert.Equal(t, "Dallas", markers[1].Name)
	// orb points are {lng, lat}.
	assert.InDelta(t, -97.7431, markers[0].Point[0], 1e-9)
	assert.InDelta(t, 30.2672, markers[0].Point[1], 1e-9)
}

func TestBrowser_LoadCities_FailureKeepsEmptyListAndError(t *testing.T) {
	fx := createTestBrowser(t)

	fx.directory.EXPECT().
		ListCities(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInternalError).
		Once()

	err := fx.browser.LoadCities(context.Background())

	require.Error(t, err)
	assert.Empty(t, fx.browser.Cities())
	assert.ErrorIs(t, fx.browser.LastError(), domainerrors.ErrInternalError)
}

func TestBrowser_Filter_NarrowsCurrentView(t *testing.T) {
	fx := createTestBrowser(t)
	loadTestCities(t, fx, testCities())

	fx.browser.Filter("  AUS ")

	filtered := fx.browser.Cities()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Austin", filtered[0].Name)

	// Markers follow the full list, not the filter; clearing restores everything.
	fx.browser.Filter("")
	assert.Len(t, fx.browser.Cities(), 4)
}

func TestBrowser_SelectCityAndBack(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	businesses := []*entity.Business{
		{ID: uuid.New(), CityID: austin.ID, Name: "Franklin Barbecue", Latitude: "30.2701", Longitude: "-97.7313"},
	}

	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{City: austin, Businesses: businesses}, nil).
		Once()

	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))
	assert.Equal(t, usecase.ViewModeBusinesses, fx.browser.Mode())
	assert.Equal(t, austin, fx.browser.SelectedCity())
	assert.Len(t, fx.browser.Businesses(), 1)

	fx.browser.Back()

	assert.Equal(t, usecase.ViewModeCities, fx.browser.Mode())
	assert.Nil(t, fx.browser.SelectedCity())
	assert.Empty(t, fx.browser.Businesses())
	// The city list survives the round trip untouched.
	assert.Len(t, fx.browser.Cities(), 4)
}

func TestBrowser_SelectCity_FailureKeepsCurrentView(t *testing.T) {
	fx := createTestBrowser(t)
	loadTestCities(t, fx, testCities())

	cityID := uuid.New()
	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, cityID).
		Return(nil, domainerrors.ErrCityNotFound).
		Once()

	err := fx.browser.SelectCity(context.Background(), cityID)

	require.Error(t, err)
	assert.Equal(t, usecase.ViewModeCities, fx.browser.Mode())
	assert.Len(t, fx.browser.Cities(), 4)
	assert.ErrorIs(t, fx.browser.LastError(), domainerrors.ErrCityNotFound)
}

func TestBrowser_SelectBusiness_RoutesByStatus(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	approved := &entity.Business{
		ID: uuid.New(), CityID: austin.ID, Name: "Franklin Barbecue",
		BusinessStatus: "approved", Latitude: "30.2701", Longitude: "-97.7313",
	}
	pending := &entity.Business{
		ID: uuid.New(), CityID: austin.ID, Name: "Uchi",
		BusinessStatus: "pending", Latitude: "30.2538", Longitude: "-97.7609",
	}

	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{
			City:       austin,
			Businesses: []*entity.Business{approved, pending},
		}, nil).
		Once()
	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))

	outcome, err := fx.browser.SelectBusiness(approved.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeClaimFlow, outcome)
	assert.Equal(t, approved, fx.browser.SelectedBusiness())
	assert.Equal(t, usecase.ViewModeBusinesses, fx.browser.Mode())

	outcome, err = fx.browser.SelectBusiness(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomePublicDetail, outcome)

	_, err = fx.browser.SelectBusiness(uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBrowser_SelectBusiness_OutsideBusinessesView(t *testing.T) {
	fx := createTestBrowser(t)
	loadTestCities(t, fx, testCities())

	_, err := fx.browser.SelectBusiness(uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBrowser_Viewport_FitsAllMarkers(t *testing.T) {
	fx := createTestBrowser(t)
	loadTestCities(t, fx, testCities())

	viewport := fx.browser.Viewport()

	require.True(t, viewport.FitBound)
	// The bound must cover the two mappable cities.
	assert.InDelta(t, -97.7431, viewport.Bound.Min[0], 1e-9)
	assert.InDelta(t, 30.2672, viewport.Bound.Min[1], 1e-9)
	assert.InDelta(t, -96.7970, viewport.Bound.Max[0], 1e-9)
	assert.InDelta(t, 32.7767, viewport.Bound.Max[1], 1e-9)
}

func TestBrowser_Viewport_DefaultWhenNothingMappable(t *testing.T) {
	fx := createTestBrowser(t)
	loadTestCities(t, fx, []*entity.City{
		{ID: uuid.New(), Name: "Atlantis", Latitude: "NaN", Longitude: "0"},
	})

	viewport := fx.browser.Viewport()

	assert.False(t, viewport.FitBound)
	assert.InDelta(t, -98.5795, viewport.Center[0], 1e-9)
	assert.InDelta(t, 39.8283, viewport.Center[1], 1e-9)
	assert.Equal(t, 4, viewport.Zoom)
}

func TestBrowser_Viewport_SelectedBusinessWins(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	business := &entity.Business{
		ID: uuid.New(), CityID: austin.ID, Name: "Franklin Barbecue",
		BusinessStatus: "approved", Latitude: "30.2701", Longitude: "-97.7313",
	}

	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{City: austin, Businesses: []*entity.Business{business}}, nil).
		Once()
	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))

	_, err := fx.browser.SelectBusiness(business.ID)
	require.NoError(t, err)

	viewport := fx.browser.Viewport()

	assert.False(t, viewport.FitBound)
	assert.InDelta(t, -97.7313, viewport.Center[0], 1e-9)
	assert.InDelta(t, 30.2701, viewport.Center[1], 1e-9)
	assert.Equal(t, 16, viewport.Zoom)
}

func TestBrowser_Viewport_CityFallbackWithoutBusinessMarkers(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{
			City: austin,
			Businesses: []*entity.Business{
				{ID: uuid.New(), CityID: austin.ID, Name: "No Coords BBQ"},
			},
		}, nil).
		Once()
	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))

	viewport := fx.browser.Viewport()

	assert.False(t, viewport.FitBound)
	assert.InDelta(t, -97.7431, viewport.Center[0], 1e-9)
	assert.InDelta(t, 30.2672, viewport.Center[1], 1e-9)
	assert.Equal(t, 12, viewport.Zoom)
}

func TestBrowser_BusinessMarkers_CarryCustomIcons(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{
			City: austin,
			Businesses: []*entity.Business{
				{
					ID: uuid.New(), Name: "Franklin Barbecue",
					Latitude: "30.2701", Longitude: "-97.7313",
					MarkerURL: "https://cdn.example.com/markers/bbq.png",
				},
				{ID: uuid.New(), Name: "Broken Pin", Latitude: "Inf", Longitude: "0"},
			},
		}, nil).
		Once()
	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))

	markers := fx.browser.Markers()

	require.Len(t, markers, 1)
	assert.Equal(t, "https://cdn.example.com/markers/bbq.png", markers[0].IconURL)
}

func TestBrowser_LoadCities_StaleResponseDropped(t *testing.T) {
	fx := createTestBrowser(t)

	stale := []*entity.City{{ID: uuid.New(), Name: "Stale"}}
	fresh := []*entity.City{{ID: uuid.New(), Name: "Fresh"}}

	started := make(chan struct{})
	release := make(chan struct{})

	fx.directory.EXPECT().
		ListCities(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, input usecase.ListCitiesInput) (*usecase.CityListOutput, error) {
			close(started)
			<-release

			return &usecase.CityListOutput{Cities: stale}, nil
		}).
		Once()
	fx.directory.EXPECT().
		ListCities(mock.Anything, mock.Anything).
		Return(&usecase.CityListOutput{Cities: fresh}, nil).
		Once()

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- fx.browser.LoadCities(context.Background())
	}()
	<-started

	// A second load supersedes the in-flight one.
	require.NoError(t, fx.browser.LoadCities(context.Background()))

	close(release)
	require.NoError(t, <-firstDone)

	cities := fx.browser.Cities()
	require.Len(t, cities, 1)
	assert.Equal(t, "Fresh", cities[0].Name)
}

func TestBrowser_Back_InvalidatesInFlightBusinessLoad(t *testing.T) {
	fx := createTestBrowser(t)
	cities := testCities()
	loadTestCities(t, fx, cities)

	austin := cities[0]
	dallas := cities[1]

	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, austin.ID).
		Return(&usecase.CityDetailOutput{City: austin}, nil).
		Once()
	require.NoError(t, fx.browser.SelectCity(context.Background(), austin.ID))
	require.Equal(t, usecase.ViewModeBusinesses, fx.browser.Mode())

	started := make(chan struct{})
	release := make(chan struct{})

	fx.directory.EXPECT().
		GetCityWithBusinesses(mock.Anything, dallas.ID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*usecase.CityDetailOutput, error) {
			close(started)
			<-release

			return &usecase.CityDetailOutput{
				City:       dallas,
				Businesses: []*entity.Business{{ID: uuid.New(), Name: "Late Arrival"}},
			}, nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		done <- fx.browser.SelectCity(context.Background(), dallas.ID)
	}()
	<-started

	// Going back while the Dallas load is in flight supersedes it, so its
	// response must be dropped instead of reinstating the businesses view.
	fx.browser.Back()
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, usecase.ViewModeCities, fx.browser.Mode())
	assert.Empty(t, fx.browser.Businesses())
	assert.Nil(t, fx.browser.SelectedCity())
}
