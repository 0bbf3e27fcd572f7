package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dbm "tripline/internal/models/db_models"
	"tripline/pkg/utils"
)

var baseTime = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

// Cities used across the route tests: 1=A 2=B 3=C 4=D 5=E.
func newRouteFixture(t *testing.T) (*fakeDirRepo, *fakeLegRepo, *fakeTravelRepo, RouteServiceInterface) {
	t.Helper()
	dir := newFakeDirRepo()
	dir.addCity(1, "A")
	dir.addCity(2, "B")
	dir.addCity(3, "C")
	dir.addCity(4, "D")
	dir.addCity(5, "E")
	legs := newFakeLegRepo(dir)
	travels := newFakeTravelRepo(legs)
	travels.seed(1, dbm.TravelInProgress, dbm.User{ID: 1})
	svc := NewRouteService(legs, dir, travels, zap.NewNop())
	return dir, legs, travels, svc
}

func addLeg(t *testing.T, legs *fakeLegRepo, dirLegID uint, startOffset time.Duration, category dbm.LegCategory) *dbm.RouteLeg {
	t.Helper()
	leg, err := dbm.NewRouteLeg(dirLegID, 1, baseTime.Add(startOffset), baseTime.Add(startOffset+2*time.Hour), category)
	require.NoError(t, err)
	stored, err := legs.Add(context.Background(), leg)
	require.NoError(t, err)
	return stored
}

func pathCities(t *testing.T, svc RouteServiceInterface, travelID uint) [][2]uint {
	t.Helper()
	views, err := svc.GetOrderedPath(context.Background(), travelID)
	require.NoError(t, err)
	out := make([][2]uint, 0, len(views))
	for _, v := range views {
		out = append(out, [2]uint{v.DepartureCityID, v.ArrivalCityID})
	}
	return out
}

func TestGetOrderedPathSortsByStartTime(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	bc := dir.seed(2, 3, dbm.TransportTrain)

	// Insert out of order; the read must sort by start time.
	addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryOwn)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(1), views[0].DepartureCityID)
	assert.Equal(t, uint(2), views[0].ArrivalCityID)
	assert.Equal(t, uint(2), views[1].DepartureCityID)
	assert.Equal(t, uint(3), views[1].ArrivalCityID)
	assert.Equal(t, "A", views[0].DepartureCityName)
	assert.Equal(t, "B", views[0].ArrivalCityName)
	assert.True(t, views[0].Contiguous)
	assert.True(t, views[1].Contiguous)
}

func TestGetOrderedPathBreaksStartTimeTiesByID(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	bc := dir.seed(2, 3, dbm.TransportBus)
	cd := dir.seed(3, 4, dbm.TransportBus)

	// Deleting an interior city gives the bridge leg the same start time
	// as a removed leg had, so equal start times occur in practice. The
	// lower ID must win for the order to stay deterministic.
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, bc.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, cd.ID, 0, dbm.CategoryOwn)

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, [][2]uint{{1, 2}, {2, 3}, {3, 4}}, pathCities(t, svc, 1))
}

func TestGetOrderedPathIsIdempotent(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	first, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrderedPathFlagsGap(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	cd := dir.seed(3, 4, dbm.TransportBus)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, cd.ID, 3*time.Hour, dbm.CategoryOwn)

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Contiguous)
	assert.False(t, views[1].Contiguous)
}

func TestInsertCityAfterArrivalAnchor(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	bc := dir.seed(2, 3, dbm.TransportTrain)
	cd := dir.seed(3, 4, dbm.TransportTrain)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryAuthored)
	anchor := addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryAuthored)
	_ = cd

	// C is the arrival city of B->C, so a new leg C->D is appended after it.
	err := svc.InsertCityBetween(context.Background(), 1, 4, 3, dbm.TransportTrain)
	require.NoError(t, err)

	assert.Equal(t, [][2]uint{{1, 2}, {2, 3}, {3, 4}}, pathCities(t, svc, 1))

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	spliced := views[2]
	assert.Equal(t, anchor.EndTime, spliced.StartTime)
	assert.Equal(t, anchor.EndTime.Add(DefaultSpliceDuration), spliced.EndTime)
	assert.Equal(t, string(dbm.CategoryAuthored), spliced.Category)
}

func TestInsertCityBeforeDepartureAnchor(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	bc := dir.seed(2, 3, dbm.TransportBus)
	ab := dir.seed(1, 2, dbm.TransportBus)
	anchor := addLeg(t, legs, bc.ID, 0, dbm.CategoryOwn)

	// No leg arrives at B, so the departure-city branch rewrites the anchor
	// in place: it now covers A->B with its end recomputed from its start.
	err := svc.InsertCityBetween(context.Background(), 1, 1, 2, dbm.TransportBus)
	require.NoError(t, err)

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, anchor.ID, views[0].ID)
	assert.Equal(t, ab.ID, views[0].DirectoryLegID)
	assert.Equal(t, uint(1), views[0].DepartureCityID)
	assert.Equal(t, uint(2), views[0].ArrivalCityID)
	assert.Equal(t, anchor.StartTime, views[0].StartTime)
	assert.Equal(t, anchor.StartTime.Add(DefaultSpliceDuration), views[0].EndTime)
}

func TestInsertCityArrivalMatchWinsOverDeparture(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportCar)
	bc := dir.seed(2, 3, dbm.TransportCar)
	bd := dir.seed(2, 4, dbm.TransportCar)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryOwn)
	_ = bd

	// B is both the arrival of A->B and the departure of B->C. The arrival
	// match is checked first, so the edit appends B->D instead of rewriting
	// B->C.
	err := svc.InsertCityBetween(context.Background(), 1, 4, 2, dbm.TransportCar)
	require.NoError(t, err)

	assert.Equal(t, [][2]uint{{1, 2}, {2, 4}, {2, 3}}, pathCities(t, svc, 1))
}

func TestInsertCityEmptyRoute(t *testing.T) {
	_, _, _, svc := newRouteFixture(t)
	err := svc.InsertCityBetween(context.Background(), 1, 4, 3, dbm.TransportBus)
	assert.ErrorIs(t, err, utils.ErrRouteEmpty)
}

func TestInsertCityAnchorNotOnRoute(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	err := svc.InsertCityBetween(context.Background(), 1, 4, 5, dbm.TransportBus)
	assert.ErrorIs(t, err, utils.ErrCityNotOnRoute)
}

func TestInsertCityUnknownTransport(t *testing.T) {
	_, _, _, svc := newRouteFixture(t)
	err := svc.InsertCityBetween(context.Background(), 1, 4, 3, dbm.Transport("Zeppelin"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestInsertCityMissingDirectoryLegLeavesPathUntouched(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	// No B->D pair exists under this transport.
	err := svc.InsertCityBetween(context.Background(), 1, 4, 2, dbm.TransportTrain)
	assert.ErrorIs(t, err, utils.ErrDirectoryLegNotFound)

	assert.Equal(t, [][2]uint{{1, 2}}, pathCities(t, svc, 1))
}

func TestDeleteInteriorCityBridgesGap(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	bc := dir.seed(2, 3, dbm.TransportTrain)
	cd := dir.seed(3, 4, dbm.TransportTrain)
	de := dir.seed(4, 5, dbm.TransportTrain)
	ae := dir.seed(1, 5, dbm.TransportTrain)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryAuthored)
	firstRemoved := addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryRecommended)
	addLeg(t, legs, cd.ID, 6*time.Hour, dbm.CategoryRecommended)
	addLeg(t, legs, de.ID, 9*time.Hour, dbm.CategoryAuthored)

	// Deleting C drops B->C and C->D. The window is flanked on both sides,
	// so one bridge leg is synthesized between the departure city of the leg
	// before the window and the arrival city of the leg after it.
	err := svc.DeleteCityFromRoute(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, [][2]uint{{1, 2}, {1, 5}, {4, 5}}, pathCities(t, svc, 1))

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	bridge := views[1]
	assert.Equal(t, ae.ID, bridge.DirectoryLegID)
	assert.Equal(t, firstRemoved.StartTime, bridge.StartTime)
	assert.Equal(t, firstRemoved.StartTime.Add(DefaultSpliceDuration), bridge.EndTime)
	// Category comes from the first leg that survives the removal.
	assert.Equal(t, string(dbm.CategoryAuthored), bridge.Category)
}

func TestDeleteEndpointCityShortensPath(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	bc := dir.seed(2, 3, dbm.TransportBus)
	cd := dir.seed(3, 4, dbm.TransportBus)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryOwn)
	addLeg(t, legs, cd.ID, 6*time.Hour, dbm.CategoryOwn)

	// D only appears as the final arrival; no leg follows the window, so the
	// path just loses its tail and no bridge is synthesized.
	err := svc.DeleteCityFromRoute(context.Background(), 1, 4)
	require.NoError(t, err)

	assert.Equal(t, [][2]uint{{1, 2}, {2, 3}}, pathCities(t, svc, 1))
}

func TestDeleteCityMissingBridgeRollsBack(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	bc := dir.seed(2, 3, dbm.TransportTrain)
	cd := dir.seed(3, 4, dbm.TransportTrain)
	de := dir.seed(4, 5, dbm.TransportTrain)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	addLeg(t, legs, bc.ID, 3*time.Hour, dbm.CategoryOwn)
	addLeg(t, legs, cd.ID, 6*time.Hour, dbm.CategoryOwn)
	addLeg(t, legs, de.ID, 9*time.Hour, dbm.CategoryOwn)

	// No A->E pair exists, so the bridge lookup fails after the removals.
	// The transaction must roll the deletions back.
	err := svc.DeleteCityFromRoute(context.Background(), 1, 3)
	assert.ErrorIs(t, err, utils.ErrNoRouteBetweenCities)

	assert.Equal(t, [][2]uint{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, pathCities(t, svc, 1))
}

func TestDeleteCityNotOnRoute(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	err := svc.DeleteCityFromRoute(context.Background(), 1, 5)
	assert.ErrorIs(t, err, utils.ErrCityNotOnRoute)
}

func TestDeleteCityEmptyRoute(t *testing.T) {
	_, _, _, svc := newRouteFixture(t)
	err := svc.DeleteCityFromRoute(context.Background(), 1, 2)
	assert.ErrorIs(t, err, utils.ErrRouteEmpty)
}

func TestChangeTransportPreservesSchedule(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	abTrain := dir.seed(1, 2, dbm.TransportTrain)
	abPlane := dir.seed(1, 2, dbm.TransportPlane)
	leg := addLeg(t, legs, abTrain.ID, 0, dbm.CategoryOwn)

	view, err := svc.ChangeTransport(context.Background(), abTrain.ID, leg.ID, dbm.TransportPlane)
	require.NoError(t, err)
	require.NotNil(t, view)

	assert.Equal(t, abPlane.ID, view.DirectoryLegID)
	assert.Equal(t, string(dbm.TransportPlane), view.Transport)
	assert.Equal(t, uint(1), view.DepartureCityID)
	assert.Equal(t, uint(2), view.ArrivalCityID)
	// The schedule is untouched, down to the exact instants.
	assert.Equal(t, leg.StartTime, view.StartTime)
	assert.Equal(t, leg.EndTime, view.EndTime)
	assert.Equal(t, string(dbm.CategoryOwn), view.Category)
}

func TestChangeTransportNoAlternativeLeavesLegUnchanged(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	abTrain := dir.seed(1, 2, dbm.TransportTrain)
	leg := addLeg(t, legs, abTrain.ID, 0, dbm.CategoryOwn)

	_, err := svc.ChangeTransport(context.Background(), abTrain.ID, leg.ID, dbm.TransportFerry)
	assert.ErrorIs(t, err, utils.ErrDirectoryLegNotFound)

	unchanged, err := svc.GetByID(context.Background(), leg.ID)
	require.NoError(t, err)
	assert.Equal(t, abTrain.ID, unchanged.DirectoryLegID)
}

func TestChangeTransportUnknownLeg(t *testing.T) {
	dir, _, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)

	_, err := svc.ChangeTransport(context.Background(), ab.ID, 99, dbm.TransportPlane)
	assert.ErrorIs(t, err, utils.ErrRouteLegNotFound)
}

func TestCreateLegValidatesReferences(t *testing.T) {
	dir, _, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)

	_, err := svc.Create(context.Background(), 99, 1, baseTime, baseTime.Add(time.Hour), dbm.CategoryOwn)
	assert.ErrorIs(t, err, utils.ErrDirectoryLegNotFound)

	_, err = svc.Create(context.Background(), ab.ID, 99, baseTime, baseTime.Add(time.Hour), dbm.CategoryOwn)
	assert.ErrorIs(t, err, utils.ErrTravelNotFound)

	_, err = svc.Create(context.Background(), ab.ID, 1, baseTime.Add(time.Hour), baseTime, dbm.CategoryOwn)
	assert.ErrorIs(t, err, utils.ErrInvariantViolation)

	leg, err := svc.Create(context.Background(), ab.ID, 1, baseTime, baseTime.Add(time.Hour), dbm.CategoryOwn)
	require.NoError(t, err)
	assert.NotZero(t, leg.ID)
}

func TestExtendLeg(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportBus)
	leg := addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)

	_, err := svc.ExtendLeg(context.Background(), leg.ID, leg.EndTime.Add(-time.Minute))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	newEnd := leg.EndTime.Add(4 * time.Hour)
	extended, err := svc.ExtendLeg(context.Background(), leg.ID, newEnd)
	require.NoError(t, err)
	assert.Equal(t, newEnd, extended.EndTime)
	assert.Equal(t, leg.StartTime, extended.StartTime)
}

func TestConcurrentMutationsStaySerialized(t *testing.T) {
	dir, legs, _, svc := newRouteFixture(t)
	ab := dir.seed(1, 2, dbm.TransportTrain)
	bc := dir.seed(2, 3, dbm.TransportTrain)
	addLeg(t, legs, ab.ID, 0, dbm.CategoryOwn)
	_ = bc

	// Fire the same splice from many goroutines. Each run re-reads the path
	// under the travel's mutex, so every insert lands on a consistent view
	// and the final leg count is exact.
	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.InsertCityBetween(context.Background(), 1, 3, 2, dbm.TransportTrain)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	views, err := svc.GetOrderedPath(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, views, 1+workers)
}
