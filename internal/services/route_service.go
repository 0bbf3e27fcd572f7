package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripline/internal/models/db_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

// DefaultSpliceDuration is the synthetic length given to legs the engine
// creates on its own: splice-inserted legs and bridge legs. The caller never
// supplies a duration for those.
const DefaultSpliceDuration = 2 * time.Hour

// RouteServiceInterface is the path engine. A travel's legs form a path
// through the city graph; the engine re-derives the time-ordered path from
// storage on every call and supports three structural edits on it. Each edit
// runs inside one storage transaction while holding the travel's mutex, so a
// failed step leaves the path untouched and two edits to the same travel
// never interleave.
type RouteServiceInterface interface {
	GetOrderedPath(ctx context.Context, travelID uint) ([]response_models.RouteLegView, error)
	InsertCityBetween(ctx context.Context, travelID, newCityID, afterCityID uint, transport db_models.Transport) error
	DeleteCityFromRoute(ctx context.Context, travelID, cityID uint) error
	ChangeTransport(ctx context.Context, directoryLegID, routeLegID uint, newTransport db_models.Transport) (*response_models.RouteLegView, error)

	GetByID(ctx context.Context, legID uint) (*db_models.RouteLeg, error)
	GetList(ctx context.Context) ([]db_models.RouteLeg, error)
	Create(ctx context.Context, directoryLegID, travelID uint, start, end time.Time, category db_models.LegCategory) (*db_models.RouteLeg, error)
	Delete(ctx context.Context, legID uint) error
	ExtendLeg(ctx context.Context, legID uint, newEnd time.Time) (*db_models.RouteLeg, error)
	GetByCategory(ctx context.Context, category db_models.LegCategory) ([]response_models.RouteLegView, error)
	GetForUser(ctx context.Context, userID uint, status db_models.TravelStatus, category db_models.LegCategory) ([]response_models.RouteLegView, error)
}

type RouteService struct {
	legRepo    repositories.RouteLegRepository
	dirRepo    repositories.DirectoryRepository
	travelRepo repositories.TravelRepository
	logger     *zap.Logger

	travelMu       *utils.KeyedMutex
	spliceDuration time.Duration
}

func NewRouteService(
	legRepo repositories.RouteLegRepository,
	dirRepo repositories.DirectoryRepository,
	travelRepo repositories.TravelRepository,
	logger *zap.Logger,
) RouteServiceInterface {
	return &RouteService{
		legRepo:        legRepo,
		dirRepo:        dirRepo,
		travelRepo:     travelRepo,
		logger:         logger,
		travelMu:       utils.NewKeyedMutex(),
		spliceDuration: DefaultSpliceDuration,
	}
}

// anchorMatch names the two splice strategies: an arrival-city hit appends a
// new leg after the anchor, a departure-city hit rewrites the anchor in
// place. Arrival matches are scanned first across the whole path, so exactly
// one branch fires for a given path.
type anchorMatch struct {
	leg   *db_models.RouteLeg
	after bool
}

func findAnchor(path []db_models.RouteLeg, cityID uint) *anchorMatch {
	for i := range path {
		if path[i].ArrivalCityID() == cityID {
			return &anchorMatch{leg: &path[i], after: true}
		}
	}
	for i := range path {
		if path[i].DepartureCityID() == cityID {
			return &anchorMatch{leg: &path[i], after: false}
		}
	}
	return nil
}

func (s *RouteService) GetOrderedPath(ctx context.Context, travelID uint) ([]response_models.RouteLegView, error) {
	path, err := s.legRepo.GetOrderedByTravel(ctx, travelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	views := make([]response_models.RouteLegView, 0, len(path))
	for i := range path {
		var prev *db_models.RouteLeg
		if i > 0 {
			prev = &path[i-1]
		}
		views = append(views, buildLegView(&path[i], prev))
	}
	return views, nil
}

// InsertCityBetween splices newCityID into the travel's path next to
// afterCityID. An arrival-city anchor appends a new leg departing at the
// anchor's end; a departure-city anchor is rewritten in place to depart from
// the new city instead.
func (s *RouteService) InsertCityBetween(ctx context.Context, travelID, newCityID, afterCityID uint, transport db_models.Transport) error {
	if !transport.Valid() {
		return fmt.Errorf("%w: unknown transport %q", utils.ErrInvalidInput, transport)
	}

	s.travelMu.Lock(travelID)
	defer s.travelMu.Unlock(travelID)

	err := s.legRepo.Transaction(ctx, func(store repositories.RouteLegRepository) error {
		path, err := store.GetOrderedByTravel(ctx, travelID)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if len(path) == 0 {
			return utils.ErrRouteEmpty
		}

		anchor := findAnchor(path, afterCityID)
		if anchor == nil {
			return utils.ErrCityNotOnRoute
		}

		if anchor.after {
			dirLeg, err := s.lookupDirectory(ctx, afterCityID, newCityID, transport)
			if err != nil {
				return err
			}
			leg, err := db_models.NewRouteLeg(
				dirLeg.ID,
				travelID,
				anchor.leg.EndTime,
				anchor.leg.EndTime.Add(s.spliceDuration),
				anchor.leg.Category,
			)
			if err != nil {
				return err
			}
			if _, err := store.Add(ctx, leg); err != nil {
				return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			return nil
		}

		// Departure-city anchor: the anchor leg now departs from the new
		// city, its end time recomputed from its start.
		dirLeg, err := s.lookupDirectory(ctx, newCityID, afterCityID, transport)
		if err != nil {
			return err
		}
		anchor.leg.DirectoryLegID = dirLeg.ID
		anchor.leg.EndTime = anchor.leg.StartTime.Add(s.spliceDuration)
		return store.Update(ctx, anchor.leg)
	})

	s.logOutcome("insert_city_between", travelID, err)
	return err
}

// DeleteCityFromRoute removes every leg touching cityID and, when the city
// was interior, bridges the gap with one synthesized leg between the
// departure city of the leg before the removal window and the arrival city
// of the leg after it.
func (s *RouteService) DeleteCityFromRoute(ctx context.Context, travelID, cityID uint) error {
	s.travelMu.Lock(travelID)
	defer s.travelMu.Unlock(travelID)

	err := s.legRepo.Transaction(ctx, func(store repositories.RouteLegRepository) error {
		path, err := store.GetOrderedByTravel(ctx, travelID)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if len(path) == 0 {
			return utils.ErrRouteEmpty
		}

		var removed []int
		for i := range path {
			if path[i].TouchesCity(cityID) {
				removed = append(removed, i)
			}
		}
		if len(removed) == 0 {
			return utils.ErrCityNotOnRoute
		}

		var prevCityID, nextCityID uint
		if first := removed[0]; first > 0 {
			prevCityID = path[first-1].DepartureCityID()
		}
		if last := removed[len(removed)-1]; last < len(path)-1 {
			nextCityID = path[last+1].ArrivalCityID()
		}

		// Reverse index order so earlier deletions do not shift later ones.
		for i := len(removed) - 1; i >= 0; i-- {
			if err := store.Remove(ctx, path[removed[i]].ID); err != nil {
				return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
		}

		// An endpoint removal just shortens the path; interior removals get
		// one bridge leg in the first removed leg's slot.
		if prevCityID == 0 || nextCityID == 0 {
			return nil
		}

		firstRemoved := &path[removed[0]]
		if firstRemoved.DirectoryLeg == nil {
			return fmt.Errorf("%w: removed leg has no directory reference", utils.ErrInvariantViolation)
		}

		dirLeg, err := s.dirRepo.LookupByCities(ctx, prevCityID, nextCityID, firstRemoved.DirectoryLeg.Transport)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if dirLeg == nil {
			return utils.ErrNoRouteBetweenCities
		}

		bridge, err := db_models.NewRouteLeg(
			dirLeg.ID,
			travelID,
			firstRemoved.StartTime,
			firstRemoved.StartTime.Add(s.spliceDuration),
			s.remainingCategory(path, removed),
		)
		if err != nil {
			return err
		}
		if _, err := store.Add(ctx, bridge); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		return nil
	})

	s.logOutcome("delete_city_from_route", travelID, err)
	return err
}

// remainingCategory picks the category tag for a bridge leg: the first leg
// that survives the removal, falling back to the first removed leg when the
// whole former prefix is gone.
func (s *RouteService) remainingCategory(path []db_models.RouteLeg, removed []int) db_models.LegCategory {
	removedSet := make(map[int]struct{}, len(removed))
	for _, i := range removed {
		removedSet[i] = struct{}{}
	}
	for i := range path {
		if _, gone := removedSet[i]; !gone {
			return path[i].Category
		}
	}
	return path[removed[0]].Category
}

// ChangeTransport swaps a route leg's directory reference for the same city
// pair under another transport mode. The leg keeps its chain position and
// its timestamps; nothing else changes.
func (s *RouteService) ChangeTransport(ctx context.Context, directoryLegID, routeLegID uint, newTransport db_models.Transport) (*response_models.RouteLegView, error) {
	if !newTransport.Valid() {
		return nil, fmt.Errorf("%w: unknown transport %q", utils.ErrInvalidInput, newTransport)
	}

	leg, err := s.legRepo.GetByID(ctx, routeLegID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrRouteLegNotFound
	}

	s.travelMu.Lock(leg.TravelID)
	defer s.travelMu.Unlock(leg.TravelID)

	var view *response_models.RouteLegView
	err = s.legRepo.Transaction(ctx, func(store repositories.RouteLegRepository) error {
		oldDir, err := s.dirRepo.GetByID(ctx, directoryLegID)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if oldDir == nil || oldDir.DepartureCityID == 0 || oldDir.ArrivalCityID == 0 {
			return utils.ErrDirectoryLegNotFound
		}

		newDir, err := s.lookupDirectory(ctx, oldDir.DepartureCityID, oldDir.ArrivalCityID, newTransport)
		if err != nil {
			return err
		}

		leg.DirectoryLegID = newDir.ID
		if err := store.Update(ctx, leg); err != nil {
			return err
		}

		refreshed, err := store.GetByID(ctx, routeLegID)
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if refreshed == nil {
			return utils.ErrRouteLegNotFound
		}
		v := buildLegView(refreshed, nil)
		view = &v
		return nil
	})

	s.logOutcome("change_transport", leg.TravelID, err)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *RouteService) lookupDirectory(ctx context.Context, fromCityID, toCityID uint, transport db_models.Transport) (*db_models.DirectoryLeg, error) {
	dirLeg, err := s.dirRepo.LookupByCities(ctx, fromCityID, toCityID, transport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if dirLeg == nil {
		return nil, utils.ErrDirectoryLegNotFound
	}
	return dirLeg, nil
}

func (s *RouteService) GetByID(ctx context.Context, legID uint) (*db_models.RouteLeg, error) {
	leg, err := s.legRepo.GetByID(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrRouteLegNotFound
	}
	return leg, nil
}

func (s *RouteService) GetList(ctx context.Context) ([]db_models.RouteLeg, error) {
	legs, err := s.legRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return legs, nil
}

func (s *RouteService) Create(ctx context.Context, directoryLegID, travelID uint, start, end time.Time, category db_models.LegCategory) (*db_models.RouteLeg, error) {
	dirLeg, err := s.dirRepo.GetByID(ctx, directoryLegID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if dirLeg == nil {
		return nil, utils.ErrDirectoryLegNotFound
	}
	travel, err := s.travelRepo.GetByID(ctx, travelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if travel == nil {
		return nil, utils.ErrTravelNotFound
	}

	leg, err := db_models.NewRouteLeg(directoryLegID, travelID, start, end, category)
	if err != nil {
		return nil, err
	}
	created, err := s.legRepo.Add(ctx, leg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return created, nil
}

func (s *RouteService) Delete(ctx context.Context, legID uint) error {
	if err := s.legRepo.Remove(ctx, legID); err != nil {
		return err
	}
	return nil
}

// ExtendLeg pushes a leg's end time out; the new end must be after the
// current one.
func (s *RouteService) ExtendLeg(ctx context.Context, legID uint, newEnd time.Time) (*db_models.RouteLeg, error) {
	leg, err := s.legRepo.GetByID(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return nil, utils.ErrRouteLegNotFound
	}
	if !newEnd.After(leg.EndTime) {
		return nil, fmt.Errorf("%w: new end time must be after the current end time", utils.ErrInvalidInput)
	}

	leg.EndTime = newEnd
	if err := s.legRepo.Update(ctx, leg); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, legID)
}

func (s *RouteService) GetByCategory(ctx context.Context, category db_models.LegCategory) ([]response_models.RouteLegView, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, category)
	}
	legs, err := s.legRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return buildLegViews(legs), nil
}

func (s *RouteService) GetForUser(ctx context.Context, userID uint, status db_models.TravelStatus, category db_models.LegCategory) ([]response_models.RouteLegView, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown travel status %q", utils.ErrInvalidInput, status)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, category)
	}
	legs, err := s.legRepo.GetByUserStatusCategory(ctx, userID, status, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return buildLegViews(legs), nil
}

func (s *RouteService) logOutcome(operation string, travelID uint, err error) {
	if s.logger == nil {
		return
	}
	if err != nil {
		s.logger.Warn("route mutation failed",
			zap.String("operation", operation),
			zap.Uint("travel_id", travelID),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("route mutation applied",
		zap.String("operation", operation),
		zap.Uint("travel_id", travelID),
	)
}

func buildLegViews(legs []db_models.RouteLeg) []response_models.RouteLegView {
	views := make([]response_models.RouteLegView, 0, len(legs))
	for i := range legs {
		views = append(views, buildLegView(&legs[i], nil))
	}
	return views
}

// buildLegView denormalizes a leg for display. Contiguity with prev is
// informational only; disconnected legs stay in the path.
func buildLegView(leg *db_models.RouteLeg, prev *db_models.RouteLeg) response_models.RouteLegView {
	view := response_models.RouteLegView{
		ID:             leg.ID,
		TravelID:       leg.TravelID,
		DirectoryLegID: leg.DirectoryLegID,
		StartTime:      leg.StartTime,
		EndTime:        leg.EndTime,
		Category:       string(leg.Category),
		Contiguous:     true,
	}
	if dir := leg.DirectoryLeg; dir != nil {
		view.DepartureCityID = dir.DepartureCityID
		view.ArrivalCityID = dir.ArrivalCityID
		view.Transport = string(dir.Transport)
		view.Fare = dir.Fare
		view.Distance = dir.Distance
		if dir.DepartureCity != nil {
			view.DepartureCityName = dir.DepartureCity.Name
		}
		if dir.ArrivalCity != nil {
			view.ArrivalCityName = dir.ArrivalCity.Name
		}
	}
	if prev != nil {
		view.Contiguous = prev.ArrivalCityID() == leg.DepartureCityID()
	}
	return view
}
