package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripline/internal/models/db_models"
	"tripline/internal/models/response_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

type TravelServiceInterface interface {
	GetByID(ctx context.Context, travelID uint) (*db_models.Travel, error)
	GetList(ctx context.Context) ([]db_models.Travel, error)
	Create(ctx context.Context, userIDs []uint) (*db_models.Travel, error)
	Delete(ctx context.Context, travelID uint) error

	Complete(ctx context.Context, travelID uint) error
	Cancel(ctx context.Context, travelID uint) error

	LinkUsers(ctx context.Context, travelID uint, userIDs []uint) error
	LinkEntertainments(ctx context.Context, travelID uint, entertainmentIDs []uint) error
	LinkAccommodations(ctx context.Context, travelID uint, accommodationIDs []uint) error

	GetUsersByTravel(ctx context.Context, travelID uint) ([]db_models.User, error)
	GetEntertainmentsByTravel(ctx context.Context, travelID uint) ([]db_models.Entertainment, error)
	GetAccommodationsByTravel(ctx context.Context, travelID uint) ([]db_models.Accommodation, error)
	GetTravelsForUser(ctx context.Context, userID uint, status db_models.TravelStatus) ([]response_models.TravelResponse, error)
	Search(ctx context.Context, userID uint, status db_models.TravelStatus) ([]response_models.TravelResponse, error)
	GetTravelByRouteLeg(ctx context.Context, legID uint) (*db_models.Travel, error)

	JoinTravel(ctx context.Context, legID, userID uint) error
}

type TravelService struct {
	travelRepo repositories.TravelRepository
	legRepo    repositories.RouteLegRepository
	userRepo   repositories.UserRepository
	logger     *zap.Logger
}

func NewTravelService(
	travelRepo repositories.TravelRepository,
	legRepo repositories.RouteLegRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) TravelServiceInterface {
	return &TravelService{travelRepo: travelRepo, legRepo: legRepo, userRepo: userRepo, logger: logger}
}

func (s *TravelService) GetByID(ctx context.Context, travelID uint) (*db_models.Travel, error) {
	travel, err := s.travelRepo.GetByID(ctx, travelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if travel == nil {
		return nil, utils.ErrTravelNotFound
	}
	return travel, nil
}

func (s *TravelService) GetList(ctx context.Context) ([]db_models.Travel, error) {
	travels, err := s.travelRepo.GetList(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return travels, nil
}

// Create starts a travel in progress with its initial participants. A travel
// is never persisted without at least one participant.
func (s *TravelService) Create(ctx context.Context, userIDs []uint) (*db_models.Travel, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: travel requires at least one participant", utils.ErrInvariantViolation)
	}
	users := make([]db_models.User, 0, len(userIDs))
	for _, id := range userIDs {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if user == nil {
			return nil, utils.ErrUserNotFound
		}
		users = append(users, *user)
	}

	travel := &db_models.Travel{Status: db_models.TravelInProgress, Users: users}
	created, err := s.travelRepo.Add(ctx, travel)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TravelService) Delete(ctx context.Context, travelID uint) error {
	return s.travelRepo.Delete(ctx, travelID)
}

func (s *TravelService) Complete(ctx context.Context, travelID uint) error {
	return s.transition(ctx, travelID, db_models.TravelCompleted)
}

func (s *TravelService) Cancel(ctx context.Context, travelID uint) error {
	return s.transition(ctx, travelID, db_models.TravelCancelled)
}

// transition enforces the only legal moves: InProgress to Completed or
// Cancelled.
func (s *TravelService) transition(ctx context.Context, travelID uint, target db_models.TravelStatus) error {
	travel, err := s.GetByID(ctx, travelID)
	if err != nil {
		return err
	}
	if travel.Status != db_models.TravelInProgress {
		return fmt.Errorf("%w: travel is %s", utils.ErrInvalidStatusTransition, travel.Status)
	}
	if err := s.travelRepo.UpdateStatus(ctx, travelID, target); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("travel status changed",
			zap.Uint("travel_id", travelID),
			zap.String("status", string(target)),
		)
	}
	return nil
}

func (s *TravelService) LinkUsers(ctx context.Context, travelID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("%w: travel requires at least one participant", utils.ErrInvariantViolation)
	}
	if _, err := s.GetByID(ctx, travelID); err != nil {
		return err
	}
	if err := s.travelRepo.LinkUsers(ctx, travelID, userIDs); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TravelService) LinkEntertainments(ctx context.Context, travelID uint, entertainmentIDs []uint) error {
	if _, err := s.GetByID(ctx, travelID); err != nil {
		return err
	}
	if err := s.travelRepo.LinkEntertainments(ctx, travelID, entertainmentIDs); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TravelService) LinkAccommodations(ctx context.Context, travelID uint, accommodationIDs []uint) error {
	if _, err := s.GetByID(ctx, travelID); err != nil {
		return err
	}
	if err := s.travelRepo.LinkAccommodations(ctx, travelID, accommodationIDs); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TravelService) GetUsersByTravel(ctx context.Context, travelID uint) ([]db_models.User, error) {
	travel, err := s.GetByID(ctx, travelID)
	if err != nil {
		return nil, err
	}
	return travel.Users, nil
}

func (s *TravelService) GetEntertainmentsByTravel(ctx context.Context, travelID uint) ([]db_models.Entertainment, error) {
	travel, err := s.GetByID(ctx, travelID)
	if err != nil {
		return nil, err
	}
	return travel.Entertainments, nil
}

func (s *TravelService) GetAccommodationsByTravel(ctx context.Context, travelID uint) ([]db_models.Accommodation, error) {
	travel, err := s.GetByID(ctx, travelID)
	if err != nil {
		return nil, err
	}
	return travel.Accommodations, nil
}

func (s *TravelService) GetTravelsForUser(ctx context.Context, userID uint, status db_models.TravelStatus) ([]response_models.TravelResponse, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown travel status %q", utils.ErrInvalidInput, status)
	}
	travels, err := s.travelRepo.GetTravelsForUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.TravelResponse, 0, len(travels))
	for i := range travels {
		out = append(out, buildTravelResponse(&travels[i]))
	}
	return out, nil
}

// Search lists travels matching the given filters. Both filters are
// optional: userID 0 means any participant, an empty status means any status.
func (s *TravelService) Search(ctx context.Context, userID uint, status db_models.TravelStatus) ([]response_models.TravelResponse, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown travel status %q", utils.ErrInvalidInput, status)
	}
	travels, err := s.travelRepo.Search(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.TravelResponse, 0, len(travels))
	for i := range travels {
		out = append(out, buildTravelResponse(&travels[i]))
	}
	return out, nil
}

func (s *TravelService) GetTravelByRouteLeg(ctx context.Context, legID uint) (*db_models.Travel, error) {
	travel, err := s.travelRepo.GetTravelByRouteLeg(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if travel == nil {
		return nil, utils.ErrRouteLegNotFound
	}
	return travel, nil
}

// JoinTravel adds a user to the travel owning the leg and re-tags the leg as
// user-built. Double joins are rejected.
func (s *TravelService) JoinTravel(ctx context.Context, legID, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	leg, err := s.legRepo.GetByID(ctx, legID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if leg == nil {
		return utils.ErrRouteLegNotFound
	}

	travel, err := s.GetByID(ctx, leg.TravelID)
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(travel.Users)+1)
	for _, u := range travel.Users {
		if u.ID == userID {
			return utils.ErrAlreadyJoined
		}
		ids = append(ids, u.ID)
	}
	ids = append(ids, userID)

	if err := s.travelRepo.LinkUsers(ctx, travel.ID, ids); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	leg.Category = db_models.CategoryOwn
	if err := s.legRepo.Update(ctx, leg); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("user joined travel",
			zap.Uint("travel_id", travel.ID),
			zap.Uint("user_id", userID),
		)
	}
	return nil
}

func buildTravelResponse(travel *db_models.Travel) response_models.TravelResponse {
	resp := response_models.TravelResponse{
		ID:               travel.ID,
		Status:           string(travel.Status),
		UserIDs:          make([]uint, 0, len(travel.Users)),
		EntertainmentIDs: make([]uint, 0, len(travel.Entertainments)),
		AccommodationIDs: make([]uint, 0, len(travel.Accommodations)),
	}
	for _, u := range travel.Users {
		resp.UserIDs = append(resp.UserIDs, u.ID)
	}
	for _, e := range travel.Entertainments {
		resp.EntertainmentIDs = append(resp.EntertainmentIDs, e.ID)
	}
	for _, a := range travel.Accommodations {
		resp.AccommodationIDs = append(resp.AccommodationIDs, a.ID)
	}
	return resp
}
