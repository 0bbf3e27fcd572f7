package services

import (
	"context"
	"sort"
	"sync"

	dbm "tripline/internal/models/db_models"
	"tripline/internal/repositories"
	"tripline/pkg/utils"
)

// In-memory stands-ins for the gorm repositories. They mirror the storage
// contract the services rely on: not-found reads return (nil, nil), ordered
// reads sort by start time, and Transaction restores a snapshot when the
// callback fails.

type fakeDirRepo struct {
	mu     sync.Mutex
	legs   map[uint]*dbm.DirectoryLeg
	cities map[uint]*dbm.City
	nextID uint
}

func newFakeDirRepo() *fakeDirRepo {
	return &fakeDirRepo{
		legs:   make(map[uint]*dbm.DirectoryLeg),
		cities: make(map[uint]*dbm.City),
		nextID: 1,
	}
}

func (f *fakeDirRepo) addCity(id uint, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cities[id] = &dbm.City{ID: id, Name: name}
}

func (f *fakeDirRepo) seed(from, to uint, transport dbm.Transport) *dbm.DirectoryLeg {
	f.mu.Lock()
	defer f.mu.Unlock()
	leg := &dbm.DirectoryLeg{
		ID:              f.nextID,
		Transport:       transport,
		Fare:            100,
		Distance:        100,
		DepartureCityID: from,
		ArrivalCityID:   to,
	}
	f.nextID++
	f.legs[leg.ID] = leg
	return leg
}

func (f *fakeDirRepo) load(leg *dbm.DirectoryLeg) *dbm.DirectoryLeg {
	out := *leg
	if city, ok := f.cities[leg.DepartureCityID]; ok {
		c := *city
		out.DepartureCity = &c
	}
	if city, ok := f.cities[leg.ArrivalCityID]; ok {
		c := *city
		out.ArrivalCity = &c
	}
	return &out
}

func (f *fakeDirRepo) GetByID(_ context.Context, legID uint) (*dbm.DirectoryLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	leg, ok := f.legs[legID]
	if !ok {
		return nil, nil
	}
	return f.load(leg), nil
}

func (f *fakeDirRepo) GetList(_ context.Context) ([]dbm.DirectoryLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.DirectoryLeg, 0, len(f.legs))
	for _, leg := range f.legs {
		out = append(out, *f.load(leg))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDirRepo) Add(_ context.Context, leg *dbm.DirectoryLeg) (*dbm.DirectoryLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	leg.ID = f.nextID
	f.nextID++
	stored := *leg
	f.legs[leg.ID] = &stored
	return leg, nil
}

func (f *fakeDirRepo) Update(_ context.Context, leg *dbm.DirectoryLeg) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.legs[leg.ID]; !ok {
		return utils.ErrDirectoryLegNotFound
	}
	stored := *leg
	f.legs[leg.ID] = &stored
	return nil
}

func (f *fakeDirRepo) Delete(_ context.Context, legID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.legs[legID]; !ok {
		return utils.ErrDirectoryLegNotFound
	}
	delete(f.legs, legID)
	return nil
}

func (f *fakeDirRepo) DeleteByCity(_ context.Context, cityID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, leg := range f.legs {
		if leg.DepartureCityID == cityID || leg.ArrivalCityID == cityID {
			delete(f.legs, id)
		}
	}
	return nil
}

func (f *fakeDirRepo) LookupByCities(_ context.Context, fromCityID, toCityID uint, transport dbm.Transport) (*dbm.DirectoryLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint, 0, len(f.legs))
	for id := range f.legs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		leg := f.legs[id]
		if leg.DepartureCityID == fromCityID && leg.ArrivalCityID == toCityID && leg.Transport == transport {
			return f.load(leg), nil
		}
	}
	return nil, nil
}

func (f *fakeDirRepo) ChangeTransport(ctx context.Context, legID uint, newTransport dbm.Transport) (*dbm.DirectoryLeg, error) {
	existing, err := f.GetByID(ctx, legID)
	if err != nil || existing == nil {
		return nil, err
	}
	return f.LookupByCities(ctx, existing.DepartureCityID, existing.ArrivalCityID, newTransport)
}

type fakeLegRepo struct {
	mu     sync.Mutex
	legs   map[uint]*dbm.RouteLeg
	nextID uint
	dir    *fakeDirRepo
}

func newFakeLegRepo(dir *fakeDirRepo) *fakeLegRepo {
	return &fakeLegRepo{legs: make(map[uint]*dbm.RouteLeg), nextID: 1, dir: dir}
}

func (f *fakeLegRepo) snapshot() map[uint]*dbm.RouteLeg {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[uint]*dbm.RouteLeg, len(f.legs))
	for id, leg := range f.legs {
		cp := *leg
		out[id] = &cp
	}
	return out
}

func (f *fakeLegRepo) Transaction(_ context.Context, fn func(repositories.RouteLegRepository) error) error {
	before := f.snapshot()
	nextBefore := f.nextID
	if err := fn(f); err != nil {
		f.mu.Lock()
		f.legs = before
		f.nextID = nextBefore
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeLegRepo) load(leg *dbm.RouteLeg) *dbm.RouteLeg {
	out := *leg
	f.dir.mu.Lock()
	if dir, ok := f.dir.legs[leg.DirectoryLegID]; ok {
		out.DirectoryLeg = f.dir.load(dir)
	}
	f.dir.mu.Unlock()
	return &out
}

func (f *fakeLegRepo) Add(_ context.Context, leg *dbm.RouteLeg) (*dbm.RouteLeg, error) {
	if err := leg.Validate(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	leg.ID = f.nextID
	f.nextID++
	stored := *leg
	stored.DirectoryLeg = nil
	f.legs[leg.ID] = &stored
	return leg, nil
}

func (f *fakeLegRepo) Update(_ context.Context, leg *dbm.RouteLeg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.legs[leg.ID]
	if !ok {
		return utils.ErrRouteLegNotFound
	}
	stored.DirectoryLegID = leg.DirectoryLegID
	stored.StartTime = leg.StartTime
	stored.EndTime = leg.EndTime
	stored.Category = leg.Category
	return nil
}

func (f *fakeLegRepo) Remove(_ context.Context, legID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.legs[legID]; !ok {
		return utils.ErrRouteLegNotFound
	}
	delete(f.legs, legID)
	return nil
}

func (f *fakeLegRepo) RemoveByTravel(_ context.Context, travelID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, leg := range f.legs {
		if leg.TravelID == travelID {
			delete(f.legs, id)
		}
	}
	return nil
}

func (f *fakeLegRepo) GetByID(_ context.Context, legID uint) (*dbm.RouteLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	leg, ok := f.legs[legID]
	if !ok {
		return nil, nil
	}
	return f.load(leg), nil
}

func (f *fakeLegRepo) GetList(_ context.Context) ([]dbm.RouteLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.RouteLeg, 0, len(f.legs))
	for _, leg := range f.legs {
		out = append(out, *f.load(leg))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLegRepo) GetOrderedByTravel(_ context.Context, travelID uint) ([]dbm.RouteLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.RouteLeg, 0, len(f.legs))
	for _, leg := range f.legs {
		if leg.TravelID == travelID {
			out = append(out, *f.load(leg))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeLegRepo) GetByCity(_ context.Context, cityID uint) ([]dbm.RouteLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.RouteLeg, 0)
	for _, leg := range f.legs {
		loaded := f.load(leg)
		if loaded.TouchesCity(cityID) {
			out = append(out, *loaded)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLegRepo) GetByCategory(_ context.Context, category dbm.LegCategory) ([]dbm.RouteLeg, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.RouteLeg, 0)
	for _, leg := range f.legs {
		if leg.Category == category {
			out = append(out, *f.load(leg))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeLegRepo) GetByUserStatusCategory(_ context.Context, _ uint, _ dbm.TravelStatus, category dbm.LegCategory) ([]dbm.RouteLeg, error) {
	return f.GetByCategory(context.Background(), category)
}

type fakeTravelRepo struct {
	mu      sync.Mutex
	travels map[uint]*dbm.Travel
	nextID  uint
	legs    *fakeLegRepo
}

func newFakeTravelRepo(legs *fakeLegRepo) *fakeTravelRepo {
	return &fakeTravelRepo{travels: make(map[uint]*dbm.Travel), nextID: 1, legs: legs}
}

func (f *fakeTravelRepo) seed(id uint, status dbm.TravelStatus, users ...dbm.User) *dbm.Travel {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel := &dbm.Travel{ID: id, Status: status, Users: users}
	f.travels[id] = travel
	if id >= f.nextID {
		f.nextID = id + 1
	}
	return travel
}

func (f *fakeTravelRepo) GetByID(_ context.Context, travelID uint) (*dbm.Travel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel, ok := f.travels[travelID]
	if !ok {
		return nil, nil
	}
	cp := *travel
	return &cp, nil
}

func (f *fakeTravelRepo) GetList(_ context.Context) ([]dbm.Travel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.Travel, 0, len(f.travels))
	for _, t := range f.travels {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTravelRepo) Add(_ context.Context, travel *dbm.Travel) (*dbm.Travel, error) {
	if err := travel.Validate(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	travel.ID = f.nextID
	f.nextID++
	cp := *travel
	f.travels[travel.ID] = &cp
	return travel, nil
}

func (f *fakeTravelRepo) UpdateStatus(_ context.Context, travelID uint, status dbm.TravelStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel, ok := f.travels[travelID]
	if !ok {
		return utils.ErrTravelNotFound
	}
	travel.Status = status
	return nil
}

func (f *fakeTravelRepo) Delete(ctx context.Context, travelID uint) error {
	f.mu.Lock()
	_, ok := f.travels[travelID]
	delete(f.travels, travelID)
	f.mu.Unlock()
	if !ok {
		return utils.ErrTravelNotFound
	}
	if f.legs != nil {
		return f.legs.RemoveByTravel(ctx, travelID)
	}
	return nil
}

func (f *fakeTravelRepo) LinkUsers(_ context.Context, travelID uint, userIDs []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel, ok := f.travels[travelID]
	if !ok {
		return utils.ErrTravelNotFound
	}
	users := make([]dbm.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, dbm.User{ID: id})
	}
	travel.Users = users
	return nil
}

func (f *fakeTravelRepo) LinkEntertainments(_ context.Context, travelID uint, ids []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel, ok := f.travels[travelID]
	if !ok {
		return utils.ErrTravelNotFound
	}
	items := make([]dbm.Entertainment, 0, len(ids))
	for _, id := range ids {
		items = append(items, dbm.Entertainment{ID: id})
	}
	travel.Entertainments = items
	return nil
}

func (f *fakeTravelRepo) LinkAccommodations(_ context.Context, travelID uint, ids []uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	travel, ok := f.travels[travelID]
	if !ok {
		return utils.ErrTravelNotFound
	}
	items := make([]dbm.Accommodation, 0, len(ids))
	for _, id := range ids {
		items = append(items, dbm.Accommodation{ID: id})
	}
	travel.Accommodations = items
	return nil
}

func (f *fakeTravelRepo) GetUsersByTravel(ctx context.Context, travelID uint) ([]dbm.User, error) {
	travel, err := f.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Users, nil
}

func (f *fakeTravelRepo) GetEntertainmentsByTravel(ctx context.Context, travelID uint) ([]dbm.Entertainment, error) {
	travel, err := f.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Entertainments, nil
}

func (f *fakeTravelRepo) GetAccommodationsByTravel(ctx context.Context, travelID uint) ([]dbm.Accommodation, error) {
	travel, err := f.GetByID(ctx, travelID)
	if err != nil || travel == nil {
		return nil, err
	}
	return travel.Accommodations, nil
}

func (f *fakeTravelRepo) GetTravelsForUser(_ context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.Travel, 0)
	for _, travel := range f.travels {
		if travel.Status != status {
			continue
		}
		for _, u := range travel.Users {
			if u.ID == userID {
				out = append(out, *travel)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTravelRepo) Search(_ context.Context, userID uint, status dbm.TravelStatus) ([]dbm.Travel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.Travel, 0)
	for _, travel := range f.travels {
		if status != "" && travel.Status != status {
			continue
		}
		if userID != 0 {
			member := false
			for _, u := range travel.Users {
				if u.ID == userID {
					member = true
					break
				}
			}
			if !member {
				continue
			}
		}
		out = append(out, *travel)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTravelRepo) GetTravelByRouteLeg(ctx context.Context, legID uint) (*dbm.Travel, error) {
	if f.legs == nil {
		return nil, nil
	}
	leg, err := f.legs.GetByID(ctx, legID)
	if err != nil || leg == nil {
		return nil, err
	}
	return f.GetByID(ctx, leg.TravelID)
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*dbm.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*dbm.User), nextID: 1}
}

func (f *fakeUserRepo) seed(id uint, login, email string) *dbm.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := &dbm.User{ID: id, FullName: login, Login: login, Email: email, Role: "user"}
	f.users[id] = user
	if id >= f.nextID {
		f.nextID = id + 1
	}
	return user
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID uint) (*dbm.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetList(_ context.Context) ([]dbm.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) FindByLogin(_ context.Context, login string) (*dbm.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*dbm.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Add(_ context.Context, user *dbm.User) (*dbm.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, utils.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *dbm.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return utils.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return utils.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

type fakeCityRepo struct {
	mu     sync.Mutex
	cities map[uint]*dbm.City
	nextID uint

	// Cascade targets and an injectable failure. A set cascadeErr makes
	// DeleteCascade fail before touching anything, the way a rolled-back
	// transaction leaves storage.
	dir        *fakeDirRepo
	legs       *fakeLegRepo
	cascadeErr error
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: make(map[uint]*dbm.City), nextID: 1}
}

func (f *fakeCityRepo) seed(id uint, name string) *dbm.City {
	f.mu.Lock()
	defer f.mu.Unlock()
	city := &dbm.City{ID: id, Name: name}
	f.cities[id] = city
	if id >= f.nextID {
		f.nextID = id + 1
	}
	return city
}

func (f *fakeCityRepo) GetByID(_ context.Context, cityID uint) (*dbm.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	city, ok := f.cities[cityID]
	if !ok {
		return nil, nil
	}
	cp := *city
	return &cp, nil
}

func (f *fakeCityRepo) GetList(_ context.Context) ([]dbm.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dbm.City, 0, len(f.cities))
	for _, c := range f.cities {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCityRepo) Add(_ context.Context, city *dbm.City) (*dbm.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cities {
		if c.Name == city.Name {
			return nil, utils.ErrDuplicateEntry
		}
	}
	city.ID = f.nextID
	f.nextID++
	cp := *city
	f.cities[city.ID] = &cp
	return city, nil
}

func (f *fakeCityRepo) Update(_ context.Context, city *dbm.City) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cities[city.ID]; !ok {
		return utils.ErrCityNotFound
	}
	cp := *city
	f.cities[city.ID] = &cp
	return nil
}

func (f *fakeCityRepo) Delete(_ context.Context, cityID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cities[cityID]; !ok {
		return utils.ErrCityNotFound
	}
	delete(f.cities, cityID)
	return nil
}

func (f *fakeCityRepo) DeleteCascade(ctx context.Context, cityID uint) (int64, error) {
	if f.cascadeErr != nil {
		return 0, f.cascadeErr
	}

	f.mu.Lock()
	if _, ok := f.cities[cityID]; !ok {
		f.mu.Unlock()
		return 0, utils.ErrCityNotFound
	}
	delete(f.cities, cityID)
	f.mu.Unlock()

	var legsRemoved int64
	if f.legs != nil {
		touching, err := f.legs.GetByCity(ctx, cityID)
		if err != nil {
			return 0, err
		}
		for i := range touching {
			if err := f.legs.Remove(ctx, touching[i].ID); err != nil {
				return 0, err
			}
		}
		legsRemoved = int64(len(touching))
	}
	if f.dir != nil {
		if err := f.dir.DeleteByCity(ctx, cityID); err != nil {
			return 0, err
		}
	}
	return legsRemoved, nil
}
