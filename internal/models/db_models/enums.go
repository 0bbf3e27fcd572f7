package db_models

// Transport is the mode a directory leg is scheduled for.
type Transport string

const (
	TransportBus   Transport = "Bus"
	TransportPlane Transport = "Plane"
	TransportCar   Transport = "Car"
	TransportFerry Transport = "Ferry"
	TransportTrain Transport = "Train"
)

func (t Transport) Valid() bool {
	switch t {
	case TransportBus, TransportPlane, TransportCar, TransportFerry, TransportTrain:
		return true
	}
	return false
}

// TravelStatus transitions only InProgress -> Completed or
// InProgress -> Cancelled.
type TravelStatus string

const (
	TravelInProgress TravelStatus = "InProgress"
	TravelCompleted  TravelStatus = "Completed"
	TravelCancelled  TravelStatus = "Cancelled"
)

func (s TravelStatus) Valid() bool {
	switch s {
	case TravelInProgress, TravelCompleted, TravelCancelled:
		return true
	}
	return false
}

// LegCategory classifies who built a route leg.
type LegCategory string

const (
	CategoryAuthored    LegCategory = "Authored"
	CategoryRecommended LegCategory = "Recommended"
	CategoryOwn         LegCategory = "Own"
)

func (c LegCategory) Valid() bool {
	switch c {
	case CategoryAuthored, CategoryRecommended, CategoryOwn:
		return true
	}
	return false
}

type EventType string

const (
	EventMuseum     EventType = "Museum"
	EventConcert    EventType = "Concert"
	EventExhibition EventType = "Exhibition"
	EventFestival   EventType = "Festival"
	EventSights     EventType = "Sights"
	EventWalk       EventType = "Walk"
)

func (e EventType) Valid() bool {
	switch e {
	case EventMuseum, EventConcert, EventExhibition, EventFestival, EventSights, EventWalk:
		return true
	}
	return false
}

type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "Hotel"
	AccommodationHostel    AccommodationType = "Hostel"
	AccommodationApartment AccommodationType = "Apartment"
)

func (a AccommodationType) Valid() bool {
	switch a {
	case AccommodationHotel, AccommodationHostel, AccommodationApartment:
		return true
	}
	return false
}
