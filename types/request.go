package types

import (
	"fmt"
	"time"

	"github.com/PackPilot/packpilot-backend/errors"
)

// TripPurpose distinguishes business trips from leisure trips.
type TripPurpose string

const (
	PurposeBusiness TripPurpose = "business"
	PurposeLeisure  TripPurpose = "leisure"
)

func (p TripPurpose) IsValid() bool {
	return p == PurposeBusiness || p == PurposeLeisure
}

// TransportMethod is the user's declared way of getting to the destination.
type TransportMethod string

const (
	TransportAirplane TransportMethod = "airplane"
	TransportTrain    TransportMethod = "train"
	TransportCar      TransportMethod = "car"
	TransportBus      TransportMethod = "bus"
	TransportOther    TransportMethod = "other"
)

func (m TransportMethod) IsValid() bool {
	switch m {
	case TransportAirplane, TransportTrain, TransportCar, TransportBus, TransportOther:
		return true
	default:
		return false
	}
}

// DisplayName returns the label used in rendered templates.
func (m TransportMethod) DisplayName() string {
	switch m {
	case TransportAirplane:
		return "Airplane"
	case TransportTrain:
		return "Train"
	case TransportCar:
		return "Car"
	case TransportBus:
		return "Bus"
	case TransportOther:
		return "Other"
	default:
		return "Undecided"
	}
}

// TripRequest is the user's input to checklist generation. Immutable once
// constructed; build it through NewTripRequest so date validation cannot be
// skipped.
type TripRequest struct {
	Destination     string          `json:"destination"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Purpose         TripPurpose     `json:"purpose"`
	TransportMethod TransportMethod `json:"transportMethod,omitempty"`
	Accommodation   string          `json:"accommodation,omitempty"`
	UserID          string          `json:"userId"`
}

// NewTripRequest validates and constructs a TripRequest.
func NewTripRequest(destination string, start, end time.Time, purpose TripPurpose, userID string) (*TripRequest, error) {
	if destination == "" {
		return nil, errors.ValidationFailed("destination is required", "")
	}
	if end.Before(start) {
		return nil, errors.ValidationFailed(
			"end date must not be before start date",
			fmt.Sprintf("start=%s end=%s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		)
	}
	if !purpose.IsValid() {
		return nil, errors.ValidationFailed("purpose must be business or leisure", string(purpose))
	}
	return &TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Purpose:     purpose,
		UserID:      userID,
	}, nil
}

// Duration returns the number of nights (end minus start in days, >= 0).
func (r *TripRequest) Duration() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// TripID derives a deterministic identifier from date, destination and purpose.
func (r *TripRequest) TripID() string {
	return fmt.Sprintf("%s-%s-%s", r.StartDate.Format("20060102"), r.Destination, r.Purpose)
}
