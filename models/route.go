package models

import (
	"time"

	"github.com/google/uuid"
)

// Route is a planned flight between two airports on which travellers offer
// luggage space.
type Route struct {
	ID                 uuid.UUID `json:"id"`
	FlightID           string    `json:"flightId"`
	SourceAirportCode  string    `json:"sourceAirportCode"`
	SourceCountry      string    `json:"sourceCountry"`
	DestinyAirportCode string    `json:"destinyAirportCode"`
	DestinyCountry     string    `json:"destinyCountry"`
	BagCost            int       `json:"bagCost"`
	PlannedStartDate   time.Time `json:"plannedStartDate"`
	PlannedEndDate     time.Time `json:"plannedEndDate"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CreateRouteRequest is the body of POST /routes. Dates are kept as raw
// strings so that a malformed value can be told apart from a missing one.
type CreateRouteRequest struct {
	FlightID           string `json:"flightId" validate:"required"`
	SourceAirportCode  string `json:"sourceAirportCode" validate:"required"`
	SourceCountry      string `json:"sourceCountry" validate:"required"`
	DestinyAirportCode string `json:"destinyAirportCode" validate:"required"`
	DestinyCountry     string `json:"destinyCountry" validate:"required"`
	BagCost            *int   `json:"bagCost" validate:"required,gte=0,lte=2147483647"`
	PlannedStartDate   string `json:"plannedStartDate" validate:"required"`
	PlannedEndDate     string `json:"plannedEndDate" validate:"required"`
}
