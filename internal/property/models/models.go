// Package models holds the property-side domain types co-created by approval:
// the property record, its admin binding, and the reference data (departments,
// unit types) that intake validates against.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Department is the administrative region a property belongs to.
type Department struct {
	ID     int64
	Name   string
	Active bool
}

// UnitType classifies a property (apartment, cabin, room, ...).
type UnitType struct {
	ID     int64
	Name   string
	Active bool
}

// Property is a bookable accommodation asset. New properties start inactive
// and unverified until the operator completes setup.
type Property struct {
	ID           int64
	DepartmentID int64
	UnitTypeID   int64
	Name         string
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	BasePrice    float64
	MaxGuests    int
	Bedrooms     int
	Bathrooms    int
	ImageKeys    []string
	Active       bool
	Verified     bool
	CreatedAt    time.Time
}

// AdminBinding links an identity to a property it manages.
type AdminBinding struct {
	ID         int64
	UserID     int64
	PropertyID int64
	Active     bool
	CreatedAt  time.Time
}

// AvailabilityDay is one seeded calendar entry for a property.
type AvailabilityDay struct {
	PropertyID int64
	Date       time.Time
	Available  bool
	Price      float64
}

// EncodeImageKeys renders the key list as the JSON array string stored in the
// image_keys column. An empty list encodes as "[]", never null.
func EncodeImageKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	encoded, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("encode image keys: %w", err)
	}
	return string(encoded), nil
}
