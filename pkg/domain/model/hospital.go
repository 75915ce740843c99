package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
)

// HospitalOccupancy holds bed usage counts for a single hospital
type HospitalOccupancy struct {
	ICUBedsUsed   int `json:"icu_beds_used"`
	ICUBedsTotal  int `json:"icu_beds_total"`
	WardBedsUsed  int `json:"ward_beds_used"`
	WardBedsTotal int `json:"ward_beds_total"`
}

// Validate checks the occupancy counts are non-negative
func (o *HospitalOccupancy) Validate() error {
	if o.ICUBedsUsed < 0 || o.ICUBedsTotal < 0 || o.WardBedsUsed < 0 || o.WardBedsTotal < 0 {
		return goerr.New("occupancy counts must be non-negative")
	}
	return nil
}

// HospitalResources holds coarse resource availability levels
type HospitalResources struct {
	Oxygen    types.ResourceLevel `json:"oxygen"`
	StaffLoad types.ResourceLevel `json:"staff_load"`
}

// Validate checks the resource levels
func (r *HospitalResources) Validate() error {
	if !r.Oxygen.IsValid() {
		return goerr.New("invalid oxygen level", goerr.V("oxygen", r.Oxygen))
	}
	if !r.StaffLoad.IsValid() {
		return goerr.New("invalid staff load level", goerr.V("staff_load", r.StaffLoad))
	}
	return nil
}

// HospitalNode is a single hospital for the diffusion map and dashboards
type HospitalNode struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Lat       float64              `json:"lat"`
	Lng       float64              `json:"lng"`
	Occupancy HospitalOccupancy    `json:"occupancy"`
	Status    types.HospitalStatus `json:"status"`
	Resources HospitalResources    `json:"resources"`
}

// Validate checks identifiers, coordinate ranges, and nested fields
func (h *HospitalNode) Validate() error {
	if h.ID == "" {
		return goerr.New("hospital ID is required")
	}
	if h.Name == "" {
		return goerr.New("hospital name is required", goerr.V("id", h.ID))
	}
	if h.Lat < -90.0 || h.Lat > 90.0 {
		return goerr.New("latitude out of range", goerr.V("id", h.ID), goerr.V("lat", h.Lat))
	}
	if h.Lng < -180.0 || h.Lng > 180.0 {
		return goerr.New("longitude out of range", goerr.V("id", h.ID), goerr.V("lng", h.Lng))
	}
	if err := h.Occupancy.Validate(); err != nil {
		return goerr.Wrap(err, "invalid occupancy", goerr.V("id", h.ID))
	}
	if !h.Status.IsValid() {
		return goerr.New("invalid hospital status", goerr.V("id", h.ID), goerr.V("status", h.Status))
	}
	if err := h.Resources.Validate(); err != nil {
		return goerr.Wrap(err, "invalid resources", goerr.V("id", h.ID))
	}
	return nil
}
