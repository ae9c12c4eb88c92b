package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "roadtrip/internal/models/db_models"
	resp "roadtrip/internal/models/response_models"
)

type TripRepository interface {
	// InsertTripGraph persists a generated itinerary as one transaction:
	// the trip row, its steps, and every waypoint with its nested
	// attractions, warnings, deals and hotels. Returns the new trip id.
	InsertTripGraph(ctx context.Context, userID uuid.UUID, result *resp.TripResult, vacationWants string) (uuid.UUID, error)

	ListByUserID(ctx context.Context, userID string) ([]dbm.Trip, error)
	GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	DeleteByID(ctx context.Context, tripID string) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) InsertTripGraph(
	ctx context.Context,
	userID uuid.UUID,
	result *resp.TripResult,
	vacationWants string,
) (uuid.UUID, error) {

	var tripID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trip := dbm.Trip{
			UserID:          userID,
			Name:            result.Origin + " to " + result.Destination,
			Origin:          result.Origin,
			Destination:     result.Destination,
			Dates:           "Dates TBD",
			PlannedProgress: 1.0,
			IconName:        "map",
			TotalDistance:   result.TotalDistance,
			TotalDuration:   result.TotalDuration,
			VacationWants:   vacationWants,
		}
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}
		tripID = trip.ID

		for i, step := range result.Steps {
			s := dbm.TripStep{TripID: trip.ID, StepText: step, StepOrder: i}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}

		for wpIndex, wp := range result.Waypoints {
			waypoint := dbm.Waypoint{TripID: trip.ID, Name: wp.Name, OrderIndex: wpIndex}
			if err := tx.Create(&waypoint).Error; err != nil {
				return err
			}

			for _, a := range wp.Attractions {
				attraction := dbm.Attraction{
					WaypointID:  waypoint.ID,
					Name:        a.Name,
					Category:    a.Category,
					Rating:      a.Rating,
					Description: a.Description,
				}
				if err := tx.Create(&attraction).Error; err != nil {
					return err
				}

				for _, d := range a.Deals {
					attractionID := attraction.ID
					deal := newDealRow(waypoint.ID, &attractionID, d)
					if err := tx.Create(&deal).Error; err != nil {
						return err
					}
				}
			}

			for _, w := range wp.Warnings {
				warning := dbm.Warning{
					WaypointID:  waypoint.ID,
					Title:       w.Title,
					Type:        w.Type,
					Severity:    string(w.Severity),
					Description: w.Description,
				}
				if err := tx.Create(&warning).Error; err != nil {
					return err
				}
			}

			for _, d := range wp.Deals {
				deal := newDealRow(waypoint.ID, nil, d)
				if err := tx.Create(&deal).Error; err != nil {
					return err
				}
			}

			for _, h := range wp.Hotels {
				hotel := dbm.Hotel{
					WaypointID:        waypoint.ID,
					Name:              h.Name,
					Rating:            h.Rating,
					PricePerNight:     h.PricePerNight,
					ActionType:        string(h.Action.Type),
					ActionDisplayText: h.Action.DisplayText,
					ActionTarget:      h.Action.Target,
				}
				if h.ExpertHelpAction != nil {
					hotel.ExpertHelpActionType = string(h.ExpertHelpAction.Type)
					hotel.ExpertHelpActionDisplayText = h.ExpertHelpAction.DisplayText
					hotel.ExpertHelpActionTarget = h.ExpertHelpAction.Target
				}
				if err := tx.Create(&hotel).Error; err != nil {
					return err
				}

				for _, amenity := range h.Amenities {
					row := dbm.HotelAmenity{HotelID: hotel.ID, Amenity: amenity}
					if err := tx.Create(&row).Error; err != nil {
						return err
					}
				}
			}
		}

		return nil
	})

	return tripID, err
}

func newDealRow(waypointID uuid.UUID, attractionID *uuid.UUID, d resp.Deal) dbm.Deal {
	return dbm.Deal{
		WaypointID:        waypointID,
		AttractionID:      attractionID,
		Provider:          d.Provider,
		Title:             d.Title,
		Description:       d.Description,
		ActionType:        string(d.Action.Type),
		ActionDisplayText: d.Action.DisplayText,
		ActionTarget:      d.Action.Target,
	}
}

func (r *tripRepository) ListByUserID(ctx context.Context, userID string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetDetailsByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Steps").
		Preload("Waypoints").
		Preload("Waypoints.Attractions").
		Preload("Waypoints.Attractions.Deals").
		Preload("Waypoints.Warnings").
		Preload("Waypoints.Deals").
		Preload("Waypoints.Hotels").
		Preload("Waypoints.Hotels.Amenities").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteByID(ctx context.Context, tripID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", tripID).Delete(&dbm.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
