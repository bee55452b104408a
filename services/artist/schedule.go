package artist

import (
	"fmt"

	"inkwell/models"
	"inkwell/services/availability"
)

// SetSchedule validates and replaces the artist's availability schedule.
// Malformed windows, unknown weekday keys, and overlapping slots are rejected
// before anything is written.
func (s *DefaultArtistService) SetSchedule(id string, schedule models.AvailabilitySchedule) error {
	if _, err := s.GetArtist(id); err != nil {
		return err
	}

	if err := availability.ValidateSchedule(schedule); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	if err := s.Repo.SetSchedule(id, schedule); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}
