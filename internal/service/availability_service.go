package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KurtMante/clinic-ops-api/internal/availability"
	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
)

type dayAppointmentLister interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}

// SlotView is one bookable slot with its occupancy for the requested view.
type SlotView struct {
	availability.Slot
	Occupied      bool   `json:"occupied"`
	AppointmentID string `json:"appointmentId,omitempty"`
}

// DaySnapshot is one loaded view of a calendar day: the weekly schedule plus
// that day's appointments, tagged with the generation of the request that
// loaded it.
type DaySnapshot struct {
	Date         string
	Generation   uint64
	Week         availability.Week
	Appointments []models.Appointment
	LoadedAt     time.Time
}

// AvailabilityService produces slot listings and point-in-time availability
// verdicts. Concurrent reloads of the same day are generation-tagged so a
// slow, older load can never replace a newer one.
type AvailabilityService struct {
	schedule     weekProvider
	appointments dayAppointmentLister
	logger       *zap.Logger
	loc          *time.Location
	slotMinutes  int

	mu      sync.Mutex
	nextGen uint64
	issued  map[string]uint64
	current map[string]*DaySnapshot
}

// NewAvailabilityService instantiates AvailabilityService.
func NewAvailabilityService(schedule weekProvider, appointments dayAppointmentLister, logger *zap.Logger, loc *time.Location, slotMinutes int) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = models.ClinicLocation()
	}
	if slotMinutes <= 0 {
		slotMinutes = 60
	}
	return &AvailabilityService{
		schedule:     schedule,
		appointments: appointments,
		logger:       logger,
		loc:          loc,
		slotMinutes:  slotMinutes,
		issued:       make(map[string]uint64),
		current:      make(map[string]*DaySnapshot),
	}
}

// Slots lists the day's slots with occupancy flags. staffView widens the
// blocking statuses to include Confirmed and annotates the blocking
// appointment's ID.
func (s *AvailabilityService) Slots(ctx context.Context, date time.Time, staffView bool) ([]SlotView, error) {
	snap, err := s.Snapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	occupying := models.PatientOccupyingStatuses
	if staffView {
		occupying = models.StaffOccupyingStatuses
	}

	slots := availability.SlotsForDate(snap.Week, date, s.loc, s.slotMinutes)
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		view := SlotView{Slot: slot}
		if apt := availability.FindOccupying(s.loc, date, slot.Start, snap.Appointments, occupying, ""); apt != nil {
			view.Occupied = true
			if staffView {
				view.AppointmentID = apt.ID
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Evaluate renders the availability verdict for one moment.
func (s *AvailabilityService) Evaluate(ctx context.Context, at models.ClinicTime) (*availability.Decision, error) {
	if at.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "datetime is required")
	}
	week, err := s.schedule.Week(ctx)
	if err != nil {
		return nil, err
	}
	decision := availability.EvaluateDate(at.Time, week, s.loc)
	return &decision, nil
}

// Snapshot loads a fresh view of the given day. The caller always gets the
// data its own request loaded; the shared current snapshot is only replaced
// when this request is still the latest issued for the day.
func (s *AvailabilityService) Snapshot(ctx context.Context, date time.Time) (*DaySnapshot, error) {
	key := date.In(s.loc).Format("2006-01-02")
	gen := s.issue(key)

	week, err := s.schedule.Week(ctx)
	if err != nil {
		return nil, err
	}

	local := date.In(s.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	appts, err := s.appointments.ListBetween(ctx, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appointments")
	}

	snap := &DaySnapshot{
		Date:         key,
		Generation:   gen,
		Week:         week,
		Appointments: appts,
		LoadedAt:     time.Now(),
	}
	if !s.install(snap) {
		s.logger.Debug("discarding stale day snapshot",
			zap.String("date", key),
			zap.Uint64("generation", gen))
	}
	return snap, nil
}

// Current returns the most recently installed snapshot for a day, if any.
func (s *AvailabilityService) Current(date time.Time) *DaySnapshot {
	key := date.In(s.loc).Format("2006-01-02")
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[key]
}

// issue hands out a monotonically increasing generation and marks it as the
// latest issued for the key.
func (s *AvailabilityService) issue(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGen++
	s.issued[key] = s.nextGen
	return s.nextGen
}

// install publishes snap as the day's current snapshot unless a newer request
// has been issued since snap's load began.
func (s *AvailabilityService) install(snap *DaySnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.issued[snap.Date] != snap.Generation {
		return false
	}
	s.current[snap.Date] = snap
	return true
}
