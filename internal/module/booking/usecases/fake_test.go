package usecases_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const validSignature = "t=1,v1=valid"

// memoryStore is a Repositories backed by a map. UpdateBookingWhere checks
// the guard and applies the patch under one lock, like a conditional UPDATE.
type memoryStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]entity.Booking
	events   map[string]bool
	tasks    map[string][]byte
	updates  int
	// forgetEvents drops processed-event markers, as after a cache flush.
	forgetEvents bool
	updateErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		bookings: map[uuid.UUID]entity.Booking{},
		events:   map[string]bool{},
		tasks:    map[string][]byte{},
	}
}

func (s *memoryStore) InsertBooking(_ context.Context, booking entity.Booking) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; ok {
		return entity.Booking{}, errors.StoreError("booking already exists", nil)
	}
	now := time.Now().UTC()
	booking.CreatedAt, booking.UpdatedAt = now, now
	s.bookings[booking.ID] = booking
	return booking, nil
}

func (s *memoryStore) FindBookingByID(_ context.Context, id uuid.UUID) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return b, nil
}

func (s *memoryStore) FindBookingBySessionID(_ context.Context, sessionID string) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.SessionIs(sessionID) {
			return b, nil
		}
	}
	return entity.Booking{}, errors.NotFound("booking not found")
}

func (s *memoryStore) UpdateBookingWhere(_ context.Context, id uuid.UUID, guard entity.UpdateGuard, patch entity.BookingPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateErr != nil {
		return 0, s.updateErr
	}
	b, ok := s.bookings[id]
	if !ok || !guard.Matches(b) {
		return 0, nil
	}
	s.bookings[id] = patch.Apply(b, time.Now().UTC())
	s.updates++
	return 1, nil
}

func (s *memoryStore) ListBookings(_ context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []entity.Booking
	for _, b := range s.bookings {
		if filter.Status == nil || b.Status == *filter.Status {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *memoryStore) PatchBookingAdmin(_ context.Context, id uuid.UUID, patch entity.AdminPatch) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.AssignedDriver != nil {
		b.AssignedDriver = patch.AssignedDriver
	}
	if patch.InternalNotes != nil {
		b.InternalNotes = patch.InternalNotes
	}
	if patch.PriceFinal != nil {
		b.PriceFinal = patch.PriceFinal
	}
	s.bookings[id] = b
	return b, nil
}

func (s *memoryStore) IsEventProcessed(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[eventID], nil
}

func (s *memoryStore) MarkEventProcessed(_ context.Context, eventID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.forgetEvents {
		s.events[eventID] = true
	}
	return nil
}

func (s *memoryStore) SetTaskScheduler(_ context.Context, _ time.Time, taskID string, payload []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[taskID] = payload
	return taskID, nil
}

func (s *memoryStore) DeleteTaskScheduler(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, taskID)
	return nil
}

func (s *memoryStore) booking(id string) entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[uuid.MustParse(id)]
}

func (s *memoryStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// sequenceGateway issues sess_1, sess_2, ... and accepts JSON-encoded
// entity.PaymentEvent payloads signed with validSignature.
type sequenceGateway struct {
	mu       sync.Mutex
	sessions int
}

func (g *sequenceGateway) CreateSession(_ context.Context, req entity.SessionRequest) (entity.PaymentSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions++
	id := fmt.Sprintf("sess_%d", g.sessions)
	return entity.PaymentSession{SessionID: id, URL: "https://pay.test/" + id}, nil
}

func (g *sequenceGateway) VerifyEvent(payload []byte, signature string) (entity.PaymentEvent, error) {
	if signature != validSignature {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("signature mismatch", nil)
	}
	var event entity.PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("malformed event", err)
	}
	return event, nil
}

func (g *sequenceGateway) issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessions
}

type outbox struct {
	mu     sync.Mutex
	sent   []entity.Email
	failed bool
}

func (o *outbox) Send(_ context.Context, email entity.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failed {
		return errors.InternalServerError("mail provider unavailable")
	}
	o.sent = append(o.sent, email)
	return nil
}

func (o *outbox) count(to, subject string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, e := range o.sent {
		if e.To == to && e.Subject == subject {
			n++
		}
	}
	return n
}

func signedEvent(event entity.PaymentEvent) []byte {
	payload, _ := json.Marshal(event)
	return payload
}
