package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	TypeExpirePaymentSession = "expire_payment_session"

	processedEventKeyPrefix = "payment_event:"
	pqUniqueViolation       = "23505"
)

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
	taskClient  *asynq.Client
	inspector   *asynq.Inspector
}

type Repositories interface {
	// db
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, id uuid.UUID) (entity.Booking, error)
	FindBookingBySessionID(ctx context.Context, sessionID string) (entity.Booking, error)
	UpdateBookingWhere(ctx context.Context, id uuid.UUID, guard entity.UpdateGuard, patch entity.BookingPatch) (int64, error)
	ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error)
	PatchBookingAdmin(ctx context.Context, id uuid.UUID, patch entity.AdminPatch) (entity.Booking, error)
	// redis
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string, ttl time.Duration) error
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, taskID string, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client, taskClient *asynq.Client, inspector *asynq.Inspector) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
		taskClient:  taskClient,
		inspector:   inspector,
	}
}

const bookingColumns = `id, mode, pickup_text, dropoff_text, pickup_at, hours, vehicle, passengers, luggage, notes,
	name, email, phone, price_estimate, currency, status, source,
	payment_status, payment_session_id, payment_session_url, payment_confirmation_id, paid_amount, paid_currency,
	assigned_driver, internal_notes, price_final, created_at, updated_at`

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	query := `INSERT INTO bookings (
			id, mode, pickup_text, dropoff_text, pickup_at, hours, vehicle, passengers, luggage, notes,
			name, email, phone, price_estimate, currency, status, source, payment_status
		) VALUES (
			:id, :mode, :pickup_text, :dropoff_text, :pickup_at, :hours, :vehicle, :passengers, :luggage, :notes,
			:name, :email, :phone, :price_estimate, :currency, :status, :source, :payment_status
		) RETURNING created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return entity.Booking{}, errors.StoreError("booking already exists", err)
		}
		return entity.Booking{}, errors.StoreError("error insert booking", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return entity.Booking{}, errors.StoreError("error insert booking", rows.Err())
	}
	if err := rows.Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return entity.Booking{}, errors.StoreError("error scan inserted booking", err)
	}

	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id uuid.UUID) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.StoreError("error find booking by id", err)
	}
	return booking, nil
}

// FindBookingBySessionID implements Repositories.
func (r *repositories) FindBookingBySessionID(ctx context.Context, sessionID string) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE payment_session_id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, sessionID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.StoreError("error find booking by session id", err)
	}
	return booking, nil
}

// UpdateBookingWhere implements Repositories. Zero rows affected means the
// guard did not hold; it is not an error.
func (r *repositories) UpdateBookingWhere(ctx context.Context, id uuid.UUID, guard entity.UpdateGuard, patch entity.BookingPatch) (int64, error) {
	query, args := buildConditionalUpdate(id, guard, patch)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.StoreError("error update booking", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.StoreError("error read affected rows", err)
	}
	return affected, nil
}

func buildConditionalUpdate(id uuid.UUID, guard entity.UpdateGuard, patch entity.BookingPatch) (string, []interface{}) {
	args := []interface{}{id}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sets := []string{"payment_status = " + arg(string(patch.PaymentStatus))}
	if patch.SetSession {
		sets = append(sets, "payment_session_id = "+arg(patch.SessionID))
		if patch.SessionURL != "" {
			sets = append(sets, "payment_session_url = "+arg(patch.SessionURL))
		} else {
			sets = append(sets, "payment_session_url = NULL")
		}
	}
	if patch.ClearSession {
		sets = append(sets, "payment_session_id = NULL", "payment_session_url = NULL")
	}
	if patch.ConfirmationID != nil {
		sets = append(sets, "payment_confirmation_id = "+arg(*patch.ConfirmationID))
	}
	if patch.PaidAmount != nil {
		sets = append(sets, "paid_amount = "+arg(*patch.PaidAmount))
	}
	if patch.PaidCurrency != nil {
		sets = append(sets, "paid_currency = "+arg(*patch.PaidCurrency))
	}
	if patch.ConfirmPending {
		sets = append(sets, fmt.Sprintf("status = CASE WHEN status = '%s' THEN '%s' ELSE status END",
			entity.BookingPending, entity.BookingConfirmed))
	}
	if patch.Cancel {
		sets = append(sets, fmt.Sprintf("status = '%s'", entity.BookingCanceled))
	}
	sets = append(sets, "updated_at = NOW()")

	where := []string{"id = $1"}
	if len(guard.PaymentStatusIn) > 0 {
		statuses := make([]string, len(guard.PaymentStatusIn))
		for i, s := range guard.PaymentStatusIn {
			statuses[i] = string(s)
		}
		where = append(where, "payment_status = ANY("+arg(pq.Array(statuses))+")")
	}
	switch guard.SessionCheck {
	case entity.SessionEquals:
		where = append(where, "payment_session_id = "+arg(guard.SessionID))
	case entity.SessionEqualsOrUnset:
		where = append(where, "(payment_session_id = "+arg(guard.SessionID)+" OR payment_session_id IS NULL)")
	case entity.SessionUnset:
		where = append(where, "payment_session_id IS NULL")
	}

	query := "UPDATE bookings SET " + strings.Join(sets, ", ") + " WHERE " + strings.Join(where, " AND ")
	return query, args
}

// ListBookings implements Repositories.
func (r *repositories) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	var err error
	if filter.Status != nil {
		query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		err = r.db.SelectContext(ctx, &bookings, query, string(*filter.Status), filter.Limit)
	} else {
		query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`
		err = r.db.SelectContext(ctx, &bookings, query, filter.Limit)
	}
	if err != nil {
		return nil, errors.StoreError("error list bookings", err)
	}
	return bookings, nil
}

// PatchBookingAdmin implements Repositories. It never writes payment columns.
func (r *repositories) PatchBookingAdmin(ctx context.Context, id uuid.UUID, patch entity.AdminPatch) (entity.Booking, error) {
	args := []interface{}{id}
	var sets []string
	if patch.Status != nil {
		args = append(args, string(*patch.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.AssignedDriver != nil {
		args = append(args, *patch.AssignedDriver)
		sets = append(sets, fmt.Sprintf("assigned_driver = $%d", len(args)))
	}
	if patch.InternalNotes != nil {
		args = append(args, *patch.InternalNotes)
		sets = append(sets, fmt.Sprintf("internal_notes = $%d", len(args)))
	}
	if patch.PriceFinal != nil {
		args = append(args, *patch.PriceFinal)
		sets = append(sets, fmt.Sprintf("price_final = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE bookings SET " + strings.Join(sets, ", ") + " WHERE id = $1 RETURNING " + bookingColumns

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, args...)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.StoreError("error patch booking", err)
	}
	return booking, nil
}

// IsEventProcessed implements Repositories.
func (r *repositories) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, processedEventKeyPrefix+eventID).Result()
	if err != nil {
		return false, errors.CacheError("error check processed event", err)
	}
	return n > 0, nil
}

// MarkEventProcessed implements Repositories.
func (r *repositories) MarkEventProcessed(ctx context.Context, eventID string, ttl time.Duration) error {
	err := r.redisClient.SetNX(ctx, processedEventKeyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), ttl).Err()
	if err != nil {
		return errors.CacheError("error mark processed event", err)
	}
	return nil
}

// SetTaskScheduler implements Repositories. A task with the same id that is
// already scheduled is kept.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, taskID string, payload []byte) (string, error) {
	task := asynq.NewTask(TypeExpirePaymentSession, payload)
	info, err := r.taskClient.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.TaskID(taskID))
	if stderrors.Is(err, asynq.ErrTaskIDConflict) {
		return taskID, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error enqueue task", zap.String("task_id", taskID), zap.Error(err))
		return "", errors.CacheError("error set task scheduler", err)
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	err := r.inspector.DeleteTask("default", taskID)
	if stderrors.Is(err, asynq.ErrTaskNotFound) || stderrors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error("error delete task", zap.String("task_id", taskID), zap.Error(err))
		return errors.CacheError("error delete task scheduler", err)
	}
	return nil
}
