package repositories_test

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/repositories"
	"limo-booking-service/internal/pkg/errors"
	log_internal "limo-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
	repo    repositories.Repositories
	now     = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
)

var columns = []string{
	"id", "mode", "pickup_text", "dropoff_text", "pickup_at", "hours", "vehicle", "passengers", "luggage", "notes",
	"name", "email", "phone", "price_estimate", "currency", "status", "source",
	"payment_status", "payment_session_id", "payment_session_url", "payment_confirmation_id", "paid_amount", "paid_currency",
	"assigned_driver", "internal_notes", "price_final", "created_at", "updated_at",
}

func setup(t *testing.T) {
	var err error
	dbx, mock, err = sqlxmock.Newx()
	require.NoError(t, err)
	logMock = log_internal.Setup()
	repo = repositories.New(dbx, logMock, nil, nil, nil)
}

func teardown() {
	dbx.Close()
}

func strPtr(s string) *string { return &s }

func sampleBooking() entity.Booking {
	return entity.Booking{
		ID:            uuid.MustParse("0b5a4f0e-7c1d-4f57-9a43-2f9d3f0c6a11"),
		Mode:          entity.ModeOneWay,
		PickupText:    "YUL Airport",
		DropoffText:   strPtr("Mont Tremblant"),
		PickupAt:      now.Add(48 * time.Hour),
		Vehicle:       "suv",
		Name:          "Jane Roy",
		Email:         "jane@example.com",
		PriceEstimate: 120,
		Currency:      "CAD",
		Status:        entity.BookingPending,
		Source:        "website",
		PaymentStatus: entity.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func nullable[T any](p *T) driver.Value {
	if p == nil {
		return nil
	}
	return *p
}

func bookingRows(bookings ...entity.Booking) *sqlxmock.Rows {
	rows := sqlxmock.NewRows(columns)
	for _, b := range bookings {
		rows.AddRow(
			b.ID.String(), string(b.Mode), b.PickupText, nullable(b.DropoffText), b.PickupAt, nullable(b.Hours), b.Vehicle,
			nullable(b.Passengers), nullable(b.Luggage), nullable(b.Notes),
			b.Name, b.Email, nullable(b.Phone), b.PriceEstimate, b.Currency, string(b.Status), b.Source,
			string(b.PaymentStatus), nullable(b.PaymentSessionID), nullable(b.PaymentSessionURL), nullable(b.PaymentConfirmationID),
			nullable(b.PaidAmount), nullable(b.PaidCurrency),
			nullable(b.AssignedDriver), nullable(b.InternalNotes), nullable(b.PriceFinal), b.CreatedAt, b.UpdatedAt,
		)
	}
	return rows
}

func TestFindBookingByID(t *testing.T) {
	setup(t)
	defer teardown()

	booking := sampleBooking()
	query := regexp.QuoteMeta("FROM bookings WHERE id = $1")

	testCases := []struct {
		name            string
		prepare         func()
		expectedKind    errors.Kind
		expectedBooking entity.Booking
	}{
		{
			name: "Booking found",
			prepare: func() {
				mock.ExpectQuery(query).WithArgs(booking.ID).WillReturnRows(bookingRows(booking))
			},
			expectedBooking: booking,
		},
		{
			name: "Booking not found",
			prepare: func() {
				mock.ExpectQuery(query).WithArgs(booking.ID).WillReturnRows(sqlxmock.NewRows(columns))
			},
			expectedKind: errors.KindNotFound,
		},
		{
			name: "Database error",
			prepare: func() {
				mock.ExpectQuery(query).WithArgs(booking.ID).WillReturnError(stderrors.New("connection reset"))
			},
			expectedKind: errors.KindStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.prepare()

			got, err := repo.FindBookingByID(context.Background(), booking.ID)

			if tc.expectedKind != "" {
				assert.True(t, errors.IsKind(err, tc.expectedKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedBooking, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindBookingBySessionID(t *testing.T) {
	setup(t)
	defer teardown()

	booking := sampleBooking()
	booking.PaymentStatus = entity.PaymentAwaitingPayment
	booking.PaymentSessionID = strPtr("cs_test_1")
	booking.PaymentSessionURL = strPtr("https://checkout.stripe.com/c/pay/cs_test_1")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE payment_session_id = $1")).
		WithArgs("cs_test_1").
		WillReturnRows(bookingRows(booking))

	got, err := repo.FindBookingBySessionID(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, booking, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBooking(t *testing.T) {
	setup(t)
	defer teardown()

	booking := sampleBooking()
	booking.CreatedAt = time.Time{}
	booking.UpdatedAt = time.Time{}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnRows(sqlxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		got, err := repo.InsertBooking(context.Background(), booking)
		require.NoError(t, err)
		assert.Equal(t, now, got.CreatedAt)
		assert.Equal(t, booking.ID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store failure", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO bookings").WillReturnError(stderrors.New("disk full"))

		_, err := repo.InsertBooking(context.Background(), booking)
		assert.True(t, errors.IsKind(err, errors.KindStore))
		assert.True(t, errors.Retryable(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingWhere(t *testing.T) {
	setup(t)
	defer teardown()

	id := sampleBooking().ID
	amount := 120.0
	currency := "CAD"
	confirmation := "pi_1"
	guard := entity.UpdateGuard{
		PaymentStatusIn: []entity.PaymentStatus{entity.PaymentAwaitingPayment},
		SessionCheck:    entity.SessionEqualsOrUnset,
		SessionID:       "sess_1",
	}
	patch := entity.BookingPatch{
		PaymentStatus:  entity.PaymentPaid,
		ConfirmationID: &confirmation,
		PaidAmount:     &amount,
		PaidCurrency:   &currency,
		ConfirmPending: true,
	}
	query := regexp.QuoteMeta("UPDATE bookings SET payment_status = $2") + ".*" +
		regexp.QuoteMeta("WHERE id = $1 AND payment_status = ANY($6) AND (payment_session_id = $7 OR payment_session_id IS NULL)")

	t.Run("guard holds", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id, "paid", "pi_1", 120.0, "CAD", sqlxmock.AnyArg(), "sess_1").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		affected, err := repo.UpdateBookingWhere(context.Background(), id, guard, patch)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard fails is not an error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id, "paid", "pi_1", 120.0, "CAD", sqlxmock.AnyArg(), "sess_1").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		affected, err := repo.UpdateBookingWhere(context.Background(), id, guard, patch)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error is propagated", func(t *testing.T) {
		mock.ExpectExec(query).WillReturnError(stderrors.New("deadlock detected"))

		_, err := repo.UpdateBookingWhere(context.Background(), id, guard, patch)
		assert.True(t, errors.IsKind(err, errors.KindStore))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListBookings(t *testing.T) {
	setup(t)
	defer teardown()

	status := entity.BookingPending
	booking := sampleBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE status = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("pending", 200).
		WillReturnRows(bookingRows(booking, booking))

	got, err := repo.ListBookings(context.Background(), entity.BookingFilter{Status: &status, Limit: 200})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchBookingAdmin(t *testing.T) {
	setup(t)
	defer teardown()

	booking := sampleBooking()
	driverName := "Marc"
	booking.AssignedDriver = &driverName
	assigned := entity.BookingAssigned
	booking.Status = assigned

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status = $2, assigned_driver = $3, updated_at = NOW() WHERE id = $1 RETURNING")).
			WithArgs(booking.ID, "assigned", "Marc").
			WillReturnRows(bookingRows(booking))

		got, err := repo.PatchBookingAdmin(context.Background(), booking.ID, entity.AdminPatch{Status: &assigned, AssignedDriver: &driverName})
		require.NoError(t, err)
		assert.Equal(t, booking, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET")).
			WillReturnRows(sqlxmock.NewRows(columns))

		_, err := repo.PatchBookingAdmin(context.Background(), booking.ID, entity.AdminPatch{AssignedDriver: &driverName})
		assert.True(t, errors.IsKind(err, errors.KindNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProcessedEventMarkerUnavailable(t *testing.T) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer redisClient.Close()

	markerRepo := repositories.New(nil, log_internal.Setup(), redisClient, nil, nil)
	ctx := context.Background()

	processed, err := markerRepo.IsEventProcessed(ctx, "evt_1")
	assert.False(t, processed)
	require.Error(t, err)
	assert.NotNil(t, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "error check processed event: ")

	err = markerRepo.MarkEventProcessed(ctx, "evt_1", time.Hour)
	require.Error(t, err)
	assert.NotNil(t, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "error mark processed event: ")
}
