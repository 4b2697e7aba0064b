package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/postgres"
)

const bookingSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status, b.item_id, b.booker_id,
		i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
		u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanBooking(row interface{ Scan(dest ...any) error }) (model.Booking, error) {
	var (
		b         model.Booking
		status    string
		requestID sql.NullInt64
	)
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &status, &b.ItemID, &b.BookerID,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &requestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	if requestID.Valid {
		id := requestID.Int64
		b.Item.RequestID = &id
	}
	return b, nil
}

func getOneBooking(ctx context.Context, q queryRower, id int64) (model.Booking, error) {
	return scanBooking(q.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id))
}

// CreateBooking inserts a booking and reads it back joined, in one transaction.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	const query = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var b model.Booking
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, opt.Start, opt.End, opt.ItemID, opt.BookerID, string(opt.Status)).Scan(&id); err != nil {
			return err
		}
		var err error
		b, err = getOneBooking(ctx, tx, id)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking returns the zero Booking when nothing matches.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (model.Booking, error) {
	b, err := getOneBooking(ctx, r.db, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s %s", bookingSelect, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}

// UpdateBookingStatus is a compare-and-set on status. Concurrent callers cannot both win.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (model.Booking, error) {
	query, args := r.buildUpdateStatusQuery(opt)

	var b model.Booking
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return err
		}
		var err error
		b, err = getOneBooking(ctx, tx, id)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repo.ErrFailedToUpdate
	}
	return b, nil
}
