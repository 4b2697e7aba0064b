package postgre

import (
	"reflect"
	"testing"
	"time"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Booker All", func(t *testing.T) {
		mods, args := r.buildListQuery(repo.ListBookingsOptions{BookerID: 2, State: model.BookingStateAll, Limit: 10})
		want := "WHERE b.booker_id = $1 ORDER BY b.start_date DESC, b.id DESC LIMIT $2"
		if mods != want {
			t.Errorf("got %q, want %q", mods, want)
		}
		if !reflect.DeepEqual(args, []any{int64(2), 10}) {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Owner Current", func(t *testing.T) {
		mods, args := r.buildListQuery(repo.ListBookingsOptions{OwnerID: 3, State: model.BookingStateCurrent, Now: now, Limit: 5, Offset: 5})
		want := "WHERE i.owner_id = $1 AND b.start_date <= $2 AND b.end_date > $2 ORDER BY b.start_date DESC, b.id DESC LIMIT $3 OFFSET $4"
		if mods != want {
			t.Errorf("got %q, want %q", mods, want)
		}
		if len(args) != 4 || args[1] != now {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Past And Future", func(t *testing.T) {
		mods, _ := r.buildListQuery(repo.ListBookingsOptions{State: model.BookingStatePast, Now: now})
		if mods != "WHERE b.end_date <= $1 ORDER BY b.start_date DESC, b.id DESC" {
			t.Errorf("unexpected past mods %q", mods)
		}
		mods, _ = r.buildListQuery(repo.ListBookingsOptions{State: model.BookingStateFuture, Now: now})
		if mods != "WHERE b.start_date > $1 ORDER BY b.start_date DESC, b.id DESC" {
			t.Errorf("unexpected future mods %q", mods)
		}
	})

	t.Run("Waiting Maps To Status", func(t *testing.T) {
		_, args := r.buildListQuery(repo.ListBookingsOptions{State: model.BookingStateWaiting})
		if !reflect.DeepEqual(args, []any{"WAITING"}) {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Completed Booking Of Item", func(t *testing.T) {
		mods, args := r.buildListQuery(repo.ListBookingsOptions{
			BookerID: 1,
			ItemIDs:  []int64{9},
			Status:   model.BookingStatusApproved,
			State:    model.BookingStatePast,
			Now:      now,
			Limit:    1,
		})
		want := "WHERE b.booker_id = $1 AND b.item_id = ANY($2) AND b.status = $3 AND b.end_date <= $4 ORDER BY b.start_date DESC, b.id DESC LIMIT $5"
		if mods != want {
			t.Errorf("got %q, want %q", mods, want)
		}
		if len(args) != 5 {
			t.Errorf("expected 5 args, got %d", len(args))
		}
	})
}

func TestBuildUpdateStatusQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("Decision", func(t *testing.T) {
		q, args := r.buildUpdateStatusQuery(repo.UpdateBookingStatusOptions{
			ID:   7,
			From: []model.BookingStatus{model.BookingStatusWaiting},
			To:   model.BookingStatusApproved,
		})
		want := "UPDATE bookings SET status = $1 WHERE id = $2 AND status IN ($3) RETURNING id"
		if q != want {
			t.Errorf("got %q, want %q", q, want)
		}
		if !reflect.DeepEqual(args, []any{"APPROVED", int64(7), "WAITING"}) {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Cancel Before Start", func(t *testing.T) {
		now := time.Now()
		q, args := r.buildUpdateStatusQuery(repo.UpdateBookingStatusOptions{
			ID:         7,
			From:       []model.BookingStatus{model.BookingStatusWaiting, model.BookingStatusApproved},
			To:         model.BookingStatusCanceled,
			StartAfter: now,
		})
		want := "UPDATE bookings SET status = $1 WHERE id = $2 AND status IN ($3, $4) AND start_date > $5 RETURNING id"
		if q != want {
			t.Errorf("got %q, want %q", q, want)
		}
		if len(args) != 5 || args[4] != now {
			t.Errorf("unexpected args %v", args)
		}
	})
}
