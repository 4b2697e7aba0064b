package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListBookings.
func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.BookerID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.booker_id = $%d", idx))
		args = append(args, opt.BookerID)
		idx++
	}
	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if len(opt.ItemIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("b.item_id = ANY($%d)", idx))
		args = append(args, opt.ItemIDs)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, string(opt.Status))
		idx++
	}

	switch opt.State {
	case model.BookingStateCurrent:
		conditions = append(conditions, fmt.Sprintf("b.start_date <= $%d AND b.end_date > $%d", idx, idx))
		args = append(args, opt.Now)
		idx++
	case model.BookingStatePast:
		conditions = append(conditions, fmt.Sprintf("b.end_date <= $%d", idx))
		args = append(args, opt.Now)
		idx++
	case model.BookingStateFuture:
		conditions = append(conditions, fmt.Sprintf("b.start_date > $%d", idx))
		args = append(args, opt.Now)
		idx++
	case model.BookingStateWaiting, model.BookingStateRejected:
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, string(opt.State))
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY b.start_date DESC, b.id DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildUpdateStatusQuery builds the conditional status UPDATE returning the booking id.
func (r *implRepository) buildUpdateStatusQuery(opt repo.UpdateBookingStatusOptions) (string, []any) {
	args := []any{string(opt.To), opt.ID}
	idx := 3

	var conditions []string
	if len(opt.From) > 0 {
		placeholders := make([]string, len(opt.From))
		for i, s := range opt.From {
			placeholders[i] = fmt.Sprintf("$%d", idx)
			args = append(args, string(s))
			idx++
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if !opt.StartAfter.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_date > $%d", idx))
		args = append(args, opt.StartAfter)
	}

	query := "UPDATE bookings SET status = $1 WHERE id = $2"
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	return query + " RETURNING id", args
}
