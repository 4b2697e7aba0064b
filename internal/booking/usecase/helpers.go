package usecase

import (
	"context"
	"fmt"
	"strconv"

	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/gcalendar"
)

func (uc *implUseCase) validatePeriod(input booking.CreateInput) error {
	if input.Start.IsZero() || input.End.IsZero() {
		return booking.ErrDatesRequired
	}
	if input.Start.Before(uc.now()) {
		return booking.ErrStartInPast
	}
	if !input.End.After(input.Start) {
		return booking.ErrInvalidPeriod
	}
	return nil
}

// publish adds an approved booking to the shared calendar. Failures are logged only.
func (uc *implUseCase) publish(ctx context.Context, b model.Booking) {
	if uc.calendar == nil {
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarCfg.CalendarID,
		Summary:     fmt.Sprintf("%s booked by %s", b.Item.Name, b.Booker.Name),
		Description: b.Item.Description,
		StartTime:   b.Start,
		EndTime:     b.End,
		Timezone:    uc.calendarCfg.Timezone,
		Properties: map[string]string{
			"booking_id": strconv.FormatInt(b.ID, 10),
			"item_id":    strconv.FormatInt(b.ItemID, 10),
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.publish booking %d: %v", b.ID, err)
		return
	}
	uc.l.Infof(ctx, "booking %d published to calendar: %s", b.ID, event.HtmlLink)
}
