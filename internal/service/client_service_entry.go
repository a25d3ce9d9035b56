package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hub-channel/models"
)

const (
	dayWindow   = 24 * time.Hour
	monthWindow = 30 * dayWindow
)

// GetEntryTimingFlags compares the current time with the stored last entry
// time. All flags are set when no entry was recorded or the store cannot be
// read.
func (h *HubChannel) GetEntryTimingFlags(ctx context.Context) models.EntryTimingFlags {
	last, ok, err := h.store.LastEnteredAt(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "HubChannel.GetEntryTimingFlags").Msg("failed to read last entry time")
		ok = false
	}
	if !ok {
		return models.EntryTimingFlags{
			IsNewDaily:       true,
			IsNewMonthly:     true,
			IsNewDayWindow:   true,
			IsNewMonthWindow: true,
		}
	}

	return entryTimingFlags(last, h.now())
}

// entryTimingFlags compares calendar fields in local time.
func entryTimingFlags(last, now time.Time) models.EntryTimingFlags {
	last, now = last.Local(), now.Local()
	elapsed := now.Sub(last)

	sameMonth := now.Year() == last.Year() && now.Month() == last.Month()

	return models.EntryTimingFlags{
		IsNewDaily:       !sameMonth || now.Day() != last.Day(),
		IsNewMonthly:     !sameMonth,
		IsNewDayWindow:   elapsed > dayWindow,
		IsNewMonthWindow: elapsed > monthWindow,
	}
}
