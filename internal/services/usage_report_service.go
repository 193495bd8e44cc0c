package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"planescheduler/flightline/internal/common"
)

var usageCSVHeader = []string{
	"reservation_id", "tail_number", "make", "model", "user",
	"category", "start_time", "end_time",
	"start_hobbs", "end_hobbs", "hobbs_used", "completed_at", "notes",
}

// UsageReportService renders the completed-reservation usage report as CSV
// for admins and maintainers.
type UsageReportService struct {
	store ReservationStore
}

func NewUsageReportService(store ReservationStore) *UsageReportService {
	return &UsageReportService{store: store}
}

// WriteCSV streams the report for [start, end] to w. Rows are completed
// reservations only, with hobbs_used computed per row.
func (s *UsageReportService) WriteCSV(ctx context.Context, w io.Writer, startStr, endStr string, aircraftID *int64) error {
	var vErr common.ValidationError
	var start, end time.Time
	var err error

	if start, err = time.Parse(time.RFC3339, startStr); err != nil {
		vErr.Add("start", "must be an RFC 3339 timestamp")
	}
	if end, err = time.Parse(time.RFC3339, endStr); err != nil {
		vErr.Add("end", "must be an RFC 3339 timestamp")
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		vErr.Add("end", "must not be before start")
	}
	if err := vErr.OrNil(); err != nil {
		return err
	}

	rows, err := s.store.ListCompletedUsage(ctx, start, end, aircraftID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(usageCSVHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.TailNumber,
			row.Make,
			row.Model,
			row.Username,
			row.Title,
			row.StartTime.UTC().Format(time.RFC3339),
			row.EndTime.UTC().Format(time.RFC3339),
			formatHobbs(row.StartHobbs),
			formatHobbs(row.EndHobbs),
			formatHobbs(row.HobbsUsed),
			formatTime(row.CompletedAt),
			derefString(row.Notes),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatHobbs(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
