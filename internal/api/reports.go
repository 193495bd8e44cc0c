package api

import (
	"net/http"
	"strconv"
	"time"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/services"
)

// UsageReportCSV handles GET /api/v1/reservations/usage-csv (admin or
// maintainer).
// Required query params: start, end. Optional: aircraft_id.
func UsageReportCSV(svc *services.UsageReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var aircraftID *int64
		if raw := r.URL.Query().Get("aircraft_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				var vErr common.ValidationError
				vErr.Add("aircraft_id", "must be a positive aircraft id")
				common.RespondDomainError(w, initTime, &vErr)
				return
			}
			aircraftID = &id
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="usage_report.csv"`)

		err := svc.WriteCSV(r.Context(), w,
			r.URL.Query().Get("start"),
			r.URL.Query().Get("end"),
			aircraftID)
		if err != nil {
			// Validation fails before any CSV bytes are written, so the
			// JSON error response is still clean.
			w.Header().Set("Content-Type", "application/json")
			w.Header().Del("Content-Disposition")
			common.RespondDomainError(w, initTime, err)
			return
		}
	}
}
