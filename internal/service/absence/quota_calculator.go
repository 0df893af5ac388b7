package absence

import (
	"math"
	"time"

	"github.com/sistemacontrol/asistencia-backend-go/internal/domain/absence"
)

// MonthWindow returns the half-open calendar-month window
// [first of month, first of next month) containing ref. The quota resets
// fully on the 1st; there is no partial-month pro-rating.
func MonthWindow(ref time.Time) (from, to time.Time) {
	from = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	to = from.AddDate(0, 1, 0)
	return from, to
}

// RemainingFromUsed derives the displayable remaining budget. Never
// negative, rounded to two decimals.
func RemainingFromUsed(used float64) float64 {
	return round2(math.Max(0, absence.MonthlyQuota-used))
}

// DeriveHours computes the stored hour quantity of a departure/return
// window, rounded to two decimals. Both arguments are valid "HH:MM"
// strings on the same day.
func DeriveHours(departure, ret string) float64 {
	return round2(float64(clockMinutes(ret)-clockMinutes(departure)) / 60.0)
}

func clockMinutes(hhmm string) int {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
