package account_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shadowbay/marketkit/modules/account"
)

func TestCountdownUntil(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Time
		want  account.Countdown
	}{
		{
			name:  "already expired",
			until: base.Add(-time.Hour),
			want:  account.Countdown{},
		},
		{
			name:  "exactly now",
			until: base,
			want:  account.Countdown{},
		},
		{
			name:  "hours and minutes",
			until: base.Add(2*time.Hour + 30*time.Minute),
			want:  account.Countdown{Hours: 2, Minutes: 30},
		},
		{
			name:  "sub-minute",
			until: base.Add(45 * time.Second),
			want:  account.Countdown{Seconds: 45},
		},
		{
			name:  "one year two months",
			until: base.AddDate(1, 2, 0),
			want:  account.Countdown{Years: 1, Months: 2},
		},
		{
			name:  "mixed calendar and clock units",
			until: base.AddDate(0, 1, 3).Add(5*time.Hour + 6*time.Minute + 7*time.Second),
			want:  account.Countdown{Months: 1, Days: 3, Hours: 5, Minutes: 6, Seconds: 7},
		},
		{
			name:  "just under a day",
			until: base.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
			want:  account.Countdown{Hours: 23, Minutes: 59, Seconds: 59},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, account.CountdownUntil(tt.until, base))
		})
	}
}

func TestCountdown_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    account.Countdown
		want string
	}{
		{"empty", account.Countdown{}, "less than a second"},
		{"singular units", account.Countdown{Years: 1, Hours: 1}, "1 year, 1 hour"},
		{"plural units", account.Countdown{Years: 1, Months: 2, Hours: 5}, "1 year, 2 months, 5 hours"},
		{"clock only", account.Countdown{Hours: 2, Minutes: 30}, "2 hours, 30 minutes"},
		{"skips zero units", account.Countdown{Days: 3, Seconds: 10}, "3 days, 10 seconds"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}
