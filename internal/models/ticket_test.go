package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicketActive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		ticket Ticket
		want   bool
	}{
		{
			name:   "unused inside window",
			ticket: Ticket{IsUsed: false, ValidUntil: now.Add(time.Hour)},
			want:   true,
		},
		{
			name:   "expiry boundary is still active",
			ticket: Ticket{IsUsed: false, ValidUntil: now},
			want:   true,
		},
		{
			name:   "expired",
			ticket: Ticket{IsUsed: false, ValidUntil: now.Add(-time.Second)},
			want:   false,
		},
		{
			name:   "used inside window",
			ticket: Ticket{IsUsed: true, ValidUntil: now.Add(time.Hour)},
			want:   false,
		},
		{
			name:   "used and expired",
			ticket: Ticket{IsUsed: true, ValidUntil: now.Add(-time.Hour)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ticket.Active(now))
		})
	}
}

func TestTicketClassValid(t *testing.T) {
	assert.True(t, ClassSingle.Valid())
	assert.True(t, ClassDayPass.Valid())
	assert.True(t, ClassMonthly.Valid())
	assert.False(t, TicketClass("weekly").Valid())
	assert.False(t, TicketClass("").Valid())
}

func TestTransportModeTicketable(t *testing.T) {
	assert.True(t, ModeBus.Ticketable())
	assert.True(t, ModeMetro.Ticketable())
	assert.False(t, ModeAuto.Ticketable())
	assert.False(t, ModeTaxi.Ticketable())
}
