package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidAt(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		record *SubscriptionRecord
		want   bool
	}{
		{
			name:   "no record",
			record: nil,
			want:   false,
		},
		{
			name:   "never canceled",
			record: &SubscriptionRecord{},
			want:   true,
		},
		{
			name:   "canceled with paid period remaining",
			record: &SubscriptionRecord{CanceledAt: &past, CurrentPeriodEnd: &future},
			want:   true,
		},
		{
			name:   "canceled and period over",
			record: &SubscriptionRecord{CanceledAt: &past, CurrentPeriodEnd: &past},
			want:   false,
		},
		{
			name:   "canceled without period end",
			record: &SubscriptionRecord{CanceledAt: &past},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.ValidAt(now))
		})
	}
}
