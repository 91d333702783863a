package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeExpiry_PreservesDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		months   int
		want     time.Time
	}{
		{"two years", date(2024, time.January, 15), 24, date(2026, time.January, 15)},
		{"one month", date(2024, time.March, 10), 1, date(2024, time.April, 10)},
		{"year rollover", date(2023, time.November, 5), 3, date(2024, time.February, 5)},
		{"max duration", date(2020, time.June, 30), 120, date(2030, time.June, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeExpiry(tt.purchase, tt.months))
		})
	}
}

func TestComputeExpiry_ClampsMonthEndOverflow(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		months   int
		want     time.Time
	}{
		{"into february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"into leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"31st into 30-day month", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"leap day plus a year", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeExpiry(tt.purchase, tt.months))
		})
	}
}

func TestClassifyStatus_Boundaries(t *testing.T) {
	today := date(2025, time.June, 1)

	tests := []struct {
		name       string
		expiry     time.Time
		wantStatus WarrantyStatus
		wantDays   int
		wantMsg    string
	}{
		{"expires today", today, StatusExpiring, 0, "Expires in 0 days"},
		{"thirty days out", today.AddDate(0, 0, 30), StatusExpiring, 30, "Expires in 30 days"},
		{"thirty-one days out", today.AddDate(0, 0, 31), StatusActive, 31, "31 days remaining"},
		{"expired yesterday", today.AddDate(0, 0, -1), StatusExpired, -1, "Expired 1 days ago"},
		{"long expired", today.AddDate(0, 0, -90), StatusExpired, -90, "Expired 90 days ago"},
		{"far in future", today.AddDate(1, 0, 0), StatusActive, 365, "365 days remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyStatus(tt.expiry, today)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantDays, info.DaysRemaining)
			assert.Equal(t, tt.wantMsg, info.Message)
		})
	}
}

func TestClassifyStatus_IgnoresTimeOfDay(t *testing.T) {
	expiry := date(2025, time.June, 10)
	lateEvening := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC)
	earlyMorning := time.Date(2025, time.June, 1, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, ClassifyStatus(expiry, earlyMorning), ClassifyStatus(expiry, lateEvening))
	assert.Equal(t, 9, ClassifyStatus(expiry, lateEvening).DaysRemaining)
}

func TestClassifyStatus_Deterministic(t *testing.T) {
	expiry := date(2026, time.January, 15)
	today := date(2025, time.December, 20)

	first := ClassifyStatus(expiry, today)
	second := ClassifyStatus(expiry, today)

	assert.Equal(t, first, second)
	assert.Equal(t, StatusExpiring, first.Status)
	assert.Equal(t, 26, first.DaysRemaining)
}

func TestValidateWarrantyInput_Valid(t *testing.T) {
	today := date(2025, time.June, 1)

	parsed, fieldErrors := ValidateWarrantyInput("MacBook Pro", "2024-01-15", 24, today)

	assert.Empty(t, fieldErrors)
	assert.Equal(t, date(2024, time.January, 15), parsed)
}

func TestValidateWarrantyInput_ProductNameBoundaries(t *testing.T) {
	today := date(2025, time.June, 1)

	tests := []struct {
		name    string
		product string
		wantErr bool
	}{
		{"empty", "", true},
		{"single char", "A", true},
		{"whitespace only", "   ", true},
		{"two chars", "TV", false},
		{"hundred chars", strings100(), false},
		{"hundred and one chars", strings100() + "x", true},
		{"padded to valid length", "  TV  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fieldErrors := ValidateWarrantyInput(tt.product, "2024-01-15", 12, today)
			if tt.wantErr {
				assert.Contains(t, fieldErrors, "productName")
			} else {
				assert.NotContains(t, fieldErrors, "productName")
			}
		})
	}
}

func TestValidateWarrantyInput_PurchaseDateRules(t *testing.T) {
	today := time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"missing", "", true},
		{"garbage", "not-a-date", true},
		{"invalid calendar day", "2025-02-30", true},
		{"tomorrow", "2025-06-02", true},
		{"today", "2025-06-01", false},
		{"in the past", "2020-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fieldErrors := ValidateWarrantyInput("Fridge", tt.date, 12, today)
			if tt.wantErr {
				assert.Contains(t, fieldErrors, "purchaseDate")
			} else {
				assert.NotContains(t, fieldErrors, "purchaseDate")
			}
		})
	}
}

func TestValidateWarrantyInput_WarrantyMonthsBoundaries(t *testing.T) {
	today := date(2025, time.June, 1)

	tests := []struct {
		name    string
		months  int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -3, true},
		{"one", 1, false},
		{"hundred twenty", 120, false},
		{"hundred twenty-one", 121, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fieldErrors := ValidateWarrantyInput("Fridge", "2024-01-15", tt.months, today)
			if tt.wantErr {
				assert.Contains(t, fieldErrors, "warrantyMonths")
			} else {
				assert.NotContains(t, fieldErrors, "warrantyMonths")
			}
		})
	}
}

func TestValidateWarrantyInput_ReportsAllViolations(t *testing.T) {
	today := date(2025, time.June, 1)

	_, fieldErrors := ValidateWarrantyInput("", "bad-date", 0, today)

	assert.Len(t, fieldErrors, 3)
	assert.Contains(t, fieldErrors, "productName")
	assert.Contains(t, fieldErrors, "purchaseDate")
	assert.Contains(t, fieldErrors, "warrantyMonths")
}

func TestWarrantyStatusAt_EndToEndExample(t *testing.T) {
	purchase := date(2024, time.January, 15)
	expiry := ComputeExpiry(purchase, 24)
	assert.Equal(t, date(2026, time.January, 15), expiry)

	w := &Warranty{PurchaseDate: purchase, WarrantyMonths: 24, ExpiryDate: expiry}
	info := w.StatusAt(date(2025, time.December, 20))

	assert.Equal(t, StatusExpiring, info.Status)
	assert.Equal(t, 26, info.DaysRemaining)
}

func strings100() string {
	s := make([]byte, 100)
	for i := range s {
		s[i] = 'a'
	}

	return string(s)
}
