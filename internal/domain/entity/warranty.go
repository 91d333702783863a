package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Warranty is a product warranty record owned by exactly one user.
// The expiry date is derived from the purchase date and duration at creation
// time; the status is never stored and is recomputed on every read.
type Warranty struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	ProductName    string
	SerialNumber   *string
	PurchaseDate   time.Time
	WarrantyMonths int
	ExpiryDate     time.Time
	CreatedAt      time.Time
}

// WarrantyStatus classifies a warranty relative to the current date.
type WarrantyStatus string

const (
	StatusActive   WarrantyStatus = "active"
	StatusExpiring WarrantyStatus = "expiring"
	StatusExpired  WarrantyStatus = "expired"
)

// expiringWindowDays is the number of days before expiry during which a
// warranty counts as "expiring" rather than "active".
const expiringWindowDays = 30

// StatusInfo is the derived classification of a warranty at a given date.
type StatusInfo struct {
	Status        WarrantyStatus
	DaysRemaining int
	Message       string
}

// ComputeExpiry advances purchaseDate by warrantyMonths calendar months.
// The day of month is preserved unless it overflows the target month, in
// which case it clamps to the last valid day (2024-01-31 +1 -> 2024-02-29).
func ComputeExpiry(purchaseDate time.Time, warrantyMonths int) time.Time {
	year, month, day := purchaseDate.Date()

	target := time.Date(year, month+time.Month(warrantyMonths), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// ClassifyStatus derives the warranty status for a given expiry date and
// reference date. Both dates are normalized to midnight, so time of day never
// influences the result; the same inputs always produce the same output.
func ClassifyStatus(expiryDate, today time.Time) StatusInfo {
	expiry := atMidnight(expiryDate)
	now := atMidnight(today)

	days := int(expiry.Sub(now) / (24 * time.Hour))

	switch {
	case days < 0:
		return StatusInfo{
			Status:        StatusExpired,
			DaysRemaining: days,
			Message:       fmt.Sprintf("Expired %d days ago", -days),
		}
	case days <= expiringWindowDays:
		return StatusInfo{
			Status:        StatusExpiring,
			DaysRemaining: days,
			Message:       fmt.Sprintf("Expires in %d days", days),
		}
	default:
		return StatusInfo{
			Status:        StatusActive,
			DaysRemaining: days,
			Message:       fmt.Sprintf("%d days remaining", days),
		}
	}
}

// StatusAt classifies this warranty relative to the given date.
func (w *Warranty) StatusAt(today time.Time) StatusInfo {
	return ClassifyStatus(w.ExpiryDate, today)
}

// ValidateWarrantyInput checks the user-supplied warranty fields and returns
// the parsed purchase date together with a field -> message map describing
// every violated rule. An empty map means the input is valid.
func ValidateWarrantyInput(productName, purchaseDate string, warrantyMonths int, today time.Time) (time.Time, map[string]string) {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(productName)
	switch {
	case name == "":
		fieldErrors["productName"] = "Product name is required"
	case utf8.RuneCountInString(name) < 2:
		fieldErrors["productName"] = "Product name must be at least 2 characters"
	case utf8.RuneCountInString(name) > 100:
		fieldErrors["productName"] = "Product name must be at most 100 characters"
	}

	var parsed time.Time
	if strings.TrimSpace(purchaseDate) == "" {
		fieldErrors["purchaseDate"] = "Purchase date is required"
	} else {
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(purchaseDate))
		switch {
		case err != nil:
			fieldErrors["purchaseDate"] = "Purchase date must be a valid date (YYYY-MM-DD)"
		case date.After(atMidnight(today)):
			fieldErrors["purchaseDate"] = "Purchase date cannot be in the future"
		default:
			parsed = date
		}
	}

	switch {
	case warrantyMonths <= 0:
		fieldErrors["warrantyMonths"] = "Warranty duration must be greater than 0"
	case warrantyMonths > 120:
		fieldErrors["warrantyMonths"] = "Warranty duration cannot exceed 120 months"
	}

	return parsed, fieldErrors
}

func atMidnight(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
