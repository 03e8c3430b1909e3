package service

import (
	"sort"
	"time"

	"github.com/fridgy/backend/internal/model"
)

// Reminder is one expiring food item, ranked by urgency.
type Reminder struct {
	FoodID          string  `json:"foodId"`
	Name            string  `json:"name"`
	ExpiryDate      string  `json:"expiryDate"`
	DaysUntilExpiry int     `json:"daysUntilExpiry"`
	Priority        string  `json:"priority"`
	Quantity        float64 `json:"quantity,omitempty"`
	Unit            string  `json:"unit,omitempty"`
}

// DefaultReminderWindow is the standalone reminders endpoint's window in
// days. The stats view embeds its own, tighter window.
const DefaultReminderWindow = 7

// highPriorityThreshold marks items expiring within this many days as high
// priority.
const highPriorityThreshold = 3

// ReminderService computes expiry reminders from the food inventory.
type ReminderService struct {
	clock Clock
}

// NewReminderService creates a ReminderService.
func NewReminderService(clock Clock) *ReminderService {
	return &ReminderService{clock: clock}
}

// Upcoming returns the foods expiring within the window (in days, inclusive),
// soonest first. Foods without a parseable expiry date are skipped.
func (s *ReminderService) Upcoming(doc *model.Document, window int) []Reminder {
	return upcomingReminders(doc.Foods, window, s.clock.Now())
}

func upcomingReminders(foods []model.Food, window int, now time.Time) []Reminder {
	today := truncateToDay(now)

	reminders := []Reminder{}
	for _, food := range foods {
		days, ok := daysUntilExpiry(food.ExpiryDate, today)
		if !ok || days < 0 || days > window {
			continue
		}
		priority := "medium"
		if days <= highPriorityThreshold {
			priority = "high"
		}
		reminders = append(reminders, Reminder{
			FoodID:          food.ID,
			Name:            food.Name,
			ExpiryDate:      food.ExpiryDate,
			DaysUntilExpiry: days,
			Priority:        priority,
			Quantity:        food.Quantity,
			Unit:            food.Unit,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysUntilExpiry < reminders[j].DaysUntilExpiry
	})
	return reminders
}

// daysUntilExpiry returns the whole days between today (date-truncated) and
// the expiry date. ok is false for missing or unparseable dates.
func daysUntilExpiry(expiry string, today time.Time) (int, bool) {
	t, ok := parseDate(expiry)
	if !ok {
		return 0, false
	}
	expiryDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location())
	return int(expiryDay.Sub(today).Hours() / 24), true
}
