package service

import (
	"strings"

	"github.com/fridgy/backend/internal/model"
)

// NutritionService derives aggregate views from the stored document. It holds
// no storage: callers load the document and pass it in, preserving the
// per-request read model.
type NutritionService struct {
	clock Clock
}

// NewNutritionService creates a NutritionService using the given clock for
// day-boundary and window calculations.
func NewNutritionService(clock Clock) *NutritionService {
	return &NutritionService{clock: clock}
}

// DailySummary is the response of the daily-nutrition view.
type DailySummary struct {
	Date       string                 `json:"date"`
	Totals     model.NutritionProfile `json:"totals"`
	ByMealType MealTypeBreakdown      `json:"byMealType"`
	Meals      []model.Meal           `json:"meals"`
}

// MealTypeBreakdown buckets nutrition totals by meal type. Meals with an
// unknown type count as snacks.
type MealTypeBreakdown struct {
	Breakfast model.NutritionProfile `json:"breakfast"`
	Lunch     model.NutritionProfile `json:"lunch"`
	Dinner    model.NutritionProfile `json:"dinner"`
	Snacks    model.NutritionProfile `json:"snacks"`
}

func (b *MealTypeBreakdown) bucket(mealType string) *model.NutritionProfile {
	switch mealType {
	case "breakfast":
		return &b.Breakfast
	case "lunch":
		return &b.Lunch
	case "dinner":
		return &b.Dinner
	default:
		return &b.Snacks
	}
}

// Daily sums nutrition for every meal logged on the given YYYY-MM-DD date,
// overall and per meal type. An empty date means today.
func (s *NutritionService) Daily(doc *model.Document, date string) DailySummary {
	if date == "" {
		date = s.clock.Now().Format(DateLayout)
	}

	summary := DailySummary{Date: date, Meals: []model.Meal{}}
	for _, meal := range doc.Meals {
		if !strings.HasPrefix(meal.Date, date) {
			continue
		}
		summary.Totals.Add(meal.Nutrition, 1)
		summary.ByMealType.bucket(meal.MealType).Add(meal.Nutrition, 1)
		summary.Meals = append(summary.Meals, meal)
	}
	return summary
}

// TrendPoint is one day of the nutrition trend series. Only the four macro
// fields are tracked, matching the charting surface.
type TrendPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Trends returns exactly one point per calendar day for the last `days` days
// ending today, oldest first. Days without meals produce explicit zero
// points.
func (s *NutritionService) Trends(doc *model.Document, days int) []TrendPoint {
	if days <= 0 {
		days = 30
	}

	perDay := map[string]*TrendPoint{}
	for _, meal := range doc.Meals {
		if meal.Date == "" {
			continue
		}
		key := dayKey(meal.Date)
		point, ok := perDay[key]
		if !ok {
			point = &TrendPoint{Date: key}
			perDay[key] = point
		}
		point.Calories += meal.Nutrition.Calories
		point.Protein += meal.Nutrition.Protein
		point.Carbs += meal.Nutrition.Carbs
		point.Fats += meal.Nutrition.Fats
	}

	today := truncateToDay(s.clock.Now())
	trends := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(DateLayout)
		if point, ok := perDay[key]; ok {
			trends = append(trends, *point)
		} else {
			trends = append(trends, TrendPoint{Date: key})
		}
	}
	return trends
}

// MetricPoint is one day of a health-metric trend. Value is null on days with
// no recorded metric.
type MetricPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// MetricTrends returns one point per day over the window for the metric of
// the given type. When a day has several readings, the one with the latest
// timestamp wins.
func (s *NutritionService) MetricTrends(doc *model.Document, metricType string, days int) []MetricPoint {
	if days <= 0 {
		days = 30
	}

	latest := map[string]model.HealthMetric{}
	for _, metric := range doc.HealthMetrics {
		if metric.Type != metricType || metric.Date == "" {
			continue
		}
		key := dayKey(metric.Date)
		if prev, ok := latest[key]; !ok || metric.Date > prev.Date {
			latest[key] = metric
		}
	}

	today := truncateToDay(s.clock.Now())
	trends := make([]MetricPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(DateLayout)
		if metric, ok := latest[key]; ok {
			value := metric.Value
			trends = append(trends, MetricPoint{Date: metric.Date, Value: &value})
		} else {
			trends = append(trends, MetricPoint{Date: key})
		}
	}
	return trends
}

// Stats is the period-statistics view backing the dashboard.
type Stats struct {
	PeriodDays    int         `json:"periodDays"`
	Foods         FoodStats   `json:"foods"`
	Meals         MealStats   `json:"meals"`
	Steps         StepStats   `json:"steps"`
	HealthMetrics MetricStats `json:"healthMetrics"`
	Recipes       CountStat   `json:"recipes"`
	SharedRecipes CountStat   `json:"sharedRecipes"`
	Reminders     []Reminder  `json:"reminders"`
}

type FoodStats struct {
	Total        int            `json:"total"`
	ExpiringSoon int            `json:"expiringSoon"`
	ByStorage    map[string]int `json:"byStorage"`
}

type MealStats struct {
	Total          int                    `json:"total"`
	ByType         map[string]int         `json:"byType"`
	Nutrition      model.NutritionProfile `json:"nutrition"`
	AveragePerMeal model.NutritionProfile `json:"averagePerMeal"`
}

type StepStats struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

type MetricStats struct {
	Recent []model.HealthMetric `json:"recent"`
}

type CountStat struct {
	Total int `json:"total"`
}

// statsExpiryWindow is the reminder window embedded in the stats view; the
// standalone reminders endpoint has its own, wider default.
const statsExpiryWindow = 3

// recentMetricsLimit caps the health metrics echoed back in the stats view.
const recentMetricsLimit = 10

// Stats computes the period statistics over the last `days` days. The window
// filter compares ISO timestamp strings, which orders correctly for the
// single format the API stamps.
func (s *NutritionService) Stats(doc *model.Document, days int) Stats {
	if days <= 0 {
		days = 30
	}
	now := s.clock.Now()
	cutoff := now.AddDate(0, 0, -days).Format(TimestampLayout)

	stats := Stats{
		PeriodDays:    days,
		Recipes:       CountStat{Total: len(doc.Recipes)},
		SharedRecipes: CountStat{Total: len(doc.SharedRecipes)},
		Reminders:     upcomingReminders(doc.Foods, statsExpiryWindow, now),
	}

	stats.Foods.Total = len(doc.Foods)
	stats.Foods.ByStorage = map[string]int{"fridge": 0, "shelf": 0, "freezer": 0}
	today := truncateToDay(now)
	for _, food := range doc.Foods {
		if food.StorageType != "" {
			stats.Foods.ByStorage[food.StorageType]++
		}
		if d, ok := daysUntilExpiry(food.ExpiryDate, today); ok && d >= 0 && d <= statsExpiryWindow {
			stats.Foods.ExpiringSoon++
		}
	}

	stats.Meals.ByType = map[string]int{"breakfast": 0, "lunch": 0, "dinner": 0, "snacks": 0}
	for _, meal := range doc.Meals {
		if meal.Date < cutoff {
			continue
		}
		stats.Meals.Total++
		bucket := meal.MealType
		if _, ok := stats.Meals.ByType[bucket]; !ok {
			bucket = "snacks"
		}
		stats.Meals.ByType[bucket]++
		stats.Meals.Nutrition.Add(meal.Nutrition, 1)
	}
	stats.Meals.AveragePerMeal = stats.Meals.Nutrition.Scale(float64(stats.Meals.Total))

	var stepEntries int
	for _, entry := range doc.Steps {
		if entry.Date < cutoff {
			continue
		}
		stepEntries++
		stats.Steps.Total += entry.Steps
	}
	if stepEntries > 0 {
		stats.Steps.Average = stats.Steps.Total / float64(stepEntries)
	}

	recent := []model.HealthMetric{}
	for _, metric := range doc.HealthMetrics {
		if metric.Date >= cutoff {
			recent = append(recent, metric)
		}
	}
	if len(recent) > recentMetricsLimit {
		recent = recent[len(recent)-recentMetricsLimit:]
	}
	stats.HealthMetrics.Recent = recent

	return stats
}
