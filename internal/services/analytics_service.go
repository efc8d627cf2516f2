// internal/services/analytics_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/models"
)

// Period is the reporting granularity for revenue breakdowns.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
)

// ParsePeriod validates a period label from the request path.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual:
		return p, nil
	default:
		return "", apperrors.Validation(
			fmt.Sprintf("Invalid period %q: must be one of daily, weekly, monthly, annual", s), nil)
	}
}

// BucketStart maps a sale timestamp to the start of its bucket:
// the sale's calendar day, the Monday of its week, the first of its month,
// or January 1st of its year. Timestamps are bucketed in UTC.
func (p Period) BucketStart(t time.Time) time.Time {
	t = t.UTC()
	year, month, day := t.Date()

	switch p {
	case PeriodWeekly:
		// time.Weekday counts from Sunday; shift so Monday is offset 0.
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day-offset, 0, 0, 0, 0, time.UTC)
	case PeriodMonthly:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	case PeriodAnnual:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // PeriodDaily
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

// BucketEnd returns the last instant of the bucket beginning at start,
// expressed as the next bucket's start minus one second.
func (p Period) BucketEnd(start time.Time) time.Time {
	switch p {
	case PeriodWeekly:
		return start.AddDate(0, 0, 7).Add(-time.Second)
	case PeriodMonthly:
		return start.AddDate(0, 1, 0).Add(-time.Second)
	case PeriodAnnual:
		return start.AddDate(1, 0, 0).Add(-time.Second)
	default: // PeriodDaily
		return start.AddDate(0, 0, 1).Add(-time.Second)
	}
}

// RevenueQuery bounds and filters a revenue breakdown. A nil date defaults to
// the last 30 days ending now.
type RevenueQuery struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uint
	Platform   *string
}

// RevenueSummary is one period bucket of the breakdown.
type RevenueSummary struct {
	Period            string    `json:"period"`
	TotalRevenue      float64   `json:"total_revenue"`
	TotalSales        int       `json:"total_sales"`
	AverageOrderValue float64   `json:"average_order_value"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
}

// AnalyticsService produces read-only revenue reports over sales history.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type revenueBucket struct {
	totalRevenue float64
	totalSales   int
	salesCount   int
}

// RevenueByPeriod buckets the matching sales window into calendar periods and
// returns one summary per non-empty bucket, ascending by bucket start.
// An inverted window (end before start) matches no sales and yields an empty
// result rather than an error.
func (s *AnalyticsService) RevenueByPeriod(period Period, q RevenueQuery) ([]RevenueSummary, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now
	if q.StartDate != nil {
		start = q.StartDate.UTC()
	}
	if q.EndDate != nil {
		end = q.EndDate.UTC()
	}

	query := s.db.Model(&models.Sale{}).
		Where("sales.sale_date >= ? AND sales.sale_date <= ?", start, end)

	if q.CategoryID != nil {
		query = query.Joins("JOIN products ON products.id = sales.product_id").
			Where("products.category_id = ?", *q.CategoryID)
	}
	if q.Platform != nil {
		query = query.Where("sales.platform = ?", *q.Platform)
	}

	var sales []models.Sale
	if err := query.Select("sales.total_amount, sales.quantity, sales.sale_date").
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sales for revenue analysis: %w", err)
	}

	buckets := make(map[time.Time]*revenueBucket)
	for _, sale := range sales {
		key := period.BucketStart(sale.SaleDate)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &revenueBucket{}
			buckets[key] = bucket
		}
		bucket.totalRevenue += sale.TotalAmount
		bucket.totalSales += sale.Quantity
		bucket.salesCount++
	}

	summaries := make([]RevenueSummary, 0, len(buckets))
	for bucketStart, bucket := range buckets {
		avgOrderValue := 0.0
		if bucket.salesCount > 0 {
			avgOrderValue = bucket.totalRevenue / float64(bucket.salesCount)
		}

		summaries = append(summaries, RevenueSummary{
			Period:            string(period),
			TotalRevenue:      bucket.totalRevenue,
			TotalSales:        bucket.totalSales,
			AverageOrderValue: avgOrderValue,
			StartDate:         bucketStart,
			EndDate:           period.BucketEnd(bucketStart),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StartDate.Before(summaries[j].StartDate)
	})

	return summaries, nil
}
