package store

import (
	"context"
	"fmt"
	"time"
)

// GetDashboardStats aggregates the dashboard numbers. TotalBudget is a
// configuration value and is filled in by the caller.
func (s *Store) GetDashboardStats(ctx context.Context, now time.Time) (DashboardStats, error) {
	stats := DashboardStats{UpcomingEvents: []UpcomingEvent{}}

	query := `
		SELECT
			(SELECT COALESCE(SUM(actual), 0) FROM budget_items),
			(SELECT COUNT(*) FROM guests),
			(SELECT COUNT(DISTINCT guest_id) FROM guest_events WHERE rsvp_status = 'confirmed'),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM tasks WHERE completed)`

	err := s.pool.QueryRow(ctx, query).Scan(&stats.SpentBudget, &stats.TotalGuests,
		&stats.ConfirmedGuests, &stats.TotalTasks, &stats.CompletedTasks)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	today := now.UTC().Format("2006-01-02")
	rows, err := s.pool.Query(ctx, `
		SELECT name, date
		FROM wedding_events
		WHERE date >= $1
		ORDER BY date
		LIMIT 3`, today)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("upcoming events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev UpcomingEvent
		if err := rows.Scan(&ev.Name, &ev.Date); err != nil {
			return DashboardStats{}, fmt.Errorf("scan upcoming event: %w", err)
		}
		ev.DaysUntil = daysUntil(now, ev.Date)
		stats.UpcomingEvents = append(stats.UpcomingEvents, ev)
	}
	return stats, rows.Err()
}

// daysUntil counts whole days from now until an ISO date, clamped at
// zero. Unparseable dates count as zero.
func daysUntil(now time.Time, date string) int {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
