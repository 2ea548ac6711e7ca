// Package dashboard aggregates counters from the other collections for the
// back-office landing page and the financial view.
package dashboard

import (
	"context"
	"time"

	"corus-backend/internal/models"
)

type ClientStats interface {
	CountAll(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	GrowthByMonth(ctx context.Context, from time.Time) ([]models.ClientGrowth, error)
	TopByRevenue(ctx context.Context, limit int64) ([]models.TopClient, error)
}

type ProjectStats interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumFinancials(ctx context.Context) (budget, spent float64, err error)
	RevenueByMonth(ctx context.Context, from time.Time) ([]models.RevenueByMonth, error)
	ExpenseBreakdown(ctx context.Context) ([]models.ExpenseBreakdown, error)
	StatusCounts(ctx context.Context) ([]models.ProjectPerformance, error)
}

type ConsultationStats interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type ScheduleStats interface {
	CountUpcoming(ctx context.Context, fromDate string) (int64, error)
}

type ActivityFeed interface {
	Recent(ctx context.Context, limit int64) ([]models.Activity, error)
}

type Service struct {
	clients       ClientStats
	projects      ProjectStats
	consultations ConsultationStats
	schedules     ScheduleStats
	feed          ActivityFeed
	location      *time.Location
}

func NewService(clients ClientStats, projects ProjectStats, consultations ConsultationStats, schedules ScheduleStats, feed ActivityFeed, location *time.Location) *Service {
	return &Service{
		clients:       clients,
		projects:      projects,
		consultations: consultations,
		schedules:     schedules,
		feed:          feed,
		location:      location,
	}
}

func (s *Service) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var summary models.DashboardSummary

	revenue, err := s.clients.SumRevenue(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.TotalRevenue = revenue

	totalClients, err := s.clients.CountAll(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.TotalClients = totalClients

	active, err := s.projects.CountByStatus(ctx, models.ProjectStatusActive)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.ActiveProjects = active

	pending, err := s.consultations.CountByStatus(ctx, models.ConsultationStatusNew)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.PendingConsultations = pending

	today := time.Now().In(s.location).Format("2006-01-02")
	upcoming, err := s.schedules.CountUpcoming(ctx, today)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.UpcomingMeetings = upcoming

	recent, err := s.feed.Recent(ctx, 10)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.RecentActivities = recent

	return summary, nil
}

// rangeStart maps the dateRange query value to the window the by-month
// series cover. Unknown values get the monthly window.
func (s *Service) rangeStart(dateRange string) time.Time {
	now := time.Now().In(s.location)
	switch dateRange {
	case "yearly":
		return now.AddDate(-5, 0, 0)
	case "quarterly":
		return now.AddDate(0, -24, 0)
	default:
		return now.AddDate(0, -12, 0)
	}
}

func (s *Service) Financial(ctx context.Context, dateRange string) (models.FinancialData, error) {
	var out models.FinancialData
	from := s.rangeStart(dateRange)

	revenue, err := s.clients.SumRevenue(ctx)
	if err != nil {
		return models.FinancialData{}, err
	}
	_, spent, err := s.projects.SumFinancials(ctx)
	if err != nil {
		return models.FinancialData{}, err
	}
	totalClients, err := s.clients.CountAll(ctx)
	if err != nil {
		return models.FinancialData{}, err
	}
	active, err := s.projects.CountByStatus(ctx, models.ProjectStatusActive)
	if err != nil {
		return models.FinancialData{}, err
	}
	completed, err := s.projects.CountByStatus(ctx, models.ProjectStatusCompleted)
	if err != nil {
		return models.FinancialData{}, err
	}

	out.Summary = models.FinancialSummary{
		TotalRevenue:      revenue,
		TotalExpenses:     spent,
		NetProfit:         revenue - spent,
		TotalClients:      totalClients,
		ActiveProjects:    active,
		CompletedProjects: completed,
	}
	if revenue > 0 {
		out.Summary.ProfitMargin = (revenue - spent) / revenue * 100
	}

	if out.RevenueByMonth, err = s.projects.RevenueByMonth(ctx, from); err != nil {
		return models.FinancialData{}, err
	}
	if out.ExpenseBreakdown, err = s.projects.ExpenseBreakdown(ctx); err != nil {
		return models.FinancialData{}, err
	}
	if out.ClientGrowth, err = s.clients.GrowthByMonth(ctx, from); err != nil {
		return models.FinancialData{}, err
	}
	if out.TopClients, err = s.clients.TopByRevenue(ctx, 5); err != nil {
		return models.FinancialData{}, err
	}
	if out.ProjectPerformance, err = s.projects.StatusCounts(ctx); err != nil {
		return models.FinancialData{}, err
	}

	return out, nil
}
