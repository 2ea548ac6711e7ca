package client

import (
	"context"

	"corus-backend/internal/models"
	"corus-backend/internal/transport"
)

// API is the full operation surface shared by the live Client and the
// offline Mock. Deployment configuration picks one; callers never care
// which they hold.
type API interface {
	// Public content reads (fallback-substituting).
	FetchMenus(ctx context.Context) ([]models.MenuGroup, error)
	FetchMenuBySlug(ctx context.Context, slug string) (*models.MenuGroup, error)
	FetchSolutions(ctx context.Context) ([]models.Solution, error)
	FetchSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error)
	FetchIndustries(ctx context.Context) ([]models.Industry, error)
	FetchIndustryBySlug(ctx context.Context, slug string) (*models.Industry, error)
	FetchBlogs(ctx context.Context) ([]models.Blog, error)
	FetchBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	FetchCaseStudies(ctx context.Context) ([]models.CaseStudy, error)
	FetchCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
	FetchStats(ctx context.Context) (models.StatsData, error)

	// Public forms (error-propagating).
	CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*models.Consultation, error)
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error)
	FetchAvailableSlots(ctx context.Context, date string) ([]string, error)
	SubscribeNewsletter(ctx context.Context, req SubscribeRequest) (*models.NewsletterSubscriber, error)
	UnsubscribeNewsletter(ctx context.Context, email string) error
	RecordConsent(ctx context.Context, req RecordConsentRequest) error

	// Admin session.
	Login(ctx context.Context, username, password string) (*Session, error)
	RefreshSession(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*SessionUser, error)

	// Admin reads and mutations.
	FetchDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	FetchFinancialData(ctx context.Context, dateRange string) (*models.FinancialData, error)

	ListBlogs(ctx context.Context, opts ListOptions) ([]models.Blog, *transport.Pagination, error)
	CreateBlog(ctx context.Context, req BlogRequest) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id string, req BlogRequest) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error

	ListCaseStudies(ctx context.Context, opts ListOptions) ([]models.CaseStudy, *transport.Pagination, error)
	CreateCaseStudy(ctx context.Context, req CaseStudyRequest) (*models.CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, id string, req CaseStudyRequest) (*models.CaseStudy, error)
	DeleteCaseStudy(ctx context.Context, id string) error

	CreateMenu(ctx context.Context, req MenuRequest) (*models.MenuGroup, error)
	UpdateMenu(ctx context.Context, id string, req MenuRequest) (*models.MenuGroup, error)
	DeleteMenu(ctx context.Context, id string) error
	CreateSolution(ctx context.Context, req SolutionRequest) (*models.Solution, error)
	UpdateSolution(ctx context.Context, id string, req SolutionRequest) (*models.Solution, error)
	DeleteSolution(ctx context.Context, id string) error
	CreateIndustry(ctx context.Context, req IndustryRequest) (*models.Industry, error)
	UpdateIndustry(ctx context.Context, id string, req IndustryRequest) (*models.Industry, error)
	DeleteIndustry(ctx context.Context, id string) error

	ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, *transport.Pagination, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, req ProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, req ProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListClients(ctx context.Context, opts ListOptions) ([]models.Client, *transport.Pagination, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, req ClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, req ClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListTeamMembers(ctx context.Context, opts ListOptions) ([]models.TeamMember, *transport.Pagination, error)
	CreateTeamMember(ctx context.Context, req TeamMemberRequest) (*models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, req TeamMemberRequest) (*models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	ListConsultations(ctx context.Context, opts ListOptions) ([]models.Consultation, *transport.Pagination, error)
	UpdateConsultationStatus(ctx context.Context, id, status string) (*models.Consultation, error)
	DeleteConsultation(ctx context.Context, id string) error

	ListSchedules(ctx context.Context, opts ListOptions) ([]models.Schedule, *transport.Pagination, error)
	UpdateSchedule(ctx context.Context, id string, req ScheduleUpdateRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	ListSubscribers(ctx context.Context, opts ListOptions) ([]models.NewsletterSubscriber, *transport.Pagination, error)
	DeleteSubscriber(ctx context.Context, id string) error
	FetchSubscriberStats(ctx context.Context) (*models.SubscriberStats, error)

	ListConsentRecords(ctx context.Context, opts ListOptions) ([]models.ConsentRecord, *transport.Pagination, error)
	DeleteConsentRecord(ctx context.Context, id string) error
	FetchConsentStats(ctx context.Context, rangeName string) (*models.ConsentStats, error)

	UpdateStats(ctx context.Context, req StatsRequest) (*models.StatsData, error)
	SimulateOrder(ctx context.Context) (*models.StatsData, error)

	ListActivities(ctx context.Context, opts ListOptions) ([]models.Activity, *transport.Pagination, error)
	FetchRecentActivities(ctx context.Context) ([]models.Activity, error)
	FetchUnreadActivitiesCount(ctx context.Context) (int64, error)
	MarkActivityRead(ctx context.Context, id string) error
	MarkAllActivitiesRead(ctx context.Context) error
}

var _ API = (*Client)(nil)
var _ API = (*Mock)(nil)
