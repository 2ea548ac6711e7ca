package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"corus-backend/internal/fallback"
	"corus-backend/internal/models"
	"corus-backend/internal/transport"
)

// DefaultMockDelay stands in for network latency on every mock call.
const DefaultMockDelay = 150 * time.Millisecond

// Mock is the offline implementation of API. Reads serve the bundled
// dataset after an artificial delay; writes return a synthesized success
// without durable persistence. Consultations and schedules get a best-effort
// in-memory append so a demo back office has something to list.
type Mock struct {
	delay time.Duration
	now   func() time.Time

	mu            sync.Mutex
	seq           int
	consultations []models.Consultation
	schedules     []models.Schedule
}

// NewMock builds an offline client. A negative delay disables the simulated
// latency entirely; zero selects DefaultMockDelay.
func NewMock(delay time.Duration) *Mock {
	if delay == 0 {
		delay = DefaultMockDelay
	}
	if delay < 0 {
		delay = 0
	}
	return &Mock{delay: delay, now: time.Now}
}

func (m *Mock) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
		return nil
	}
}

func (m *Mock) nextID(resource string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("mock-%s-%d", resource, m.seq)
}

func (m *Mock) FetchMenus(ctx context.Context) ([]models.MenuGroup, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	items := fallback.Menus()
	now := m.now()
	for i := range items {
		items[i].ID = fallbackID("menu", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items, nil
}

func (m *Mock) FetchMenuBySlug(ctx context.Context, slug string) (*models.MenuGroup, error) {
	items, err := m.FetchMenus(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("menu %q: %w", slug, ErrNotFound)
}

func (m *Mock) FetchSolutions(ctx context.Context) ([]models.Solution, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	items := fallback.Solutions()
	now := m.now()
	for i := range items {
		items[i].ID = fallbackID("solution", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items, nil
}

func (m *Mock) FetchSolutionBySlug(ctx context.Context, slug string) (*models.Solution, error) {
	items, err := m.FetchSolutions(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("solution %q: %w", slug, ErrNotFound)
}

func (m *Mock) FetchIndustries(ctx context.Context) ([]models.Industry, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	items := fallback.Industries()
	now := m.now()
	for i := range items {
		items[i].ID = fallbackID("industry", items[i].Slug, i)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items, nil
}

func (m *Mock) FetchIndustryBySlug(ctx context.Context, slug string) (*models.Industry, error) {
	items, err := m.FetchIndustries(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("industry %q: %w", slug, ErrNotFound)
}

func (m *Mock) FetchBlogs(ctx context.Context) ([]models.Blog, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	items := fallback.Blogs()
	now := m.now()
	for i := range items {
		items[i].ID = fallbackID("blog", items[i].Slug, i)
		items[i].Status = models.BlogStatusPublished
		items[i].PublishedAt = now
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items, nil
}

func (m *Mock) FetchBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	items, err := m.FetchBlogs(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("blog %q: %w", slug, ErrNotFound)
}

func (m *Mock) FetchCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	items := fallback.CaseStudies()
	now := m.now()
	for i := range items {
		items[i].ID = fallbackID("case-study", items[i].Slug, i)
		items[i].Status = models.BlogStatusPublished
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items, nil
}

func (m *Mock) FetchCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	items, err := m.FetchCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("case study %q: %w", slug, ErrNotFound)
}

func (m *Mock) FetchStats(ctx context.Context) (models.StatsData, error) {
	if err := m.wait(ctx); err != nil {
		return models.StatsData{}, err
	}
	now := m.now()
	data := fallback.Stats()
	data.ID = fallbackID("stats", "", 0)
	data.LastUpdated = now
	data.CreatedAt = now
	data.UpdatedAt = now
	return data, nil
}

func (m *Mock) CreateConsultation(ctx context.Context, req CreateConsultationRequest) (*models.Consultation, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	item := models.Consultation{
		ID:          m.nextID("consultation"),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Message:     req.Message,
		Status:      models.ConsultationStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.mu.Lock()
	m.consultations = append(m.consultations, item)
	m.mu.Unlock()
	return &item, nil
}

func (m *Mock) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	item := models.Schedule{
		ID:            m.nextID("schedule"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		MeetingType:   req.MeetingType,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Timezone:      req.Timezone,
		Message:       req.Message,
		Status:        models.ScheduleStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.mu.Lock()
	m.schedules = append(m.schedules, item)
	m.mu.Unlock()
	return &item, nil
}

func (m *Mock) FetchAvailableSlots(ctx context.Context, date string) ([]string, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return []string{"09:00", "09:30", "10:00", "10:30", "11:00", "14:00", "14:30", "15:00"}, nil
}

func (m *Mock) SubscribeNewsletter(ctx context.Context, req SubscribeRequest) (*models.NewsletterSubscriber, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.NewsletterSubscriber{
		ID:           m.nextID("subscriber"),
		Email:        req.Email,
		Name:         req.Name,
		IsActive:     true,
		SubscribedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (m *Mock) UnsubscribeNewsletter(ctx context.Context, email string) error {
	return m.wait(ctx)
}

func (m *Mock) RecordConsent(ctx context.Context, req RecordConsentRequest) error {
	return m.wait(ctx)
}

func (m *Mock) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &Session{
		Token: "mock-token",
		User:  SessionUser{Username: username, Role: models.UserRoleAdmin},
	}, nil
}

func (m *Mock) RefreshSession(ctx context.Context) (*Session, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &Session{
		Token: "mock-token",
		User:  SessionUser{Username: "admin", Role: models.UserRoleAdmin},
	}, nil
}

func (m *Mock) Logout(ctx context.Context) error {
	return m.wait(ctx)
}

func (m *Mock) Me(ctx context.Context) (*SessionUser, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &SessionUser{Username: "admin", Role: models.UserRoleAdmin}, nil
}

func (m *Mock) FetchDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	stats := fallback.Stats()
	m.mu.Lock()
	pending := int64(len(m.consultations))
	upcoming := int64(len(m.schedules))
	m.mu.Unlock()
	return &models.DashboardSummary{
		TotalRevenue:         stats.TotalRevenue,
		TotalClients:         int64(stats.HappyClients),
		ActiveProjects:       int64(stats.ProjectsDone),
		PendingConsultations: pending,
		UpcomingMeetings:     upcoming,
		RecentActivities:     []models.Activity{},
	}, nil
}

func (m *Mock) FetchFinancialData(ctx context.Context, dateRange string) (*models.FinancialData, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	stats := fallback.Stats()
	return &models.FinancialData{
		Summary: models.FinancialSummary{
			TotalRevenue: stats.TotalRevenue,
			NetProfit:    stats.TotalRevenue,
			TotalClients: int64(stats.HappyClients),
			ProfitMargin: 100,
		},
		RevenueByMonth:     []models.RevenueByMonth{},
		ExpenseBreakdown:   []models.ExpenseBreakdown{},
		ClientGrowth:       []models.ClientGrowth{},
		TopClients:         []models.TopClient{},
		ProjectPerformance: []models.ProjectPerformance{},
	}, nil
}

func mockPagination(total int) *transport.Pagination {
	p := transport.NewPagination(1, int64(total), int64(total))
	return &p
}

func (m *Mock) ListBlogs(ctx context.Context, opts ListOptions) ([]models.Blog, *transport.Pagination, error) {
	items, err := m.FetchBlogs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, mockPagination(len(items)), nil
}

func (m *Mock) CreateBlog(ctx context.Context, req BlogRequest) (*models.Blog, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.Blog{
		ID:        m.nextID("blog"),
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    req.Author,
		Category:  req.Category,
		Status:    req.Status,
		Tags:      req.Tags,
		ReadTime:  req.ReadTime,
		Image:     req.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (m *Mock) UpdateBlog(ctx context.Context, id string, req BlogRequest) (*models.Blog, error) {
	item, err := m.CreateBlog(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteBlog(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListCaseStudies(ctx context.Context, opts ListOptions) ([]models.CaseStudy, *transport.Pagination, error) {
	items, err := m.FetchCaseStudies(ctx)
	if err != nil {
		return nil, nil, err
	}
	return items, mockPagination(len(items)), nil
}

func (m *Mock) CreateCaseStudy(ctx context.Context, req CaseStudyRequest) (*models.CaseStudy, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	item := &models.CaseStudy{
		ID:              m.nextID("case-study"),
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		Industry:        req.Industry,
		Client:          req.Client,
		Challenge:       req.Challenge,
		Solution:        req.Solution,
		Results:         req.Results,
		Technologies:    req.Technologies,
		Status:          req.Status,
		ProjectDuration: req.ProjectDuration,
		TeamSize:        req.TeamSize,
		Budget:          req.Budget,
		Image:           req.Image,
		Gallery:         req.Gallery,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Testimonial != nil {
		item.Testimonial = &models.Testimonial{
			Quote:    req.Testimonial.Quote,
			Author:   req.Testimonial.Author,
			Position: req.Testimonial.Position,
		}
	}
	return item, nil
}

func (m *Mock) UpdateCaseStudy(ctx context.Context, id string, req CaseStudyRequest) (*models.CaseStudy, error) {
	item, err := m.CreateCaseStudy(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteCaseStudy(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) CreateMenu(ctx context.Context, req MenuRequest) (*models.MenuGroup, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	items := make([]models.MenuItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.MenuItem{Label: it.Label, Href: it.Href, Slug: it.Slug})
	}
	return &models.MenuGroup{
		ID:        m.nextID("menu"),
		Slug:      req.Slug,
		Title:     req.Title,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (m *Mock) UpdateMenu(ctx context.Context, id string, req MenuRequest) (*models.MenuGroup, error) {
	item, err := m.CreateMenu(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteMenu(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) CreateSolution(ctx context.Context, req SolutionRequest) (*models.Solution, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.Solution{
		ID:          m.nextID("solution"),
		Slug:        req.Slug,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (m *Mock) UpdateSolution(ctx context.Context, id string, req SolutionRequest) (*models.Solution, error) {
	item, err := m.CreateSolution(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteSolution(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) CreateIndustry(ctx context.Context, req IndustryRequest) (*models.Industry, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.Industry{
		ID:        m.nextID("industry"),
		Slug:      req.Slug,
		Title:     req.Title,
		Overview:  req.Overview,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (m *Mock) UpdateIndustry(ctx context.Context, id string, req IndustryRequest) (*models.Industry, error) {
	item, err := m.CreateIndustry(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteIndustry(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.Project{}, mockPagination(0), nil
}

func (m *Mock) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

func (m *Mock) CreateProject(ctx context.Context, req ProjectRequest) (*models.Project, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.Project{
		ID:           m.nextID("project"),
		Name:         req.Name,
		Client:       req.Client,
		Status:       req.Status,
		Priority:     req.Priority,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       req.Budget,
		Spent:        req.Spent,
		Progress:     req.Progress,
		Team:         req.Team,
		Description:  req.Description,
		Technologies: req.Technologies,
		Deliverables: req.Deliverables,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (m *Mock) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*models.Project, error) {
	item, err := m.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteProject(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListClients(ctx context.Context, opts ListOptions) ([]models.Client, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.Client{}, mockPagination(0), nil
}

func (m *Mock) GetClient(ctx context.Context, id string) (*models.Client, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("client %q: %w", id, ErrNotFound)
}

func (m *Mock) CreateClient(ctx context.Context, req ClientRequest) (*models.Client, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.Client{
		ID:            m.nextID("client"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Industry:      req.Industry,
		Status:        req.Status,
		TotalProjects: req.TotalProjects,
		TotalRevenue:  req.TotalRevenue,
		LastContact:   req.LastContact,
		JoinDate:      req.JoinDate,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (m *Mock) UpdateClient(ctx context.Context, id string, req ClientRequest) (*models.Client, error) {
	item, err := m.CreateClient(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteClient(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListTeamMembers(ctx context.Context, opts ListOptions) ([]models.TeamMember, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.TeamMember{}, mockPagination(0), nil
}

func (m *Mock) CreateTeamMember(ctx context.Context, req TeamMemberRequest) (*models.TeamMember, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.TeamMember{
		ID:          m.nextID("team-member"),
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Department:  req.Department,
		Position:    req.Position,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Status:      req.Status,
		JoinDate:    req.JoinDate,
		Skills:      req.Skills,
		Projects:    req.Projects,
		Performance: req.Performance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (m *Mock) UpdateTeamMember(ctx context.Context, id string, req TeamMemberRequest) (*models.TeamMember, error) {
	item, err := m.CreateTeamMember(ctx, req)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (m *Mock) DeleteTeamMember(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListConsultations(ctx context.Context, opts ListOptions) ([]models.Consultation, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	items := make([]models.Consultation, len(m.consultations))
	copy(items, m.consultations)
	m.mu.Unlock()
	return items, mockPagination(len(items)), nil
}

func (m *Mock) UpdateConsultationStatus(ctx context.Context, id, status string) (*models.Consultation, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.consultations {
		if m.consultations[i].ID == id {
			m.consultations[i].Status = status
			m.consultations[i].UpdatedAt = m.now()
			item := m.consultations[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("consultation %q: %w", id, ErrNotFound)
}

func (m *Mock) DeleteConsultation(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListSchedules(ctx context.Context, opts ListOptions) ([]models.Schedule, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	items := make([]models.Schedule, len(m.schedules))
	copy(items, m.schedules)
	m.mu.Unlock()
	return items, mockPagination(len(items)), nil
}

func (m *Mock) UpdateSchedule(ctx context.Context, id string, req ScheduleUpdateRequest) (*models.Schedule, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			m.schedules[i].Status = req.Status
			m.schedules[i].MeetingLink = req.MeetingLink
			m.schedules[i].AdminNotes = req.AdminNotes
			m.schedules[i].UpdatedAt = m.now()
			item := m.schedules[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("schedule %q: %w", id, ErrNotFound)
}

func (m *Mock) DeleteSchedule(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) ListSubscribers(ctx context.Context, opts ListOptions) ([]models.NewsletterSubscriber, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.NewsletterSubscriber{}, mockPagination(0), nil
}

func (m *Mock) DeleteSubscriber(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) FetchSubscriberStats(ctx context.Context) (*models.SubscriberStats, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &models.SubscriberStats{}, nil
}

func (m *Mock) ListConsentRecords(ctx context.Context, opts ListOptions) ([]models.ConsentRecord, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.ConsentRecord{}, mockPagination(0), nil
}

func (m *Mock) DeleteConsentRecord(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) FetchConsentStats(ctx context.Context, rangeName string) (*models.ConsentStats, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return &models.ConsentStats{
		AcceptanceRate: "0.0%",
		DailyBreakdown: []models.ConsentDailyBucket{},
	}, nil
}

func (m *Mock) UpdateStats(ctx context.Context, req StatsRequest) (*models.StatsData, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	return &models.StatsData{
		ID:                 "site-stats",
		HappyClients:       req.HappyClients,
		ProjectsDone:       req.ProjectsDone,
		ClientSatisfaction: req.ClientSatisfaction,
		TotalRevenue:       req.TotalRevenue,
		LastUpdated:        now,
		UpdatedAt:          now,
	}, nil
}

// SimulateOrder applies the same fixed increments as the live endpoint on
// top of the bundled counters.
func (m *Mock) SimulateOrder(ctx context.Context) (*models.StatsData, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	now := m.now()
	data := fallback.Stats()
	data.ID = "site-stats"
	data.ProjectsDone++
	data.HappyClients++
	data.TotalRevenue += 2500
	data.LastUpdated = now
	data.UpdatedAt = now
	return &data, nil
}

func (m *Mock) ListActivities(ctx context.Context, opts ListOptions) ([]models.Activity, *transport.Pagination, error) {
	if err := m.wait(ctx); err != nil {
		return nil, nil, err
	}
	return []models.Activity{}, mockPagination(0), nil
}

func (m *Mock) FetchRecentActivities(ctx context.Context) ([]models.Activity, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return []models.Activity{}, nil
}

func (m *Mock) FetchUnreadActivitiesCount(ctx context.Context) (int64, error) {
	if err := m.wait(ctx); err != nil {
		return 0, err
	}
	return 0, nil
}

func (m *Mock) MarkActivityRead(ctx context.Context, id string) error {
	return m.wait(ctx)
}

func (m *Mock) MarkAllActivitiesRead(ctx context.Context) error {
	return m.wait(ctx)
}
