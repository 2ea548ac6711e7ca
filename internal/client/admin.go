package client

import (
	"context"
	"net/http"
	"net/url"

	"corus-backend/internal/models"
	"corus-backend/internal/transport"
)

// Admin surface. Every call here targets the privileged namespace, so the
// bearer credential is attached when available; failures always propagate.

type SessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Login opens an admin session. The returned token can seed a StaticToken
// source; the HTTP cookie jar also retains the session cookies, so follow-up
// admin calls on the same client work either way.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session Session
	if err := c.post(ctx, "/api/admin/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) RefreshSession(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.post(ctx, "/api/admin/refresh", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/logout", nil)
	return err
}

func (c *Client) Me(ctx context.Context) (*SessionUser, error) {
	var user SessionUser
	if err := c.get(ctx, "/api/admin/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) FetchDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := c.get(ctx, "/api/admin/dashboard/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FetchFinancialData retrieves the analytics payload. dateRange is monthly,
// quarterly, or yearly; empty means monthly.
func (c *Client) FetchFinancialData(ctx context.Context, dateRange string) (*models.FinancialData, error) {
	path := "/api/admin/financial"
	if dateRange != "" {
		path += "?dateRange=" + url.QueryEscape(dateRange)
	}
	var data models.FinancialData
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListOptions carries the shared pagination and filter query parameters for
// admin list calls. Filters maps directly to query string keys.
type ListOptions struct {
	Page    int64
	Limit   int64
	Filters url.Values
}

func (o ListOptions) query() string {
	return listQuery(o.Page, o.Limit, o.Filters)
}

type BlogRequest struct {
	Slug     string   `json:"slug,omitempty"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt,omitempty"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category,omitempty"`
	Status   string   `json:"status,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ReadTime int      `json:"readTime,omitempty"`
	Image    string   `json:"image,omitempty"`
}

func (c *Client) ListBlogs(ctx context.Context, opts ListOptions) ([]models.Blog, *transport.Pagination, error) {
	var items []models.Blog
	p, err := c.getPaginated(ctx, "/api/admin/blogs"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) CreateBlog(ctx context.Context, req BlogRequest) (*models.Blog, error) {
	var item models.Blog
	if err := c.post(ctx, "/api/admin/blogs", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, req BlogRequest) (*models.Blog, error) {
	var item models.Blog
	if err := c.put(ctx, "/api/admin/blogs/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/blogs/"+id)
}

type TestimonialRequest struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Position string `json:"position,omitempty"`
}

type CaseStudyRequest struct {
	Slug            string              `json:"slug,omitempty"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	Industry        string              `json:"industry,omitempty"`
	Client          string              `json:"client"`
	Challenge       string              `json:"challenge,omitempty"`
	Solution        string              `json:"solution,omitempty"`
	Results         string              `json:"results,omitempty"`
	Technologies    []string            `json:"technologies,omitempty"`
	Status          string              `json:"status,omitempty"`
	ProjectDuration string              `json:"projectDuration,omitempty"`
	TeamSize        int                 `json:"teamSize,omitempty"`
	Budget          float64             `json:"budget,omitempty"`
	Testimonial     *TestimonialRequest `json:"testimonial,omitempty"`
	Image           string              `json:"image,omitempty"`
	Gallery         []string            `json:"gallery,omitempty"`
}

func (c *Client) ListCaseStudies(ctx context.Context, opts ListOptions) ([]models.CaseStudy, *transport.Pagination, error) {
	var items []models.CaseStudy
	p, err := c.getPaginated(ctx, "/api/admin/case-studies"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) CreateCaseStudy(ctx context.Context, req CaseStudyRequest) (*models.CaseStudy, error) {
	var item models.CaseStudy
	if err := c.post(ctx, "/api/admin/case-studies", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCaseStudy(ctx context.Context, id string, req CaseStudyRequest) (*models.CaseStudy, error) {
	var item models.CaseStudy
	if err := c.put(ctx, "/api/admin/case-studies/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteCaseStudy(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/case-studies/"+id)
}

type MenuItemRequest struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Slug  string `json:"slug,omitempty"`
}

type MenuRequest struct {
	Slug  string            `json:"slug,omitempty"`
	Title string            `json:"title"`
	Items []MenuItemRequest `json:"items"`
}

func (c *Client) CreateMenu(ctx context.Context, req MenuRequest) (*models.MenuGroup, error) {
	var item models.MenuGroup
	if err := c.post(ctx, "/api/admin/menus", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenu(ctx context.Context, id string, req MenuRequest) (*models.MenuGroup, error) {
	var item models.MenuGroup
	if err := c.put(ctx, "/api/admin/menus/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenu(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/menus/"+id)
}

type StepRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DeliverableRequest struct {
	Item        string `json:"item"`
	Description string `json:"description"`
}

type SolutionRequest struct {
	Slug         string               `json:"slug,omitempty"`
	Title        string               `json:"title"`
	Subtitle     string               `json:"subtitle,omitempty"`
	Description  string               `json:"description,omitempty"`
	HeroImage    string               `json:"heroImage,omitempty"`
	Workflow     []StepRequest        `json:"workflow,omitempty"`
	Expertise    []StepRequest        `json:"expertise,omitempty"`
	Deliverables []DeliverableRequest `json:"deliverables,omitempty"`
}

func (c *Client) CreateSolution(ctx context.Context, req SolutionRequest) (*models.Solution, error) {
	var item models.Solution
	if err := c.post(ctx, "/api/admin/solutions", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateSolution(ctx context.Context, id string, req SolutionRequest) (*models.Solution, error) {
	var item models.Solution
	if err := c.put(ctx, "/api/admin/solutions/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteSolution(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/solutions/"+id)
}

type IndustryRequest struct {
	Slug       string        `json:"slug,omitempty"`
	Title      string        `json:"title"`
	Overview   string        `json:"overview,omitempty"`
	Challenges []StepRequest `json:"challenges,omitempty"`
	Solutions  []StepRequest `json:"solutions,omitempty"`
}

func (c *Client) CreateIndustry(ctx context.Context, req IndustryRequest) (*models.Industry, error) {
	var item models.Industry
	if err := c.post(ctx, "/api/admin/industries", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateIndustry(ctx context.Context, id string, req IndustryRequest) (*models.Industry, error) {
	var item models.Industry
	if err := c.put(ctx, "/api/admin/industries/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteIndustry(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/industries/"+id)
}

type ProjectRequest struct {
	Name         string   `json:"name"`
	Client       string   `json:"client"`
	Status       string   `json:"status"`
	Priority     string   `json:"priority"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Budget       float64  `json:"budget"`
	Spent        float64  `json:"spent"`
	Progress     int      `json:"progress"`
	Team         []string `json:"team,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
}

func (c *Client) ListProjects(ctx context.Context, opts ListOptions) ([]models.Project, *transport.Pagination, error) {
	var items []models.Project
	p, err := c.getPaginated(ctx, "/api/admin/projects"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var item models.Project
	if err := c.get(ctx, "/api/admin/projects/"+id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*models.Project, error) {
	var item models.Project
	if err := c.post(ctx, "/api/admin/projects", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*models.Project, error) {
	var item models.Project
	if err := c.put(ctx, "/api/admin/projects/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/projects/"+id)
}

type ClientRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	Company       string  `json:"company"`
	Industry      string  `json:"industry,omitempty"`
	Status        string  `json:"status"`
	TotalProjects int     `json:"totalProjects"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LastContact   string  `json:"lastContact,omitempty"`
	JoinDate      string  `json:"joinDate,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

func (c *Client) ListClients(ctx context.Context, opts ListOptions) ([]models.Client, *transport.Pagination, error) {
	var items []models.Client
	p, err := c.getPaginated(ctx, "/api/admin/clients"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var item models.Client
	if err := c.get(ctx, "/api/admin/clients/"+id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateClient(ctx context.Context, req ClientRequest) (*models.Client, error) {
	var item models.Client
	if err := c.post(ctx, "/api/admin/clients", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, req ClientRequest) (*models.Client, error) {
	var item models.Client
	if err := c.put(ctx, "/api/admin/clients/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/clients/"+id)
}

type TeamMemberRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Department  string   `json:"department"`
	Position    string   `json:"position,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	Status      string   `json:"status"`
	JoinDate    string   `json:"joinDate,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Projects    []string `json:"projects,omitempty"`
	Performance int      `json:"performance"`
}

func (c *Client) ListTeamMembers(ctx context.Context, opts ListOptions) ([]models.TeamMember, *transport.Pagination, error) {
	var items []models.TeamMember
	p, err := c.getPaginated(ctx, "/api/admin/team"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) CreateTeamMember(ctx context.Context, req TeamMemberRequest) (*models.TeamMember, error) {
	var item models.TeamMember
	if err := c.post(ctx, "/api/admin/team", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, req TeamMemberRequest) (*models.TeamMember, error) {
	var item models.TeamMember
	if err := c.put(ctx, "/api/admin/team/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/team/"+id)
}

func (c *Client) ListConsultations(ctx context.Context, opts ListOptions) ([]models.Consultation, *transport.Pagination, error) {
	var items []models.Consultation
	p, err := c.getPaginated(ctx, "/api/admin/consultations"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) UpdateConsultationStatus(ctx context.Context, id, status string) (*models.Consultation, error) {
	body := map[string]string{"status": status}
	var item models.Consultation
	if err := c.patch(ctx, "/api/admin/consultations/"+id+"/status", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteConsultation(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/consultations/"+id)
}

type ScheduleUpdateRequest struct {
	Status      string `json:"status"`
	MeetingLink string `json:"meetingLink,omitempty"`
	AdminNotes  string `json:"adminNotes,omitempty"`
}

func (c *Client) ListSchedules(ctx context.Context, opts ListOptions) ([]models.Schedule, *transport.Pagination, error) {
	var items []models.Schedule
	p, err := c.getPaginated(ctx, "/api/admin/schedules"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) UpdateSchedule(ctx context.Context, id string, req ScheduleUpdateRequest) (*models.Schedule, error) {
	var item models.Schedule
	if err := c.patch(ctx, "/api/admin/schedules/"+id, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/schedules/"+id)
}

func (c *Client) ListSubscribers(ctx context.Context, opts ListOptions) ([]models.NewsletterSubscriber, *transport.Pagination, error) {
	var items []models.NewsletterSubscriber
	p, err := c.getPaginated(ctx, "/api/admin/newsletter/subscribers"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) DeleteSubscriber(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/newsletter/subscribers/"+id)
}

func (c *Client) ListConsentRecords(ctx context.Context, opts ListOptions) ([]models.ConsentRecord, *transport.Pagination, error) {
	var items []models.ConsentRecord
	p, err := c.getPaginated(ctx, "/api/admin/consent/records"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) DeleteConsentRecord(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/consent/records/"+id)
}

// FetchConsentStats aggregates consent decisions over a named range: 7d, 30d,
// 90d, or all. Empty defaults to 30d server-side.
func (c *Client) FetchConsentStats(ctx context.Context, rangeName string) (*models.ConsentStats, error) {
	path := "/api/admin/consent/stats"
	if rangeName != "" {
		path += "?range=" + url.QueryEscape(rangeName)
	}
	var stats models.ConsentStats
	if err := c.get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) FetchSubscriberStats(ctx context.Context) (*models.SubscriberStats, error) {
	var stats models.SubscriberStats
	if err := c.get(ctx, "/api/admin/newsletter/subscribers/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type StatsRequest struct {
	HappyClients       int     `json:"happyClients"`
	ProjectsDone       int     `json:"projectsDone"`
	ClientSatisfaction int     `json:"clientSatisfaction"`
	TotalRevenue       float64 `json:"totalRevenue"`
}

func (c *Client) UpdateStats(ctx context.Context, req StatsRequest) (*models.StatsData, error) {
	var data models.StatsData
	if err := c.put(ctx, "/api/admin/stats/update", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// SimulateOrder bumps the public counters as if an order had closed. Useful
// for demoing the marketing site against non-production data.
func (c *Client) SimulateOrder(ctx context.Context) (*models.StatsData, error) {
	var data models.StatsData
	if err := c.post(ctx, "/api/admin/stats/simulate-order", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) ListActivities(ctx context.Context, opts ListOptions) ([]models.Activity, *transport.Pagination, error) {
	var items []models.Activity
	p, err := c.getPaginated(ctx, "/api/admin/activities"+opts.query(), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, p, nil
}

func (c *Client) FetchRecentActivities(ctx context.Context) ([]models.Activity, error) {
	var items []models.Activity
	if err := c.get(ctx, "/api/admin/activities/recent", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FetchUnreadActivitiesCount(ctx context.Context) (int64, error) {
	var payload struct {
		Count int64 `json:"count"`
	}
	if err := c.get(ctx, "/api/admin/activities/unread/count", &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

func (c *Client) MarkActivityRead(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/activities/"+id+"/read", nil)
	return err
}

func (c *Client) MarkAllActivitiesRead(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/activities/read-all", nil)
	return err
}
