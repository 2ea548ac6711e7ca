package models

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"

	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on-hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"

	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusLead     = "lead"

	TeamStatusActive   = "active"
	TeamStatusInactive = "inactive"
	TeamStatusOnLeave  = "on-leave"

	ConsultationStatusNew        = "new"
	ConsultationStatusContacted  = "contacted"
	ConsultationStatusInProgress = "in-progress"
	ConsultationStatusCompleted  = "completed"

	MeetingTypeConsultation = "consultation"
	MeetingTypeDemo         = "demo"
	MeetingTypeTechnical    = "technical"
	MeetingTypeSales        = "sales"
	MeetingTypeOther        = "other"

	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusCompleted = "completed"

	UserRoleAdmin = "admin"
)

type MenuItem struct {
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
	Slug  string `bson:"slug" json:"slug"`
}

type MenuGroup struct {
	ID        string     `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug      string     `bson:"slug" json:"slug"`
	Title     string     `bson:"title" json:"title"`
	Items     []MenuItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SolutionStep is a titled paragraph used by solution workflow/expertise
// sections and by industry challenge/solution lists.
type SolutionStep struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type Deliverable struct {
	Item        string `bson:"item" json:"item"`
	Description string `bson:"description" json:"description"`
}

type Solution struct {
	ID           string         `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug         string         `bson:"slug" json:"slug"`
	Title        string         `bson:"title" json:"title"`
	Subtitle     string         `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	HeroImage    string         `bson:"heroImage,omitempty" json:"heroImage,omitempty"`
	Workflow     []SolutionStep `bson:"workflow,omitempty" json:"workflow,omitempty"`
	Expertise    []SolutionStep `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Deliverables []Deliverable  `bson:"deliverables,omitempty" json:"deliverables,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Industry struct {
	ID         string         `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug       string         `bson:"slug" json:"slug"`
	Title      string         `bson:"title" json:"title"`
	Overview   string         `bson:"overview,omitempty" json:"overview,omitempty"`
	Challenges []SolutionStep `bson:"challenges,omitempty" json:"challenges,omitempty"`
	Solutions  []SolutionStep `bson:"solutions,omitempty" json:"solutions,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Blog struct {
	ID          string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug        string    `bson:"slug" json:"slug"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content     string    `bson:"content,omitempty" json:"content,omitempty"`
	ContentHTML string    `bson:"contentHtml,omitempty" json:"contentHtml,omitempty"`
	Author      string    `bson:"author,omitempty" json:"author,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Status      string    `bson:"status,omitempty" json:"status,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	ReadTime    int       `bson:"readTime,omitempty" json:"readTime,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	PublishedAt time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Testimonial struct {
	Quote    string `bson:"quote" json:"quote"`
	Author   string `bson:"author" json:"author"`
	Position string `bson:"position" json:"position"`
}

type CaseStudy struct {
	ID              string       `bson:"_id,omitempty" json:"_id,omitempty"`
	Slug            string       `bson:"slug" json:"slug"`
	Title           string       `bson:"title" json:"title"`
	Description     string       `bson:"description,omitempty" json:"description,omitempty"`
	Industry        string       `bson:"industry,omitempty" json:"industry,omitempty"`
	Client          string       `bson:"client,omitempty" json:"client,omitempty"`
	Challenge       string       `bson:"challenge,omitempty" json:"challenge,omitempty"`
	Solution        string       `bson:"solution,omitempty" json:"solution,omitempty"`
	Results         string       `bson:"results,omitempty" json:"results,omitempty"`
	Technologies    []string     `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Status          string       `bson:"status,omitempty" json:"status,omitempty"`
	ProjectDuration string       `bson:"projectDuration,omitempty" json:"projectDuration,omitempty"`
	TeamSize        int          `bson:"teamSize,omitempty" json:"teamSize,omitempty"`
	Budget          float64      `bson:"budget,omitempty" json:"budget,omitempty"`
	Testimonial     *Testimonial `bson:"testimonial,omitempty" json:"testimonial,omitempty"`
	Image           string       `bson:"image,omitempty" json:"image,omitempty"`
	Gallery         []string     `bson:"gallery,omitempty" json:"gallery,omitempty"`
	CreatedAt       time.Time    `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Project struct {
	ID           string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string    `bson:"name" json:"name"`
	Client       string    `bson:"client" json:"client"`
	Status       string    `bson:"status" json:"status"`
	Priority     string    `bson:"priority" json:"priority"`
	StartDate    string    `bson:"startDate" json:"startDate"`
	EndDate      string    `bson:"endDate" json:"endDate"`
	Budget       float64   `bson:"budget" json:"budget"`
	Spent        float64   `bson:"spent" json:"spent"`
	Progress     int       `bson:"progress" json:"progress"`
	Team         []string  `bson:"team,omitempty" json:"team,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Technologies []string  `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Deliverables []string  `bson:"deliverables,omitempty" json:"deliverables,omitempty"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Client struct {
	ID            string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company       string    `bson:"company" json:"company"`
	Industry      string    `bson:"industry" json:"industry"`
	Status        string    `bson:"status" json:"status"`
	TotalProjects int       `bson:"totalProjects" json:"totalProjects"`
	TotalRevenue  float64   `bson:"totalRevenue" json:"totalRevenue"`
	LastContact   string    `bson:"lastContact,omitempty" json:"lastContact,omitempty"`
	JoinDate      string    `bson:"joinDate,omitempty" json:"joinDate,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type TeamMember struct {
	ID          string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Role        string    `bson:"role" json:"role"`
	Department  string    `bson:"department" json:"department"`
	Position    string    `bson:"position,omitempty" json:"position,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar      string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Status      string    `bson:"status" json:"status"`
	JoinDate    string    `bson:"joinDate,omitempty" json:"joinDate,omitempty"`
	Skills      []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Projects    []string  `bson:"projects,omitempty" json:"projects,omitempty"`
	Performance int       `bson:"performance" json:"performance"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Consultation struct {
	ID          string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string    `bson:"company,omitempty" json:"company,omitempty"`
	ProjectType string    `bson:"projectType,omitempty" json:"projectType,omitempty"`
	Budget      string    `bson:"budget,omitempty" json:"budget,omitempty"`
	Timeline    string    `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Message     string    `bson:"message" json:"message"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Schedule struct {
	ID            string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company       string    `bson:"company,omitempty" json:"company,omitempty"`
	MeetingType   string    `bson:"meetingType" json:"meetingType"`
	PreferredDate string    `bson:"preferredDate" json:"preferredDate"`
	PreferredTime string    `bson:"preferredTime" json:"preferredTime"`
	Timezone      string    `bson:"timezone" json:"timezone"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	Status        string    `bson:"status" json:"status"`
	MeetingLink   string    `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	AdminNotes    string    `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type NewsletterSubscriber struct {
	ID           string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	SubscribedAt time.Time `bson:"subscribedAt,omitempty" json:"subscribedAt,omitempty"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ConsentRecord is an append-only cookie-consent log entry.
type ConsentRecord struct {
	ID        string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Consent   bool      `bson:"consent" json:"consent"`
	Timestamp string    `bson:"timestamp" json:"timestamp"`
	UserAgent string    `bson:"userAgent" json:"userAgent"`
	IPAddress string    `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// StatsData is the singleton marketing counter document shown on the
// landing page and edited from the admin panel.
type StatsData struct {
	ID                 string    `bson:"_id,omitempty" json:"_id,omitempty"`
	HappyClients       int       `bson:"happyClients" json:"happyClients"`
	ProjectsDone       int       `bson:"projectsDone" json:"projectsDone"`
	ClientSatisfaction int       `bson:"clientSatisfaction" json:"clientSatisfaction"`
	TotalRevenue       float64   `bson:"totalRevenue" json:"totalRevenue"`
	LastUpdated        time.Time `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt          time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Activity struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Type        string    `bson:"type" json:"type"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color       string    `bson:"color,omitempty" json:"color,omitempty"`
	User        string    `bson:"user,omitempty" json:"user,omitempty"`
	Priority    string    `bson:"priority,omitempty" json:"priority,omitempty"`
	IsRead      bool      `bson:"isRead" json:"isRead"`
}

type DashboardSummary struct {
	TotalRevenue         float64    `json:"totalRevenue"`
	TotalClients         int64      `json:"totalClients"`
	ActiveProjects       int64      `json:"activeProjects"`
	PendingConsultations int64      `json:"pendingConsultations"`
	UpcomingMeetings     int64      `json:"upcomingMeetings"`
	RecentActivities     []Activity `json:"recentActivities"`
}

type FinancialSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetProfit         float64 `json:"netProfit"`
	TotalClients      int64   `json:"totalClients"`
	ActiveProjects    int64   `json:"activeProjects"`
	CompletedProjects int64   `json:"completedProjects"`
	ProfitMargin      float64 `json:"profitMargin"`
}

type RevenueByMonth struct {
	Month   string  `bson:"_id" json:"month"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

type ExpenseBreakdown struct {
	Category string  `bson:"_id" json:"category"`
	Amount   float64 `bson:"amount" json:"amount"`
}

type ClientGrowth struct {
	Month string `bson:"_id" json:"month"`
	Count int64  `bson:"count" json:"count"`
}

type TopClient struct {
	Client  string  `bson:"_id" json:"client"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

type ProjectPerformance struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

// FinancialData is the full admin analytics payload.
type FinancialData struct {
	Summary            FinancialSummary     `json:"summary"`
	RevenueByMonth     []RevenueByMonth     `json:"revenueByMonth"`
	ExpenseBreakdown   []ExpenseBreakdown   `json:"expenseBreakdown"`
	ClientGrowth       []ClientGrowth       `json:"clientGrowth"`
	TopClients         []TopClient          `json:"topClients"`
	ProjectPerformance []ProjectPerformance `json:"projectPerformance"`
}

type SubscriberStats struct {
	TotalSubscribers  int64 `json:"totalSubscribers"`
	ActiveSubscribers int64 `json:"activeSubscribers"`
	TodaySubscribers  int64 `json:"todaySubscribers"`
}

type ConsentDailyBucket struct {
	Date     string `bson:"_id" json:"_id"`
	Accepted int64  `bson:"accepted" json:"accepted"`
	Declined int64  `bson:"declined" json:"declined"`
	Total    int64  `bson:"total" json:"total"`
}

type ConsentStats struct {
	Total          int64                `json:"total"`
	Accepted       int64                `json:"accepted"`
	Declined       int64                `json:"declined"`
	AcceptanceRate string               `json:"acceptanceRate"`
	DailyBreakdown []ConsentDailyBucket `json:"dailyBreakdown"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
