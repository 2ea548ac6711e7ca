package schedules

type CreateRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	Company       string `json:"company"`
	MeetingType   string `json:"meetingType" validate:"required,meeting_type"`
	PreferredDate string `json:"preferredDate" validate:"required,date"`
	PreferredTime string `json:"preferredTime" validate:"required,clock"`
	Timezone      string `json:"timezone" validate:"omitempty,timezone_name"`
	Message       string `json:"message"`
}

type AdminUpdateRequest struct {
	Status      string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	MeetingLink string `json:"meetingLink" validate:"omitempty,url"`
	AdminNotes  string `json:"adminNotes"`
}

type AdminListFilter struct {
	Status string
	Date   string
	Search string
}
