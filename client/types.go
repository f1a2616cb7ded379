package client

// SortOrder orders diary lists by entry date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Emotion is one selectable feeling tag.
type Emotion struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// DiaryEntry is one diary note with its emotion tags.
type DiaryEntry struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Emotions    []Emotion `json:"emotions"`
	Date        string    `json:"date,omitempty"`
	CreatedAt   string    `json:"createdAt,omitempty"`
	UpdatedAt   string    `json:"updatedAt,omitempty"`
}

// DiaryListResponse mirrors the paginated diary list endpoint.
type DiaryListResponse struct {
	DiaryNotes []DiaryEntry `json:"diaryNotes"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	TotalCount int          `json:"totalCount"`
}

// DiaryListParams selects one page of the diary list.
type DiaryListParams struct {
	Page      int
	Limit     int
	SortOrder SortOrder
}

// DiaryForm is the create/update payload for a diary entry. Emotions holds
// emotion IDs, not titles.
type DiaryForm struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emotions    []string `json:"emotions"`
}

// Task is one daily task. IsDone is the only field the client ever mutates.
type Task struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	IsDone bool   `json:"isDone"`
}

// tasksResponse mirrors the task list endpoint response shape.
type tasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// User is the current account's profile.
type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	DueDate    string `json:"dueDate,omitempty"`
	BabyGender string `json:"babyGender,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// UpdateUserRequest carries profile fields to change; zero-valued fields are
// left untouched.
type UpdateUserRequest struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	BabyGender string `json:"babyGender,omitempty"`
}

// Credentials authenticates a user. Name is only used by Register.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionStatus mirrors the session check endpoint.
type sessionStatus struct {
	Success bool `json:"success"`
}

// BabyToday summarizes the baby for the greeting card.
type BabyToday struct {
	BabySize        float64 `json:"babySize"`
	BabyWeight      float64 `json:"babyWeight"`
	BabyActivity    string  `json:"babyActivity"`
	BabyDevelopment string  `json:"babyDevelopment"`
	Image           string  `json:"image"`
}

// WeekGreeting is the dashboard greeting block. The authenticated and public
// greeting endpoints both return this shape.
type WeekGreeting struct {
	CurWeekToPregnant  int       `json:"curWeekToPregnant"`
	DaysBeforePregnant int       `json:"daysBeforePregnant"`
	BabyToday          BabyToday `json:"babyToday"`
	MomHint            string    `json:"momHint"`
}

// AboutBaby is the baby-development content for one pregnancy week.
type AboutBaby struct {
	Analogy         string   `json:"analogy"`
	Image           string   `json:"image"`
	Description     []string `json:"description"`
	InterestingFact string   `json:"interestingFact"`
}

// Feelings describes typical maternal sensations for a week.
type Feelings struct {
	States         []string `json:"states"`
	SensationDescr string   `json:"sensationDescr"`
}

// ComfortTip is one category/tip pair for the mom.
type ComfortTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// AboutMom is the mom-focused content for one pregnancy week.
type AboutMom struct {
	Feelings    Feelings     `json:"feelings"`
	ComfortTips []ComfortTip `json:"comfortTips"`
}

// EmotionsResponse mirrors the paginated emotions catalogue endpoint.
// This is the pinned contract: responses shaped any other way are errors,
// not candidates for defensive normalization.
type EmotionsResponse struct {
	Emotions   []Emotion `json:"emotions"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	TotalCount int       `json:"totalCount"`
}

// EmotionsParams selects one page of the emotions catalogue.
type EmotionsParams struct {
	Page  int
	Limit int
}
