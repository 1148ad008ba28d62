package store

// Nullable columns are pointer-typed so NULL survives the round trip to
// JSON. Write paths convert empty strings to nil with nullIfEmpty.

// User is an account that can sign in.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

// Guest is one invitee, optionally assigned to a seating table.
type Guest struct {
	ID                  int64   `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            *string `json:"last_name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Group               *string `json:"group"`
	MealPreference      *string `json:"meal_preference"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	PlusOne             bool    `json:"plus_one"`
	PlusOneName         *string `json:"plus_one_name"`
	TableID             *int64  `json:"table_id"`
	Notes               *string `json:"notes"`
	TableName           *string `json:"table_name,omitempty"`
}

// GuestEvent links a guest to a wedding event with an RSVP status.
type GuestEvent struct {
	ID         int64   `json:"id"`
	GuestID    int64   `json:"guest_id"`
	EventID    int64   `json:"event_id"`
	RSVPStatus string  `json:"rsvp_status"`
	MealChoice *string `json:"meal_choice"`
	EventName  string  `json:"event_name,omitempty"`
}

// WeddingEvent is one celebration occasion of a multi-day wedding.
type WeddingEvent struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Venue           *string `json:"venue"`
	Description     *string `json:"description"`
	Order           int     `json:"order"`
	TotalGuests     int     `json:"total_guests"`
	ConfirmedGuests int     `json:"confirmed_guests"`
}

// BudgetCategory groups budget items; totals are aggregated on read.
type BudgetCategory struct {
	ID            int64   `json:"id"`
	EventID       *int64  `json:"event_id"`
	Name          string  `json:"name"`
	PlannedAmount float64 `json:"planned_amount"`
	Order         int     `json:"order"`
	TotalPlanned  float64 `json:"total_planned"`
	TotalActual   float64 `json:"total_actual"`
	TotalPaid     float64 `json:"total_paid"`
}

// BudgetItem is one line item within a category.
type BudgetItem struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Vendor     *string `json:"vendor"`
	Planned    float64 `json:"planned"`
	Actual     float64 `json:"actual"`
	Paid       float64 `json:"paid"`
	DueDate    *string `json:"due_date"`
	Notes      *string `json:"notes"`
}

// SeatingTable is a reception table guests can be assigned to.
type SeatingTable struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	PositionX   float64 `json:"position_x"`
	PositionY   float64 `json:"position_y"`
	SeatedCount int     `json:"seated_count"`
}

// Task is a to-do list entry.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
	AssignedTo  *int64  `json:"assigned_to"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
}

// ItineraryItem is one schedule entry within an event's run sheet.
type ItineraryItem struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	Time      string  `json:"time"`
	Title     string  `json:"title"`
	Location  *string `json:"location"`
	People    *string `json:"people"`
	Notes     *string `json:"notes"`
	Order     int     `json:"order"`
	EventName string  `json:"event_name,omitempty"`
	EventDate string  `json:"event_date,omitempty"`
}

// Vendor is a hired supplier.
type Vendor struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`
	ContractURL *string `json:"contract_url"`
	TotalCost   float64 `json:"total_cost"`
	Paid        float64 `json:"paid"`
	Notes       *string `json:"notes"`
}

// VisionItem is one image card on the vision board.
type VisionItem struct {
	ID       int64   `json:"id"`
	Section  string  `json:"section"`
	ImageURL *string `json:"image_url"`
	Title    *string `json:"title"`
	Notes    *string `json:"notes"`
	Order    int     `json:"order"`
}

// PartyMember is a member of the wedding party.
type PartyMember struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Side             *string `json:"side"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Responsibilities *string `json:"responsibilities"`
	AttireDetails    *string `json:"attire_details"`
	Notes            *string `json:"notes"`
}

// UpcomingEvent is a dashboard summary of a wedding event.
type UpcomingEvent struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	DaysUntil int    `json:"daysUntil"`
}

// DashboardStats aggregates the numbers shown on the landing page.
type DashboardStats struct {
	TotalBudget     float64         `json:"totalBudget"`
	SpentBudget     float64         `json:"spentBudget"`
	TotalGuests     int             `json:"totalGuests"`
	ConfirmedGuests int             `json:"confirmedGuests"`
	TotalTasks      int             `json:"totalTasks"`
	CompletedTasks  int             `json:"completedTasks"`
	UpcomingEvents  []UpcomingEvent `json:"upcomingEvents"`
}

// nullIfEmpty converts "" to nil so optional fields store as NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
