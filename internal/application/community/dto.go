package community

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nivas/backend/internal/domain/community"
)

// VisitorEntryInput contains the input for a gate entry or pre-approval.
// The kiosk has no session, so SocietyID always arrives explicitly.
type VisitorEntryInput struct {
	SocietyID     uuid.UUID
	Name          string
	Phone         string
	UnitLabel     string
	Purpose       string
	VehicleNumber string
	AddedBy       string
	Duration      time.Duration
}

// VisitorInfo is the gate-log view returned to the client
type VisitorInfo struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	UnitLabel        string     `json:"unit_label"`
	Purpose          string     `json:"purpose"`
	VehicleNumber    string     `json:"vehicle_number,omitempty"`
	EntryTime        time.Time  `json:"entry_time"`
	ExitTime         *time.Time `json:"exit_time,omitempty"`
	ExpectedExitTime time.Time  `json:"expected_exit_time"`
	Status           string     `json:"status"`
	AddedBy          string     `json:"added_by,omitempty"`
	Overstaying      bool       `json:"overstaying"`
}

// NewVisitorInfo projects a domain visitor into the client view
func NewVisitorInfo(visitor *community.Visitor, now time.Time) VisitorInfo {
	return VisitorInfo{
		ID:               visitor.ID,
		Name:             visitor.Name,
		Phone:            visitor.Phone,
		UnitLabel:        visitor.UnitLabel,
		Purpose:          visitor.Purpose,
		VehicleNumber:    visitor.VehicleNumber,
		EntryTime:        visitor.EntryTime,
		ExitTime:         visitor.ExitTime,
		ExpectedExitTime: visitor.ExpectedExitTime,
		Status:           string(visitor.Status),
		AddedBy:          visitor.AddedBy,
		Overstaying:      visitor.IsOverstaying(now),
	}
}

// RaiseComplaintInput contains the input for a new maintenance ticket
type RaiseComplaintInput struct {
	SocietyID   uuid.UUID
	AccountID   uuid.UUID
	Title       string
	Description string
	PhotoURL    string
}

// ComplaintInfo is the ticket view returned to the client
type ComplaintInfo struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewComplaintInfo projects a domain complaint into the client view
func NewComplaintInfo(complaint *community.Complaint) ComplaintInfo {
	return ComplaintInfo{
		ID:          complaint.ID,
		AccountID:   complaint.AccountID,
		Title:       complaint.Title,
		Description: complaint.Description,
		PhotoURL:    complaint.PhotoURL,
		Status:      string(complaint.Status),
		CreatedAt:   complaint.CreatedAt,
	}
}

// AddExpenseInput contains the input for recording a society outgoing
type AddExpenseInput struct {
	SocietyID   uuid.UUID
	CreatedBy   uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	IncurredAt  time.Time
}

// ExpenseInfo is the expense view returned to the client
type ExpenseInfo struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	IncurredAt  time.Time       `json:"incurred_at"`
}

// NewExpenseInfo projects a domain expense into the client view
func NewExpenseInfo(expense *community.Expense) ExpenseInfo {
	return ExpenseInfo{
		ID:          expense.ID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Description: expense.Description,
		IncurredAt:  expense.IncurredAt,
	}
}

// AddNoticeInput contains the input for publishing an announcement
type AddNoticeInput struct {
	SocietyID uuid.UUID
	Title     string
	Message   string
	Priority  string
}

// NoticeInfo is the announcement view returned to the client
type NoticeInfo struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Priority  string      `json:"priority"`
	ReadBy    []uuid.UUID `json:"read_by"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewNoticeInfo projects a domain notice into the client view
func NewNoticeInfo(notice *community.Notice) NoticeInfo {
	readBy := notice.ReadBy
	if readBy == nil {
		readBy = []uuid.UUID{}
	}
	return NoticeInfo{
		ID:        notice.ID,
		Title:     notice.Title,
		Message:   notice.Message,
		Priority:  string(notice.Priority),
		ReadBy:    readBy,
		CreatedAt: notice.CreatedAt,
	}
}

// AddVehicleInput contains the input for registering a vehicle
type AddVehicleInput struct {
	SocietyID      uuid.UUID
	OwnerAccountID uuid.UUID
	VehicleNumber  string
	VehicleType    string
	ModelName      string
	ParkingSlot    string
}

// VehicleInfo is the vehicle view returned to the client
type VehicleInfo struct {
	ID             uuid.UUID `json:"id"`
	OwnerAccountID uuid.UUID `json:"owner_account_id"`
	VehicleNumber  string    `json:"vehicle_number"`
	VehicleType    string    `json:"vehicle_type"`
	ModelName      string    `json:"model_name,omitempty"`
	ParkingSlot    string    `json:"parking_slot,omitempty"`
}

// NewVehicleInfo projects a domain vehicle into the client view
func NewVehicleInfo(vehicle *community.Vehicle) VehicleInfo {
	return VehicleInfo{
		ID:             vehicle.ID,
		OwnerAccountID: vehicle.OwnerAccountID,
		VehicleNumber:  vehicle.VehicleNumber,
		VehicleType:    vehicle.VehicleType,
		ModelName:      vehicle.ModelName,
		ParkingSlot:    vehicle.ParkingSlot,
	}
}

// SetEmergencyContactInput contains the input for the personal SOS record
type SetEmergencyContactInput struct {
	SocietyID uuid.UUID
	AccountID uuid.UUID
	Name      string
	Number    string
}
