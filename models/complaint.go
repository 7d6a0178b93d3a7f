package models

import "strings"

// Urgency is what the citizen said about the complaint when filing it.
type Urgency string

const (
	UrgencyUnset    Urgency = ""
	UrgencyCritical Urgency = "Critical"
	UrgencyModerate Urgency = "Moderate"
	UrgencyLow      Urgency = "Low"
)

// ParseUrgency normalizes a form value. Unknown values are unset.
func ParseUrgency(s string) Urgency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return UrgencyCritical
	case "moderate":
		return UrgencyModerate
	case "low":
		return UrgencyLow
	default:
		return UrgencyUnset
	}
}

// Priority is the triage label attached to every complaint.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsePriority accepts any casing of High, Medium or Low.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return "", false
	}
}

// Rank orders priorities High > Medium > Low; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// PrioritySource records whether the label came from the model or the fallback rule.
type PrioritySource string

const (
	SourceModel    PrioritySource = "Model"
	SourceFallback PrioritySource = "Fallback"
)

// ClassificationResult is the outcome of classifying one complaint.
type ClassificationResult struct {
	Priority Priority       `json:"priority"`
	Source   PrioritySource `json:"source"`
}

// ComplaintStatus is the admin-managed lifecycle state.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusReviewed   ComplaintStatus = "Reviewed"
	StatusInProgress ComplaintStatus = "In-Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusClosed     ComplaintStatus = "Closed"
)

// ParseComplaintStatus accepts any casing of a known status.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	for _, st := range []ComplaintStatus{StatusPending, StatusReviewed, StatusInProgress, StatusResolved, StatusClosed} {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// ComplaintInput holds the fields the classifier looks at.
type ComplaintInput struct {
	Type        string
	Zone        string
	Address     string
	Description string
	UserUrgency Urgency
}

// ComplaintFeedback is left by the citizen who filed the complaint.
type ComplaintFeedback struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	SubmittedAt   int64  `json:"submittedAt"`
	SubmittedDate string `json:"submittedDate"`
}

// Complaint is the record stored under complaints/{key}.
type Complaint struct {
	Key            string             `json:"key,omitempty"`
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	UserEmail      string             `json:"userEmail"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	Zone           string             `json:"zone"`
	Address        string             `json:"address"`
	Type           string             `json:"type"`
	Description    string             `json:"description"`
	UserUrgency    Urgency            `json:"userUrgency"`
	Priority       Priority           `json:"priority"`
	PrioritySource PrioritySource     `json:"prioritySource"`
	ImageURL       string             `json:"imageUrl"`
	ImageName      string             `json:"imageName,omitempty"`
	Status         ComplaintStatus    `json:"status"`
	Date           string             `json:"date"`
	CreatedAt      int64              `json:"createdAt"`
	AdminNotes     string             `json:"adminNotes,omitempty"`
	LastUpdated    string             `json:"lastUpdated,omitempty"`
	UpdatedBy      string             `json:"updatedBy,omitempty"`
	Feedback       *ComplaintFeedback `json:"feedback,omitempty"`

	PriorityOverriddenBy string `json:"priorityOverriddenBy,omitempty"`
	PriorityOverriddenAt string `json:"priorityOverriddenAt,omitempty"`
}

// Input extracts the classification fields.
func (c Complaint) Input() ComplaintInput {
	return ComplaintInput{
		Type:        c.Type,
		Zone:        c.Zone,
		Address:     c.Address,
		Description: c.Description,
		UserUrgency: c.UserUrgency,
	}
}

// PriorityAudit records a manual priority change by an administrator.
type PriorityAudit struct {
	ComplaintKey string   `json:"complaintKey"`
	From         Priority `json:"from"`
	To           Priority `json:"to"`
	By           string   `json:"by"`
	Reason       string   `json:"reason"`
	At           string   `json:"at"`
}

// ComplaintSummary is the admin dashboard counter block.
type ComplaintSummary struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	InProgress   int `json:"inProgress"`
	Resolved     int `json:"resolved"`
	HighPriority int `json:"highPriority"`
}
