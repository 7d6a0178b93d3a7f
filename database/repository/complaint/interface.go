package complaintRepo

import (
	"context"
	"errors"

	"jeevanrakshak/database"
	"jeevanrakshak/models"

	"firebase.google.com/go/v4/db"
)

const (
	complaintsPath    = "complaints"
	priorityAuditPath = "complaintPriorityAudit"
)

// ErrNotFound is returned when no complaint is stored under the key.
var ErrNotFound = errors.New("complaint not found")

type ComplaintRepository interface {
	Create(ctx context.Context, complaint models.Complaint) (string, error)
	GetByKey(ctx context.Context, key string) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	// Update writes the given fields of an existing complaint.
	Update(ctx context.Context, key string, fields map[string]interface{}) error
	// OverridePriority sets audit.To as the priority of audit.ComplaintKey and
	// stores the audit entry in the same write. It returns the previous priority.
	OverridePriority(ctx context.Context, audit models.PriorityAudit) (models.Priority, error)
	Delete(ctx context.Context, key string) error
}

type firebaseComplaintRepo struct {
	root       *db.Ref
	complaints *db.Ref
}

// NewFirebaseComplaintRepo returns a ComplaintRepository backed by the global realtime database.
func NewFirebaseComplaintRepo() ComplaintRepository {
	return NewComplaintRepo(database.RealtimeDB)
}

// NewComplaintRepo returns a ComplaintRepository on the given client.
func NewComplaintRepo(client *db.Client) ComplaintRepository {
	return &firebaseComplaintRepo{
		root:       client.NewRef("/"),
		complaints: client.NewRef(complaintsPath),
	}
}
