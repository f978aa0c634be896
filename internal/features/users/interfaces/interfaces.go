package users_interfaces

import "github.com/google/uuid"

// AuditLogWriter decouples the users feature from the audit log storage.
type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID)
}

// AssignedTaskCounter provides the read-time tasks_count decoration without
// importing the tasks feature.
type AssignedTaskCounter interface {
	CountTasksAssignedToUser(userID uuid.UUID) (int64, error)
}
