package models

import "time"

// Operation types counted in operation_stats.
const (
	OperationCreate   = "CREATE"
	OperationRead     = "READ"
	OperationUpdate   = "UPDATE"
	OperationDelete   = "DELETE"
	OperationSanitize = "SANITIZE"
)

// Resource types counted in operation_stats.
const (
	ResourceSensitiveWord = "SensitiveWord"
	ResourceMessage       = "Message"
)

// OperationStat is the number of times an operation ran against a resource.
type OperationStat struct {
	ID            int64
	OperationType string
	ResourceType  string
	Count         int64
	LastUpdated   time.Time
}
