package client

import "time"

type SanitizeResult struct {
	OriginalMessage  string `json:"originalMessage"`
	SanitizedMessage string `json:"sanitizedMessage"`
	WordsReplaced    int    `json:"wordsReplaced"`
}

type Word struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WordUpdate carries the optional fields of an update; nil means unchanged.
type WordUpdate struct {
	Word     *string `json:"word,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type Stat struct {
	ID            int64     `json:"id"`
	OperationType string    `json:"operationType"`
	ResourceType  string    `json:"resourceType"`
	Count         int64     `json:"count"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

type HealthEntry struct {
	Status      string   `json:"status"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
}

type HealthReport struct {
	Status        string                 `json:"status"`
	TotalDuration string                 `json:"totalDuration"`
	Entries       map[string]HealthEntry `json:"entries"`
}

type Metrics struct {
	Timestamp      time.Time `json:"timestamp"`
	Uptime         string    `json:"uptime"`
	MemoryUsageMB  uint64    `json:"memoryUsageMB"`
	CPUTimeSeconds float64   `json:"cpuTimeSeconds"`
	ThreadCount    int32     `json:"threadCount"`
}
