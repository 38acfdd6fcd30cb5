package httpapi

import (
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
)

type sanitizeRequest struct {
	Message string `json:"message" binding:"required"`
}

type sanitizeResponse struct {
	OriginalMessage  string `json:"originalMessage"`
	SanitizedMessage string `json:"sanitizedMessage"`
	WordsReplaced    int    `json:"wordsReplaced"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWordResponse(w *models.SensitiveWord) wordResponse {
	return wordResponse{
		ID:        w.ID,
		Word:      w.Word,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type createWordRequest struct {
	Word string `json:"word" binding:"required"`
}

type updateWordRequest struct {
	Word     *string `json:"word"`
	IsActive *bool   `json:"isActive"`
}

type bulkImportRequest struct {
	Words []string `json:"words" binding:"required"`
}

type statResponse struct {
	ID            int64     `json:"id"`
	OperationType string    `json:"operationType"`
	ResourceType  string    `json:"resourceType"`
	Count         int64     `json:"count"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

func toStatResponses(in []*models.OperationStat) []statResponse {
	out := make([]statResponse, 0, len(in))
	for _, s := range in {
		out = append(out, statResponse{
			ID:            s.ID,
			OperationType: s.OperationType,
			ResourceType:  s.ResourceType,
			Count:         s.Count,
			LastUpdated:   s.LastUpdated,
		})
	}
	return out
}
