package models

import "time"

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message        string `json:"message" binding:"required,min=1,max=2000"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is returned by POST /api/chat
type ChatResponse struct {
	Reply          string              `json:"reply"`
	Prompt         string              `json:"prompt,omitempty"` // set when no generator is configured
	ConversationID string              `json:"conversation_id"`
	Documents      []KnowledgeDocument `json:"documents"`
	Generated      bool                `json:"generated"`
	LatencyMs      int64               `json:"latency_ms"`
	Timestamp      time.Time           `json:"timestamp"`
}

// SearchRequest is the body of the search and recommend endpoints
type SearchRequest struct {
	Query string `json:"query" binding:"required,min=1,max=500"`
	TopK  int    `json:"top_k,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// ContextRequest is the body of POST /api/knowledge/context
type ContextRequest struct {
	Query string `json:"query" binding:"required,min=1,max=2000"`
}

// ContextResponse carries the assembled prompt and the documents behind it
type ContextResponse struct {
	Prompt    string              `json:"prompt"`
	Documents []KnowledgeDocument `json:"documents"`
}
