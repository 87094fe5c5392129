// Package intelligence provides the LLM-backed coach features: problem
// recommendations and the mentor chat. Both degrade gracefully when the
// model is unreachable or hallucinates.
package intelligence

import (
	"context"

	"github.com/grindcli/grind/internal/domain"
)

// SolvedSummary is the slice of a record the recommender sees. It is
// deliberately narrow: titles and dates stay local.
type SolvedSummary struct {
	Category   domain.Category   `json:"category"`
	Difficulty domain.Difficulty `json:"difficulty"`
	URL        string            `json:"url"`
}

// RecommendRequest asks for ranked practice suggestions.
type RecommendRequest struct {
	Solved          []SolvedSummary
	FocusCategories []domain.Category
	SourceSheetURL  string
}

// Recommendation is one suggested problem.
type Recommendation struct {
	Category    domain.Category   `json:"category"`
	ProblemName string            `json:"problem_name"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	URL         string            `json:"url"`
	Reason      string            `json:"reason"`
}

// RecommendResponse carries the suggestions plus where they came from:
// "llm" or "deterministic".
type RecommendResponse struct {
	Recommendations []Recommendation
	Source          string
}

// RecommendService produces ranked practice suggestions from solve history.
type RecommendService interface {
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

// ChatTurn is one entry of the mentor conversation history.
type ChatTurn struct {
	Role    string // "user" or "model"
	Content string
}

// ChatRequest is one user message plus the conversation so far.
type ChatRequest struct {
	Message           string
	History           []ChatTurn
	PreferredLanguage string
}

// ChatService answers mentor-chat messages.
type ChatService interface {
	Reply(ctx context.Context, req ChatRequest) (string, error)
}
