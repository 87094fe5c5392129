package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/domain"
	"github.com/grindcli/grind/internal/llm"
)

type recommendService struct {
	client llm.Client
}

// NewRecommendService creates a RecommendService backed by an LLM client.
func NewRecommendService(client llm.Client) RecommendService {
	return &recommendService{client: client}
}

// recommendLLMResponse is the JSON structure expected from the LLM.
type recommendLLMResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

func (s *recommendService) Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	resp, err := s.generate(ctx, req)
	if err != nil {
		return DeterministicRecommend(req), nil
	}

	kept := filterGrounded(resp.Recommendations, req)
	if len(kept) == 0 {
		// The model produced nothing usable; fall back.
		return DeterministicRecommend(req), nil
	}

	return &RecommendResponse{Recommendations: kept, Source: "llm"}, nil
}

func (s *recommendService) generate(ctx context.Context, req RecommendRequest) (*recommendLLMResponse, error) {
	// A nil client means the LLM is disabled; the deterministic path
	// handles everything.
	if s.client == nil {
		return nil, llm.ErrUnavailable
	}

	userPrompt, err := buildRecommendUserPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecommend,
		SystemPrompt: recommendSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm recommendation failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[recommendLLMResponse](resp.Text, validateRecommendResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract recommendations: %w", err)
	}
	return &parsed, nil
}

func buildRecommendUserPrompt(req RecommendRequest) (string, error) {
	payload := struct {
		Solved          []SolvedSummary   `json:"solved"`
		FocusCategories []domain.Category `json:"focus_categories,omitempty"`
		SourceSheetURL  string            `json:"source_sheet_url"`
	}{req.Solved, req.FocusCategories, req.SourceSheetURL}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling solve history: %w", err)
	}

	var b strings.Builder
	b.WriteString("## Solve History\n")
	b.Write(data)
	b.WriteString("\n\nSuggest the next problems to practice.")
	return b.String(), nil
}

func validateRecommendResponse(resp recommendLLMResponse) error {
	if len(resp.Recommendations) == 0 {
		return fmt.Errorf("recommendations array is required")
	}
	return nil
}

// filterGrounded drops hallucinated entries: unknown categories, unknown
// difficulties, empty problem names, and problems the user already solved.
func filterGrounded(recs []Recommendation, req RecommendRequest) []Recommendation {
	solvedURLs := make(map[string]bool, len(req.Solved))
	for _, s := range req.Solved {
		if s.URL != "" {
			solvedURLs[s.URL] = true
		}
	}

	var kept []Recommendation
	for _, r := range recs {
		if strings.TrimSpace(r.ProblemName) == "" {
			continue
		}
		if _, err := domain.ParseCategory(string(r.Category)); err != nil {
			continue
		}
		if _, err := domain.ParseDifficulty(string(r.Difficulty)); err != nil {
			continue
		}
		if solvedURLs[r.URL] {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
