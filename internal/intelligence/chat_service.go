package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/grindcli/grind/internal/llm"
)

type chatService struct {
	client llm.Client
}

// NewChatService creates a ChatService backed by an LLM client. Unlike
// recommendations there is no deterministic fallback: a chat without a
// model is not useful, so errors surface to the caller.
func NewChatService(client llm.Client) ChatService {
	return &chatService{client: client}
}

// chatLLMResponse is the JSON structure expected from the LLM.
type chatLLMResponse struct {
	Response string `json:"response"`
}

func (s *chatService) Reply(ctx context.Context, req ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("message is empty")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatUserPrompt(req),
	})
	if err != nil {
		return "", fmt.Errorf("llm chat failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[chatLLMResponse](resp.Text, validateChatResponse)
	if err != nil {
		// Models occasionally answer in plain prose; take it as-is rather
		// than discarding a usable reply.
		if text := strings.TrimSpace(resp.Text); text != "" && !strings.Contains(text, "{") {
			return text, nil
		}
		return "", fmt.Errorf("failed to extract chat response: %w", err)
	}
	return parsed.Response, nil
}

func buildChatUserPrompt(req ChatRequest) string {
	var b strings.Builder

	if req.PreferredLanguage != "" {
		fmt.Fprintf(&b, "The user's preferred coding language is %s.\n\n", req.PreferredLanguage)
	}

	if len(req.History) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, turn := range req.History {
			role := "User"
			if turn.Role == "model" {
				role = "Mentor"
			}
			b.WriteString(role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("## User Message\n")
	b.WriteString(req.Message)
	return b.String()
}

func validateChatResponse(resp chatLLMResponse) error {
	if strings.TrimSpace(resp.Response) == "" {
		return fmt.Errorf("response field is required")
	}
	return nil
}
