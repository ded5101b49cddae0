package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateInsight writes a short encouraging observation from the user's
// recent reflections. Falls back to a canned message when the API is
// unavailable.
func (c *GeminiClient) GenerateInsight(ctx context.Context, fullName string, profession string, reflections []string) (string, error) {
	prompt := fmt.Sprintf(`
		You are a gentle journaling companion for a personal life-journal app.
		User name: %s
		User profession: %s
		Recent journal reflections: %v

		Task: Write a short, warm observation (2-3 sentences) about recurring
		themes in these reflections. Encouraging, never clinical.
		Output: Just the observation text.
	`, fullName, profession, reflections)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return FallbackInsight(fullName), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return FallbackInsight(fullName), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// FallbackInsight is the canned observation used when no model is
// configured or generation fails.
func FallbackInsight(fullName string) string {
	name := "you"
	if fullName != "" {
		name = fullName
	}
	return fmt.Sprintf("Your journal is growing, %s. Every entry is another ring on the tree. Keep writing and the patterns will show themselves.", name)
}

// GeneratePrompts produces 3 journaling prompts tailored to the user's
// recent reflections.
func (c *GeminiClient) GeneratePrompts(ctx context.Context, reflections []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 journaling prompts for a personal life-journal app.
		Recent reflections: %v

		Task: Create 3 distinct, open-ended prompts that build on what the
		user has been writing about. One sentence each.
		Output: JSON array of strings. Example: ["What...", "When..."]
	`, reflections)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	// Clean up markdown code blocks if present
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var prompts []string
	if err := json.Unmarshal([]byte(responseText), &prompts); err != nil {
		// Fallback if JSON parsing fails - just return raw text split by newlines
		lines := strings.Split(responseText, "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				prompts = append(prompts, line)
			}
		}
		if len(prompts) == 0 {
			return nil, fmt.Errorf("failed to parse prompts: %w", err)
		}
	}

	return prompts, nil
}
