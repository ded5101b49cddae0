package insights

import (
	"context"
	"fmt"

	"github.com/lifetree-app/lifetree-backend/internal/infrastructure/gemini"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

// recentReflectionLimit bounds how much journal text is sent to the model.
const recentReflectionLimit = 10

type InsightsUseCase struct {
	userRepo       repository.UserRepository
	reflectionRepo repository.ReflectionRepository
	geminiClient   *gemini.GeminiClient
}

func NewInsightsUseCase(
	userRepo repository.UserRepository,
	reflectionRepo repository.ReflectionRepository,
	geminiClient *gemini.GeminiClient,
) *InsightsUseCase {
	return &InsightsUseCase{
		userRepo:       userRepo,
		reflectionRepo: reflectionRepo,
		geminiClient:   geminiClient,
	}
}

// InsightResponse carries one generated observation plus journaling prompts.
type InsightResponse struct {
	Insight string   `json:"insight"`
	Prompts []string `json:"prompts,omitempty"`
}

// Generate produces an AI observation over the user's recent reflections.
// Prompts are best-effort: their failure doesn't fail the insight. Without
// a configured Gemini client the canned fallback observation is returned.
func (uc *InsightsUseCase) Generate(ctx context.Context, userID int) (*InsightResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if uc.geminiClient == nil {
		return &InsightResponse{Insight: gemini.FallbackInsight(user.FullName)}, nil
	}

	reflections, err := uc.reflectionRepo.ListRecent(ctx, userID, recentReflectionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load reflections: %w", err)
	}

	texts := make([]string, 0, len(reflections))
	for _, reflection := range reflections {
		texts = append(texts, reflection.Content)
	}

	profession := ""
	if user.Profession != nil {
		profession = string(*user.Profession)
	}

	insight, err := uc.geminiClient.GenerateInsight(ctx, user.FullName, profession, texts)
	if err != nil {
		return nil, err
	}

	response := &InsightResponse{Insight: insight}
	if prompts, err := uc.geminiClient.GeneratePrompts(ctx, texts); err == nil {
		response.Prompts = prompts
	}

	return response, nil
}
