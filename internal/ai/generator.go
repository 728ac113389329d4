// Package ai implements question generation against the Gemini API. The
// prompt, response schema, and field names are kept in Portuguese so the
// generated payload matches the stored question format exactly.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/evalai/evalai-backend/internal/config"
	"github.com/evalai/evalai-backend/internal/domain"
)

// difficultyInstructions maps a difficulty label to the extra instruction
// appended to the system prompt.
var difficultyInstructions = map[string]string{
	"Básico":   "As perguntas devem ser diretas e testar a compreensão básica dos conceitos.",
	"Médio":    "As perguntas devem exigir interpretação e aplicação dos conceitos em situações práticas.",
	"Avançado": "As perguntas devem ser desafiadoras, exigindo análise crítica e domínio profundo do conteúdo.",
}

// GeminiGenerator produces multiple-choice question sets from reference text.
type GeminiGenerator struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

// NewGeminiGenerator constructs the generator and its API client.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, cfg: cfg}, nil
}

// questionSchema constrains the model to the stored question shape: an array
// of objects with a prompt, exactly five alternatives, the correct index, and
// a rationale.
func questionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"enunciado": {Type: genai.TypeString},
				"alternativas": {
					Type:     genai.TypeArray,
					Items:    &genai.Schema{Type: genai.TypeString},
					MinItems: genai.Ptr[int64](domain.QuestionOptionCount),
					MaxItems: genai.Ptr[int64](domain.QuestionOptionCount),
				},
				"correta":       {Type: genai.TypeInteger},
				"justificativa": {Type: genai.TypeString},
			},
			Required: []string{"enunciado", "alternativas", "correta", "justificativa"},
		},
	}
}

// Generate runs one generation call and decodes the structured response.
// reference is truncated to the configured limit before prompting.
func (g *GeminiGenerator) Generate(ctx context.Context, theme, reference string, count int, difficulty string) ([]domain.Question, error) {
	reference = Truncate(reference, g.cfg.MaxReferenceChars)

	system := fmt.Sprintf(
		"Você é um especialista em criação de avaliações corporativas. "+
			"Crie exatamente %d questões de múltipla escolha sobre o tema \"%s\", "+
			"baseadas exclusivamente no material de referência fornecido. "+
			"Cada questão deve ter exatamente %d alternativas e apenas uma correta. "+
			"Nível de dificuldade: %s. %s",
		count, theme, domain.QuestionOptionCount, difficulty, difficultyInstructions[difficulty],
	)

	contents := []*genai.Content{
		genai.NewContentFromText("Material de referência:\n\n"+reference, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    questionSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var questions []domain.Question
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		log.Error().Err(err).Str("model", g.cfg.Model).Msg("model returned undecodable payload")
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	for i, q := range questions {
		if !q.Valid() {
			return nil, fmt.Errorf("model returned malformed question %d", i+1)
		}
	}
	// Models occasionally over-produce; keep the requested count.
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// Truncate cuts s to at most limit bytes on a rune boundary. A zero or
// negative limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8Start(s[limit]) {
		limit--
	}
	return s[:limit]
}

// utf8Start reports whether b can begin a UTF-8 encoded rune.
func utf8Start(b byte) bool { return b&0xC0 != 0x80 }
