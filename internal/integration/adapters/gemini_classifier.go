// Package adapters provides implementations for external service
// integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/finance-dashboard/agent/internal/application/adapter"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
)

// GeminiClassifier implements the adapter.AIClassifier fallback using
// Google Gemini. It is consulted only when the local rule classifier
// finds no match and the agent is online.
type GeminiClassifier struct {
	apiKey    string
	modelName string
	formatter valueobject.Formatter
}

// NewGeminiClassifier creates a new Gemini classifier instance.
func NewGeminiClassifier(apiKey string, formatter valueobject.Formatter) *GeminiClassifier {
	return &GeminiClassifier{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
		formatter: formatter,
	}
}

// IsAvailable checks if the classifier is properly configured.
func (s *GeminiClassifier) IsAvailable() bool {
	return s.apiKey != ""
}

// geminiResult is the JSON shape the model is instructed to return.
type geminiResult struct {
	Matched  bool    `json:"matched"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Budgeted float64 `json:"budgeted"`
	Spent    float64 `json:"spent"`
	Interest float64 `json:"interest"`
	Payment  float64 `json:"payment"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

// Classify extracts a structured record from a free-form utterance. A
// nil record with nil error means the model also found no match.
func (s *GeminiClassifier) Classify(ctx context.Context, text string, kind entity.Kind) (entity.Record, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini classifier is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(text, kind)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if !result.Matched {
		return nil, nil
	}

	return s.toRecord(result, kind), nil
}

// buildPrompt creates the extraction prompt for Gemini.
func (s *GeminiClassifier) buildPrompt(text string, kind entity.Kind) string {
	var sb strings.Builder

	sb.WriteString(`You extract structured personal-finance records from short utterances.
Return ONLY a JSON object with these fields:
  matched (bool), title (string), type (string), category (string),
  amount (number), budgeted (number), spent (number),
  interest (number, percent), payment (number),
  date (string, YYYY-MM-DD or empty), notes (string).

Set matched to false when the utterance contains no usable amount for the
requested record kind. Numbers are plain numerics without currency
symbols. Leave fields that do not apply at their zero values.

`)
	sb.WriteString("Record kind: ")
	sb.WriteString(string(kind))
	sb.WriteString("\nUtterance: ")
	sb.WriteString(text)
	return sb.String()
}

// parseResponse extracts the JSON result from the model response.
func parseResponse(resp *genai.GenerateContentResponse) (*geminiResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	var result geminiResult
	if err := json.Unmarshal([]byte(raw.String()), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *GeminiClassifier) toRecord(r *geminiResult, kind entity.Kind) entity.Record {
	currency := func(v float64) string {
		return s.formatter.Currency(decimalFrom(v))
	}

	switch kind {
	case entity.KindAsset:
		return entity.NewAsset(r.Title, currency(r.Amount), r.Type, r.Date, "0%", entity.TrendUp)
	case entity.KindLiability:
		return entity.NewLiability(
			r.Title,
			currency(r.Amount),
			r.Type,
			s.formatter.Percent(decimalFrom(r.Interest)),
			currency(r.Payment),
			r.Date,
			entity.LiabilityStatusCurrent,
		)
	case entity.KindBudget:
		return entity.NewExpense(r.Title, currency(r.Budgeted), currency(r.Spent), valueobject.ParseAmount)
	case entity.KindDailyExpense:
		return entity.NewDailyExpense(r.Title, currency(r.Amount), r.Category, r.Date, r.Notes)
	}
	return nil
}

func decimalFrom(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

var _ adapter.AIClassifier = (*GeminiClassifier)(nil)
