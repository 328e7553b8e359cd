package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"go-suraksha/types"

	"github.com/sashabaranov/go-openai"
)

// Assessor scores disaster risk for a weather snapshot through a chat
// completion provider. It never fails: both failure modes resolve to fixed
// fallback assessments, and the two are deliberately distinct. The
// network-failure fallback (Moderate, 4) means "could not reach the model";
// the parse-failure fallback (Unknown, 0) means "the model answered but
// nonsensically".
type Assessor struct {
	client *openai.Client
	model  string
}

func NewAssessor(apiKey, baseURL, model string) *Assessor {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Assessor{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Assess returns a risk assessment for the snapshot plus a degraded flag
// set whenever a fallback was used. No retries, no caching.
func (a *Assessor) Assess(ctx context.Context, snapshot types.WeatherSnapshot) (types.RiskAssessment, bool) {
	prompt := buildPrompt(snapshot)

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		log.Printf("Risk assessment request failed for %s: %v", snapshot.Location.Name, err)
		return NetworkFallback(), true
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("Risk assessment returned no choices for %s", snapshot.Location.Name)
		return NetworkFallback(), true
	}

	assessment, err := parseAssessment(resp.Choices[0].Message.Content)
	if err != nil {
		log.Printf("Risk assessment parse failed for %s: %v", snapshot.Location.Name, err)
		return ParseFallback(), true
	}
	return assessment, false
}

func buildPrompt(s types.WeatherSnapshot) string {
	return fmt.Sprintf(`As a disaster management expert, analyze the following weather conditions and provide a disaster risk assessment:

Location: %s
Weather Condition: %s
Temperature: %.1f°C
Humidity: %d%%
Wind Speed: %.1f km/h
Precipitation: %.1f mm

Please provide:
1. A risk level (Low, Moderate, High, Severe, or Extreme)
2. A brief explanation of potential hazards
3. Key safety recommendations

Format your response as a JSON object with the following structure:
{
  "riskLevel": "Low/Moderate/High/Severe/Extreme",
  "riskScore": 1-10,
  "explanation": "Brief explanation of the risk assessment",
  "potentialHazards": ["hazard1", "hazard2"],
  "safetyRecommendations": ["recommendation1", "recommendation2", "recommendation3"]
}`,
		s.Location.Name, s.Condition, s.TemperatureC, s.HumidityPct, s.WindKph, s.PrecipitationMm)
}

// parseAssessment decodes the model's reply. An assessment outside the
// defined scale counts as unparseable so the caller gets the Unknown
// fallback rather than an out-of-range score.
func parseAssessment(content string) (types.RiskAssessment, error) {
	var assessment types.RiskAssessment
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &assessment); err != nil {
		return types.RiskAssessment{}, fmt.Errorf("decode model reply: %w", err)
	}
	if !assessment.Level.Known() {
		return types.RiskAssessment{}, fmt.Errorf("model returned unknown risk level %q", assessment.Level)
	}
	if assessment.Score < 1 || assessment.Score > 10 {
		return types.RiskAssessment{}, fmt.Errorf("model returned risk score %d out of range", assessment.Score)
	}
	return assessment, nil
}

// NetworkFallback is the assessment served when the provider is unreachable.
func NetworkFallback() types.RiskAssessment {
	return types.RiskAssessment{
		Level:       types.RiskModerate,
		Score:       4,
		Explanation: "Fallback analysis due to API error. This is a generic assessment.",
		Hazards:     []string{"Unknown weather conditions", "Potential service disruptions"},
		Recommendations: []string{
			"Stay informed through local news",
			"Keep emergency supplies ready",
			"Follow official guidance",
		},
	}
}

// ParseFallback is the assessment served when the provider answered but the
// payload did not decode.
func ParseFallback() types.RiskAssessment {
	return types.RiskAssessment{
		Level:           types.RiskUnknown,
		Score:           0,
		Explanation:     "Unable to analyze risk based on current data.",
		Hazards:         []string{"Unknown"},
		Recommendations: []string{"Stay informed through official channels"},
	}
}
