// Package assistant wraps the completion provider behind the
// disaster-management chat persona.
package assistant

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a helpful disaster management assistant for the Disaster Alert System.
Your primary goal is to provide accurate information about disasters, safety measures, and emergency procedures.
Focus on being informative, clear, and reassuring. Provide practical advice that can help people stay safe during various types of disasters.
When discussing disaster severity, use the following scale:
- Low: Minimal risk to life and property
- Moderate: Some risk to vulnerable populations and property
- High: Significant risk to life and property
- Severe: High risk to life and property, immediate action required
- Extreme: Catastrophic risk, evacuation may be necessary

Keep responses concise and focused on disaster management, weather events, and safety.`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Assistant struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Assistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Assistant{client: openai.NewClientWithConfig(cfg), model: model}
}

// Reply sends the conversation, prefixed with the fixed system prompt, and
// returns the assistant's next message. Unlike the risk assessor there is no
// fallback here: a chat the provider cannot answer is surfaced as an error.
func (a *Assistant) Reply(ctx context.Context, messages []Message) (Message, error) {
	all := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	all = append(all, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		all = append(all, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       a.model,
			Messages:    all,
			Temperature: 0.7,
			MaxTokens:   500,
		},
	)
	if err != nil {
		return Message{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Message{}, fmt.Errorf("chat completion returned empty response")
	}

	choice := resp.Choices[0].Message
	return Message{Role: choice.Role, Content: choice.Content}, nil
}
