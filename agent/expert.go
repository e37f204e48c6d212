package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a business expert.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// Start opens the chat session with the model.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewAnalyst creates the fixed income analyst expert. reports is the
// rendered markdown of every analytics report for the loaded portfolio;
// it becomes part of the system instruction so the analyst grounds its
// answers in the actual figures.
func NewAnalyst(portfolioName, reports string) *Expert {
	instruction := fmt.Sprintf(`
You are a fixed income portfolio analyst. The user has loaded the portfolio
%q and computed the analytics reports below. Answer questions about credit
quality, sector and currency exposure, duration, key-rate duration, maturity
profile and concentration, grounding every figure you give in these reports.
When a report is empty, say the underlying column was not found rather than
inventing data.

%s`, portfolioName, reports)

	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
