package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/overwatch/internal/llm"
)

// OfflineMessage is the single user-facing signal for any assistant failure.
const OfflineMessage = "Assistant offline."

// Reply is the outcome of a consultation. Offline replies are a normal
// result, not an error: the dashboard keeps working without the assistant.
type Reply struct {
	Text    string
	Offline bool
}

// Service runs consultations against the assistant.
type Service interface {
	// Consult builds the prompt for the given mode and question and asks
	// the assistant. Failures of the external call never propagate: they
	// come back as an offline Reply.
	Consult(ctx context.Context, mode Mode, question string, snapshot Context) Reply
}

type service struct {
	client llm.Client
}

// NewService creates an advisory Service backed by an assistant client.
// A nil client means the assistant is not configured; every consult is
// answered offline.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Consult(ctx context.Context, mode Mode, question string, snapshot Context) Reply {
	spec, ok := modeTable[mode]
	if !ok {
		return Reply{Text: OfflineMessage, Offline: true}
	}
	if s.client == nil {
		return Reply{Text: OfflineMessage, Offline: true}
	}

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         spec.Task,
		SystemPrompt: spec.Instruction,
		UserPrompt:   buildUserPrompt(question, snapshot),
	})
	if err != nil {
		return Reply{Text: OfflineMessage, Offline: true}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Reply{Text: OfflineMessage, Offline: true}
	}
	return Reply{Text: text}
}

func buildUserPrompt(question string, snapshot Context) string {
	var b strings.Builder
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "Operator query: %s\n\n", q)
	}
	b.WriteString("Situation report:\n")
	b.WriteString(snapshot.Render())
	return b.String()
}
