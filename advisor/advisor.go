// Package advisor implements a chat with a Gemini model about the current budget.
package advisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const instructions = `You are a careful personal finance advisor.
You answer questions about the user's budget below, in a few short paragraphs
of markdown. Amounts are in dollars. Never invent entries that are not listed.
`

// sender is the part of a genai.Chat the advisor needs.
type sender interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Advisor is a chat session primed with a budget brief.
type Advisor struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      sender
}

// New creates an advisor for the ledger. Start must be called before Ask.
func New(model string, l *budget.Ledger) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: instructions + "\n" + Brief(l)}},
			},
		},
	}
}

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends a question and returns the text of the answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", errors.New("advisor is not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", a.ModelName)
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

const prompt = "advise> "

// Run starts an interactive session: prompts are asked first, then questions
// are read from r until "bye" or the end of the input.
// Answers are passed to show.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, show func(string), prompts ...string) error {
	in := bufio.NewReader(r)
	fmt.Fprintln(w, "Ask anything about your budget. Type 'bye' to exit.")

	for {
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(w, prompt+input)
		} else {
			fmt.Fprint(w, prompt)
			line, err := in.ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			input = strings.TrimSpace(line)
			if err == io.EOF && input == "" {
				fmt.Fprintln(w)
				return nil // Clean exit on Ctrl+D
			}
		}

		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		show(answer)
	}
}

// Brief describes the ledger in markdown: its totals and its expense categories.
func Brief(l *budget.Ledger) string {
	var b strings.Builder
	b.WriteString(renderer.Summary(l.Summary()))
	b.WriteString("\n")
	categories, err := l.ExpenseCategories()
	if err != nil {
		b.WriteString("There are no expenses yet.\n")
		return b.String()
	}
	b.WriteString(renderer.ExpenseCategories(categories))
	return b.String()
}
