package agent

import (
	"context"
	"fmt"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/date"
	"github.com/etnz/lifeadmin/docs"
	"github.com/etnz/lifeadmin/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the chat in charge of the whole conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a personal life organizer: projects, tasks, habits, goals,
			relationships, finances and weekly reviews. He is here primarily to get an
			overview of where he stands and advice on what to do next.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. Check the organizer's data first instead of
			asking the user for things the Secretary already knows.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates an expert grounded in web search for advice that goes
// beyond the user's own data.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal development coach.
		Well read on habit building, goal setting, time management and personal finance.
		Ask the Coach whenever you need general advice, techniques or recent information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal development coach. You can search and find about anything
			related to habits, productivity, relationships, budgeting and wellbeing.
			You leverage Google Search to ground your advice in solid sources.
			Keep your answers short and actionable.
				`}}},
		},
	}
}

// NewSecretary creates the expert in charge of reading the user's organizer.
// open loads a hydrated store on demand so every answer sees fresh data.
func NewSecretary(open func() (*lifeadmin.Store, error)) *Expert {
	lib := []Function{newSummaryFunc(open), newBalanceFunc(open)}

	return &Expert{
		Name: "Secretary",
		Description: `This is the Secretary. She has full read access to the user's organizer:
		projects, tasks, habits and their streaks, goals, contacts and birthdays,
		finance entries and the life balance scores.
		Ask the Secretary anything about the user's own data.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the secretary in charge of the user's personal organizer.
				You know how to use the Tools to extract what the user tracks:
				open and overdue tasks, active projects, habit streaks, goals,
				upcoming birthdays, income and expenses, and life balance scores.
				Other experts might ask you questions about the user's data, pardon
				their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function with plain values.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newSummaryFunc(open func() (*lifeadmin.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the state of the user's organizer on a given day:
			active projects, open and overdue tasks, goals in progress, income, expenses
			and balance, top habit streaks and upcoming birthdays.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The day to report on. Today is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the user's organizer.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day, err := parseDate(args)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			store, err := open()
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			sum := store.Summarize(day)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(&sum),
				},
			}
		},
	}
}

func newBalanceFunc(open func() (*lifeadmin.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "LifeBalance",
			Description: `LifeBalance reports the user's life balance wheel: each life area
			with its 0 to 10 score and notes, and the overall average.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the life areas and their scores.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			store, err := open()
			if err != nil {
				return errorResponse(id, "LifeBalance", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "LifeBalance",
				Response: map[string]any{
					"output": renderer.RenderBalance(store.LifeAreas()),
				},
			}
		},
	}
}

func parseDate(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	d, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return d, nil
}
