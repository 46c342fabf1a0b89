package gemini

import (
	"context"

	"google.golang.org/genai"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

const model = "gemini-2.5-flash"

const systemInstruction = "You are a coding assistant for software library documentation. " +
	"Ground every answer in the documentation available through file search. " +
	"Prefer working code examples that follow the documented APIs exactly. " +
	"If the documentation does not cover the question, say so instead of guessing."

var _ docsearch.Generator = (*Generator)(nil)

// Generator answers prompts grounded in a File Search store.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate implements docsearch.Generator.
func (g *Generator) Generate(ctx context.Context, storeID, prompt string) (string, error) {
	if storeID == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "store id required")
	}
	if prompt == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(storeID),
	)
	if err != nil {
		return "", classify(err, "generate against %s", storeID)
	}
	if result == nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig wiring file search against
// the given store.
func BuildConfig(storeID string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
		Tools: []*genai.Tool{{
			FileSearch: &genai.FileSearch{
				FileSearchStoreNames: []string{storeID},
			},
		}},
	}
}
