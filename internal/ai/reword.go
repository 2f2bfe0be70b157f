package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// suggestionSchema constrains rewording output to a suggestions array.
var suggestionSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"suggestions": {
			Type:  TypeArray,
			Items: &Schema{Type: TypeString},
		},
	},
}

// SuggestRewordings asks the model for three more professional
// phrasings of a task comment.
func SuggestRewordings(ctx context.Context, g Generator, comment string) ([]string, error) {
	if comment == "" {
		return nil, errors.New("comment is empty")
	}

	prompt := fmt.Sprintf(`Rephrase the following comment for a project management log to be more professional and concise. Provide 3 alternative versions. The comment is: %q`, comment)

	data, err := g.GenerateJSON(ctx, prompt, suggestionSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, errors.New("could not generate suggestions")
	}

	return parsed.Suggestions, nil
}
