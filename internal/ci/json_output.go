package ci

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/s0ders/cz-config/czconfig"
)

// ViolationOutput represents a single failed check in the JSON output.
type ViolationOutput struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Length  int    `json:"length,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// JSONOutput is the structured report of a check.
type JSONOutput struct {
	Valid      bool              `json:"valid"`
	Type       string            `json:"type,omitempty"`
	TypeName   string            `json:"type_name,omitempty"`
	Violations []ViolationOutput `json:"violations"`
}

// NewJSONOutput builds a report from a check result. typeValue is the checked commit type, empty if none was.
func NewJSONOutput(cfg czconfig.Config, typeValue string, result czconfig.Result) *JSONOutput {
	out := &JSONOutput{
		Valid:      result.Valid(),
		Type:       typeValue,
		Violations: make([]ViolationOutput, 0, len(result.Violations)),
	}

	if commitType, ok := cfg.Lookup(typeValue); ok {
		out.TypeName = commitType.Name
	}

	for _, v := range result.Violations {
		out.Violations = append(out.Violations, ViolationOutput{
			Field:   v.Field,
			Message: v.Error(),
			Length:  v.Length,
			Limit:   v.Limit,
		})
	}

	return out
}

// Write outputs the JSON to the given writer.
func (j *JSONOutput) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(j); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}
