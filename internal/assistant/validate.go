package assistant

import (
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

// ValidateArgs checks decoded tool arguments against the tool input schema:
// required fields must be present, every supplied value must match the
// declared type tag, and enum fields must hold one of their allowed values.
// Fields are checked in name order so the first reported violation is
// deterministic.
func ValidateArgs(input domain.ToolInput, args map[string]any) error {
	names := make([]string, 0, len(input.Fields))
	for name := range input.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := input.Fields[name]
		value, present := args[name]
		if !present {
			if field.Required {
				return domain.NewValidationErr(fmt.Sprintf("missing required parameter %q", name))
			}
			continue
		}
		if err := validateField(name, field, value); err != nil {
			return err
		}
	}
	return nil
}

func validateField(name string, field domain.ToolField, value any) error {
	switch field.Type {
	case "string":
		s, ok := value.(string)
		if !ok {
			return domain.NewValidationErr(fmt.Sprintf("parameter %q must be a string", name))
		}
		if err := validateEnum(name, field.Enum, s); err != nil {
			return err
		}
	case "number", "integer":
		if _, ok := value.(float64); !ok {
			return domain.NewValidationErr(fmt.Sprintf("parameter %q must be a number", name))
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return domain.NewValidationErr(fmt.Sprintf("parameter %q must be a boolean", name))
		}
	case "array":
		items, ok := value.([]any)
		if !ok {
			return domain.NewValidationErr(fmt.Sprintf("parameter %q must be an array", name))
		}
		if field.Items != nil {
			if err := validateItems(name, *field.Items, items); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateItems(name string, items domain.ToolItems, values []any) error {
	for _, value := range values {
		switch items.Type {
		case "string":
			s, ok := value.(string)
			if !ok {
				return domain.NewValidationErr(fmt.Sprintf("parameter %q must contain only strings", name))
			}
			if err := validateEnum(name, items.Enum, s); err != nil {
				return err
			}
		case "number", "integer":
			if _, ok := value.(float64); !ok {
				return domain.NewValidationErr(fmt.Sprintf("parameter %q must contain only numbers", name))
			}
		case "object":
			// Object elements are only shape-checked here; per-entry field
			// validation belongs to the tool that interprets them.
			if _, ok := value.(map[string]any); !ok {
				return domain.NewValidationErr(fmt.Sprintf("parameter %q must contain only objects", name))
			}
		}
	}
	return nil
}

func validateEnum(name string, allowed []string, value string) error {
	if len(allowed) == 0 {
		return nil
	}
	for _, candidate := range allowed {
		if candidate == value {
			return nil
		}
	}
	return domain.NewValidationErr(fmt.Sprintf("parameter %q must be one of %v", name, allowed))
}
