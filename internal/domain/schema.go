package domain

// JSONSchema renders the tool input as a plain JSON-schema object map, the
// shape served by the tool-server protocol and consumed by LLM providers.
func (ti ToolInput) JSONSchema() map[string]any {
	properties := make(map[string]any, len(ti.Fields))
	required := []string{}

	for name, field := range ti.Fields {
		properties[name] = field.jsonSchema()
		if field.Required {
			required = append(required, name)
		}
	}

	schema := map[string]any{
		"type":       ti.Type,
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (f ToolField) jsonSchema() map[string]any {
	prop := map[string]any{"type": f.Type}
	if f.Description != "" {
		prop["description"] = f.Description
	}
	if len(f.Enum) > 0 {
		prop["enum"] = f.Enum
	}
	if f.Items != nil {
		prop["items"] = f.Items.jsonSchema()
	}
	return prop
}

func (it ToolItems) jsonSchema() map[string]any {
	items := map[string]any{"type": it.Type}
	if len(it.Enum) > 0 {
		items["enum"] = it.Enum
	}
	if len(it.Fields) > 0 {
		properties := make(map[string]any, len(it.Fields))
		required := []string{}
		for name, field := range it.Fields {
			properties[name] = field.jsonSchema()
			if field.Required {
				required = append(required, name)
			}
		}
		items["properties"] = properties
		if len(required) > 0 {
			items["required"] = required
		}
	}
	return items
}

// ParseToolInputSchema rebuilds a tagged tool input from a JSON-schema
// object map, the inverse of JSONSchema. Used when tool definitions arrive
// over the tool-server protocol.
func ParseToolInputSchema(schema map[string]any) ToolInput {
	input := ToolInput{Type: stringValue(schema["type"]), Fields: map[string]ToolField{}}
	if input.Type == "" {
		input.Type = "object"
	}

	properties, _ := schema["properties"].(map[string]any)
	required := stringSlice(schema["required"])

	for name, raw := range properties {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		field := parseToolField(prop)
		for _, req := range required {
			if req == name {
				field.Required = true
			}
		}
		input.Fields[name] = field
	}
	return input
}

func parseToolField(prop map[string]any) ToolField {
	field := ToolField{
		Type:        stringValue(prop["type"]),
		Description: stringValue(prop["description"]),
		Enum:        stringSlice(prop["enum"]),
	}

	items, ok := prop["items"].(map[string]any)
	if !ok {
		return field
	}

	toolItems := &ToolItems{
		Type: stringValue(items["type"]),
		Enum: stringSlice(items["enum"]),
	}
	if properties, ok := items["properties"].(map[string]any); ok {
		toolItems.Fields = map[string]ToolField{}
		itemRequired := stringSlice(items["required"])
		for name, rawItemProp := range properties {
			itemProp, ok := rawItemProp.(map[string]any)
			if !ok {
				continue
			}
			itemField := parseToolField(itemProp)
			for _, req := range itemRequired {
				if req == name {
					itemField.Required = true
				}
			}
			toolItems.Fields[name] = itemField
		}
	}
	field.Items = toolItems
	return field
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		res := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				res = append(res, s)
			}
		}
		return res
	default:
		return nil
	}
}
