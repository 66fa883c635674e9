package rawg

// StripTags recursively removes the tags field from every object in the
// payload. Tag lists are the largest low-value part of RAWG responses and
// only waste model context. The transform is pure and idempotent.
func StripTags(data any) any {
	switch v := data.(type) {
	case []any:
		cleaned := make([]any, len(v))
		for i, item := range v {
			cleaned[i] = StripTags(item)
		}
		return cleaned
	case map[string]any:
		cleaned := make(map[string]any, len(v))
		for key, value := range v {
			if key == "tags" {
				continue
			}
			cleaned[key] = StripTags(value)
		}
		return cleaned
	default:
		return data
	}
}
