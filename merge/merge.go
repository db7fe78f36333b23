package merge

// Maps merges added into start and returns the result as a new mapping.
// Keys present in both win from added, except when both values are
// mappings, in which case the merge recurses. Neither input is mutated;
// every value placed into the result is deep-copied.
func Maps(start, added map[string]any) map[string]any {
	merged := Copy(start)

	for key, value := range added {
		startValue, inStart := start[key]
		startMap, startIsMap := startValue.(map[string]any)
		addedMap, addedIsMap := value.(map[string]any)

		if inStart && startIsMap && addedIsMap {
			merged[key] = Maps(startMap, addedMap)

			continue
		}

		merged[key] = Value(value)
	}

	return merged
}

// Copy returns a deep copy of the mapping. A nil input yields an empty,
// non-nil mapping so callers can always write into the result.
func Copy(m map[string]any) map[string]any {
	copied := make(map[string]any, len(m))

	for key, value := range m {
		copied[key] = Value(value)
	}

	return copied
}

// Value returns a deep copy of a configuration value: mappings and
// sequences are copied recursively, scalars are returned as-is.
func Value(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return Copy(typed)
	case []any:
		copied := make([]any, len(typed))
		for i, element := range typed {
			copied[i] = Value(element)
		}

		return copied
	default:
		return v
	}
}
