package career

// deepMerge merges source into target without mutating either. Nested
// objects merge recursively; every other present value, arrays included,
// replaces the target's value wholesale. Merging a partial resume update
// therefore keeps untouched sections and swaps edited lists atomically.
func deepMerge(target, source map[string]any) map[string]any {
	result := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		result[k] = v
	}

	for key, sourceValue := range source {
		targetMap, targetIsMap := result[key].(map[string]any)
		sourceMap, sourceIsMap := sourceValue.(map[string]any)

		if targetIsMap && sourceIsMap {
			result[key] = deepMerge(targetMap, sourceMap)
			continue
		}
		result[key] = sourceValue
	}

	return result
}
