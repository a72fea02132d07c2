package respond

// Action result data readers. Data values are produced in-process by the
// action handlers, but command parameters may have passed through JSON,
// so numbers accept both shapes.

func dataInt(data map[string]interface{}, key string) int {
	if data == nil {
		return 0
	}
	switch raw := data[key].(type) {
	case int:
		return raw
	case float64:
		return int(raw)
	}
	return 0
}

func dataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}

func dataStringSlice(data map[string]interface{}, key string) []string {
	if data == nil {
		return nil
	}
	switch raw := data[key].(type) {
	case []string:
		return raw
	case []interface{}:
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return values
	}
	return nil
}

func dataCountMap(data map[string]interface{}, key string) map[string]int {
	if data == nil {
		return nil
	}
	switch raw := data[key].(type) {
	case map[string]int:
		return raw
	case map[string]interface{}:
		counts := make(map[string]int, len(raw))
		for k, v := range raw {
			if n, ok := v.(float64); ok {
				counts[k] = int(n)
			}
			if n, ok := v.(int); ok {
				counts[k] = n
			}
		}
		return counts
	}
	return nil
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
