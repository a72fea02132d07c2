package actions

import "time"

// Parameter readers. Classifier output carries typed Go values;
// command-endpoint parameters arrive as decoded JSON. Both shapes are
// accepted.

func paramString(params map[string]interface{}, key string) string {
	if params == nil {
		return ""
	}
	if value, ok := params[key].(string); ok {
		return value
	}
	return ""
}

func paramStringSlice(params map[string]interface{}, key string) []string {
	if params == nil {
		return nil
	}
	switch raw := params[key].(type) {
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

func paramInt(params map[string]interface{}, key string) int {
	if params == nil {
		return 0
	}
	switch raw := params[key].(type) {
	case int:
		return raw
	case float64:
		return int(raw)
	}
	return 0
}

// paramTime parses an RFC3339 timestamp parameter. Zero time when absent
// or malformed.
func paramTime(params map[string]interface{}, key string) time.Time {
	raw := paramString(params, key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// frameworksParam reads the frameworks list. The classifier's "all"
// placeholder maps to nil, which the platform treats as every active
// framework.
func frameworksParam(params map[string]interface{}) []string {
	frameworks := paramStringSlice(params, "frameworks")
	if len(frameworks) == 1 && frameworks[0] == "all" {
		return nil
	}
	return frameworks
}

// frameworkParam reads a single framework with the same "all" handling.
func frameworkParam(params map[string]interface{}) string {
	framework := paramString(params, "framework")
	if framework == "all" {
		return ""
	}
	return framework
}
