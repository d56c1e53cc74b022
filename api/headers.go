package api

// NormalizeHeaders folds the host's occasional sequence-of-single-key
// mappings shape ([{K1:V1}, {K2:V2}, ...]) into one mapping. Keys merge
// left to right, so a later entry overwrites an earlier entry of the same
// key. A value that is already a single mapping passes through unchanged,
// which makes the fold idempotent. Anything else is returned as-is.
func NormalizeHeaders(raw any) any {
	switch h := raw.(type) {
	case map[string]any, map[string]string, nil:
		return raw
	case []any:
		return foldHeaderList(h)
	case []map[string]any:
		list := make([]any, len(h))
		for i, m := range h {
			list[i] = m
		}
		return foldHeaderList(list)
	case []map[string]string:
		list := make([]any, len(h))
		for i, m := range h {
			list[i] = m
		}
		return foldHeaderList(list)
	}
	return raw
}

func foldHeaderList(list []any) map[string]any {
	out := make(map[string]any, len(list))
	for _, entry := range list {
		switch m := entry.(type) {
		case map[string]any:
			for k, v := range m {
				out[k] = v
			}
		case map[string]string:
			for k, v := range m {
				out[k] = v
			}
		}
	}
	return out
}
