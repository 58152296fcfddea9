package node

// Clone returns a deep copy of the plain structure of v: every []any and
// map[string]any reachable through plain containers is copied, everything
// else (scalars, typed values) is shared. Cyclic structures never return.
func Clone(v any) any {
	switch n := v.(type) {
	case []any:
		if n == nil {
			return n
		}

		out := make([]any, len(n))
		for i, e := range n {
			out[i] = Clone(e)
		}

		return out
	case map[string]any:
		if n == nil {
			return n
		}

		out := make(map[string]any, len(n))
		for k, e := range n {
			out[k] = Clone(e)
		}

		return out
	default:
		return v
	}
}
