package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes a strict EDN subset (maps, vectors, strings, numbers,
// booleans, nil). Values go through JSON first so json tags decide keys.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	e := &ednWriter{pretty: pretty}
	e.value(x, 0)
	e.sb.WriteByte('\n')
	_, err = io.WriteString(w, e.sb.String())
	return err
}

type ednWriter struct {
	sb     strings.Builder
	pretty bool
}

func (e *ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.sb.WriteByte('[')
		for i, it := range t {
			e.sep(i, depth+1)
			e.value(it, depth+1)
		}
		e.close(len(t), depth)
		e.sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.sb.WriteByte('{')
		for i, k := range keys {
			e.sep(i, depth+1)
			e.sb.WriteByte(':')
			e.sb.WriteString(strings.ReplaceAll(strings.TrimSpace(k), " ", "-"))
			e.sb.WriteByte(' ')
			e.value(t[k], depth+1)
		}
		e.close(len(keys), depth)
		e.sb.WriteByte('}')
	default:
		e.sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

// sep writes what goes before the i-th element of a collection.
func (e *ednWriter) sep(i, depth int) {
	switch {
	case e.pretty:
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", depth))
	case i > 0:
		e.sb.WriteByte(' ')
	}
}

func (e *ednWriter) close(n, depth int) {
	if e.pretty && n > 0 {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", depth))
	}
}
