package directory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one flat record exactly as a data source delivered it.
// Column names differ between the hosted store and the static JSON export,
// so every accessor takes a list of aliases tried in priority order.
type Row map[string]any

// String returns the first non-empty alias value, trimmed.
func (r Row) String(aliases ...string) string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(stringify(v)); s != "" {
			return s
		}
	}
	return ""
}

// Text is String passed through PlainText, for free-text columns that may
// carry inline markup.
func (r Row) Text(aliases ...string) string {
	return PlainText(r.String(aliases...))
}

// Float returns the first alias that parses as a number, or nil.
func (r Row) Float(aliases ...string) *float64 {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := toFloat(v); ok {
			return &f
		}
	}
	return nil
}

// Int is Float truncated toward zero.
func (r Row) Int(aliases ...string) *int {
	f := r.Float(aliases...)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// Bool understands native booleans and the yes/true/1/y spellings used by
// the spreadsheet exports.
func (r Row) Bool(aliases ...string) bool {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t
		default:
			switch strings.ToLower(strings.TrimSpace(stringify(t))) {
			case "yes", "true", "1", "y":
				return true
			case "":
				continue
			default:
				return false
			}
		}
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case bool:
		return 0, false
	default:
		s := strings.TrimSpace(stringify(t))
		s = strings.NewReplacer("$", "", ",", "").Replace(s)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
}
