package airtable

import "time"

// Typed accessors for the opaque field map. The record store serves
// untyped JSON; missing or mistyped fields read as zero values so
// normalizers stay short.

func (r Record) String(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

func (r Record) Float(key string) float64 {
	if v, ok := r.Fields[key].(float64); ok {
		return v
	}
	return 0
}

func (r Record) Int(key string) int {
	return int(r.Float(key))
}

func (r Record) Bool(key string) bool {
	if v, ok := r.Fields[key].(bool); ok {
		return v
	}
	return false
}

func (r Record) Strings(key string) []string {
	raw, ok := r.Fields[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Time parses an RFC 3339 or date-only field. Nil when absent or
// unparseable.
func (r Record) Time(key string) *time.Time {
	s := r.String(key)
	if s == "" {
		return nil
	}
	for _, format := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}
	return nil
}
