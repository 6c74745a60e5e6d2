package shared

import (
	"net/mail"
	"sort"
	"strings"
	"time"
)

// Validator collects field-level issues so a request is rejected once with
// every problem listed, not one at a time.
type Validator struct {
	issues []string
}

func NewValidator() *Validator {
	return &Validator{issues: make([]string, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, field+": "+reason)
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) MaxLen(field, value string, max int, reason string) {
	if len(value) > max {
		v.Add(field, reason)
	}
}

func (v *Validator) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) Positive(field string, value int64, reason string) {
	if value <= 0 {
		v.Add(field, reason)
	}
}

// Date parses the raw value and records an issue when it is absent or
// malformed.
func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) Before(field string, value, limit time.Time, reason string) {
	if value.IsZero() {
		return
	}
	if !value.Before(limit) {
		v.Add(field, reason)
	}
}

func (v *Validator) HasIssues() bool {
	return len(v.issues) > 0
}

func (v *Validator) Issues() []string {
	if len(v.issues) == 0 {
		return nil
	}
	out := make([]string, len(v.issues))
	copy(out, v.issues)
	sort.Strings(out)
	return out
}
