package shared

import (
	"net/http"
	"net/mail"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

// Enum matches exactly; stored enum values are case sensitive. Empty values are left to Required.
func (v *Validator) Enum(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}

func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) URL(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		v.Add(field, "must be an absolute URL")
	}
}

func (v *Validator) MaxLen(field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		v.Add(field, "must be at most "+strconv.Itoa(limit)+" characters")
	}
}

func (v *Validator) NonNegative(field string, value float64) {
	if value < 0 {
		v.Add(field, "must not be negative")
	}
}

func (v *Validator) Positive(field string, value int64) {
	if value <= 0 {
		v.Add(field, "must be a positive integer")
	}
}

func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}

// OptionalDate returns nil for an empty value.
func (v *Validator) OptionalDate(field, raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parsed, ok := v.Date(field, raw)
	if !ok {
		return nil
	}
	return &parsed
}

func (v *Validator) Timestamp(field, raw string) (time.Time, bool) {
	parsed, err := ParseTimestamp(strings.TrimSpace(raw))
	if err != nil {
		v.Add(field, "must be an RFC3339 timestamp")
		return time.Time{}, false
	}
	return parsed, true
}

// NotNull rejects an explicit null for a field that cannot be cleared.
func (v *Validator) NotNull(field string, value interface{ IsNull() bool }) {
	if value.IsNull() {
		v.Add(field, "must not be null")
	}
}

// PatchDate converts a presence-tracked YYYY-MM-DD string, keeping omitted and null as they are.
func (v *Validator) PatchDate(field string, in optional.Value[string]) optional.Value[time.Time] {
	return v.patchTime(field, in, v.Date)
}

func (v *Validator) PatchTimestamp(field string, in optional.Value[string]) optional.Value[time.Time] {
	return v.patchTime(field, in, v.Timestamp)
}

func (v *Validator) patchTime(field string, in optional.Value[string], parse func(string, string) (time.Time, bool)) optional.Value[time.Time] {
	if !in.Set {
		return optional.Value[time.Time]{}
	}
	if in.Null {
		return optional.Null[time.Time]()
	}
	parsed, ok := parse(field, in.Value)
	if !ok {
		return optional.Value[time.Time]{}
	}
	return optional.Of(parsed)
}

func (v *Validator) DateOrder(startField string, start time.Time, endField string, end time.Time) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if end.Before(start) {
		v.Add(startField, "must be on or before "+endField)
		v.Add(endField, "must be on or after "+startField)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
