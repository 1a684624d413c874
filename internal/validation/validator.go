package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/models"
)

// Rule names reported by the decoder in addition to validator tags.
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleInteger  = "integer"
	RuleUnknown  = "unknown"
	RuleObject   = "object"
)

var timeType = reflect.TypeOf(time.Time{})

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the complete list of violations found in a payload.
type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the client-facing message of every violation in order.
func (e Errors) Messages() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Message
	}
	return out
}

// Has reports whether a violation was recorded for field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type inputField struct {
	name     string
	index    int
	required bool
	numeric  bool
	rules    string
}

// Validator decodes untyped JSON objects into entity records, collecting
// every violation instead of stopping at the first one.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator

	mu     sync.RWMutex
	fields map[reflect.Type][]inputField
}

// New builds a validator with English messages and JSON field names.
func New() *Validator {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate:   validate,
		translator: translator,
		fields:     make(map[reflect.Type][]inputField),
	}
}

// Decode validates body and returns the populated record, or Errors.
func Decode[T any](v *Validator, body []byte, messages models.Messages) (*T, error) {
	var record T
	if err := v.Decode(body, &record, messages); err != nil {
		return nil, err
	}
	return &record, nil
}

// Decode fills dst (a pointer to struct) from body. Only fields carrying a
// validate tag are accepted as input; any other key is rejected.
func (v *Validator) Decode(body []byte, dst interface{}, messages models.Messages) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("validation: destination must be a pointer to struct, got %T", dst)
	}
	target := rv.Elem()

	var raw map[string]json.RawMessage
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || json.Unmarshal(trimmed, &raw) != nil {
		return Errors{{Rule: RuleObject, Message: `"value" must be of type object`}}
	}

	fields := v.inputFields(target.Type())
	var errs Errors
	failed := make(map[string]bool)
	report := func(field, rule, fallback string) {
		failed[field] = true
		errs = append(errs, FieldError{Field: field, Rule: rule, Message: lookup(messages, field, rule, fallback)})
	}

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.name] = true
		value, present := raw[f.name]
		if !present || isNull(value) {
			if f.required {
				report(f.name, RuleRequired, fmt.Sprintf("%q is required", f.name))
			}
			continue
		}
		if rule, fallback := assign(target.Field(f.index), value, f); rule != "" {
			report(f.name, rule, fallback)
			continue
		}
		if f.required && target.Field(f.index).Kind() == reflect.String && target.Field(f.index).Len() == 0 {
			report(f.name, RuleRequired, fmt.Sprintf("%q is not allowed to be empty", f.name))
		}
	}

	unknown := make([]string, 0)
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	if err := v.validate.Struct(dst); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range validationErrs {
			if failed[fe.Field()] {
				continue
			}
			if fe.Tag() != RuleRequired {
				report(fe.Field(), fe.Tag(), v.translate(fe.Field(), fe))
				continue
			}
			// A present zero value trips "required"; check the remaining rules on their own.
			for _, f := range fields {
				if f.name == fe.Field() && f.rules != "" {
					v.checkRules(target.Field(f.index).Interface(), f, report)
				}
			}
		}
	}

	for _, key := range unknown {
		report(key, RuleUnknown, fmt.Sprintf("%q is not allowed", key))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) checkRules(value interface{}, f inputField, report func(field, rule, fallback string)) {
	err := v.validate.Var(value, f.rules)
	if err == nil {
		return
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}
	for _, fe := range validationErrs {
		report(f.name, fe.Tag(), v.translate(f.name, fe))
	}
}

func (v *Validator) translate(field string, fe validator.FieldError) string {
	msg := fe.Translate(v.translator)
	if fe.Field() == "" {
		msg = field + msg
	}
	return msg
}

func (v *Validator) inputFields(t reflect.Type) []inputField {
	v.mu.RLock()
	fields, ok := v.fields[t]
	v.mu.RUnlock()
	if ok {
		return fields
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("validate")
		if !ok || sf.Anonymous || !sf.IsExported() {
			continue
		}
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		f := inputField{name: name, index: i}
		rules := make([]string, 0)
		for _, rule := range strings.Split(tag, ",") {
			switch {
			case rule == RuleRequired:
				f.required = true
			case rule == "numeric":
				f.numeric = true
				rules = append(rules, rule)
			case rule != "":
				rules = append(rules, rule)
			}
		}
		f.rules = strings.Join(rules, ",")
		fields = append(fields, f)
	}

	v.mu.Lock()
	v.fields[t] = fields
	v.mu.Unlock()
	return fields
}

// assign converts value into field, returning the violated rule on failure.
func assign(field reflect.Value, value json.RawMessage, f inputField) (string, string) {
	if field.Type() == timeType {
		t, ok := parseDate(value)
		if !ok {
			return RuleType, fmt.Sprintf("%q must be a valid date", f.name)
		}
		field.Set(reflect.ValueOf(t))
		return "", ""
	}

	switch field.Kind() {
	case reflect.String:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			if !f.numeric || !isNumber(value) {
				return RuleType, fmt.Sprintf("%q must be a string", f.name)
			}
			s = string(value)
		}
		field.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		text, ok := numberText(value)
		if !ok {
			return RuleType, fmt.Sprintf("%q must be a number", f.name)
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			if fl, ferr := strconv.ParseFloat(text, 64); ferr == nil && fl == float64(int64(fl)) {
				n = int64(fl)
			} else if ferr == nil {
				return RuleInteger, fmt.Sprintf("%q must be an integer", f.name)
			} else {
				return RuleType, fmt.Sprintf("%q must be a number", f.name)
			}
		}
		if field.OverflowInt(n) {
			return RuleType, fmt.Sprintf("%q must be a safe number", f.name)
		}
		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		text, ok := numberText(value)
		if !ok {
			return RuleType, fmt.Sprintf("%q must be a number", f.name)
		}
		fl, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return RuleType, fmt.Sprintf("%q must be a number", f.name)
		}
		field.SetFloat(fl)
	default:
		ptr := reflect.New(field.Type())
		if err := json.Unmarshal(value, ptr.Interface()); err != nil {
			return RuleType, fmt.Sprintf("%q must be a %s", f.name, field.Kind())
		}
		field.Set(ptr.Elem())
	}
	return "", ""
}

// numberText accepts JSON numbers and numeric strings.
func numberText(value json.RawMessage) (string, bool) {
	if isNumber(value) {
		return string(value), true
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); s == "" || err != nil {
		return "", false
	}
	return s, true
}

func parseDate(value json.RawMessage) (time.Time, bool) {
	if isNumber(value) {
		ms, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func isNumber(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return false
	}
	c := trimmed[0]
	return (c == '-' || (c >= '0' && c <= '9')) && json.Valid(trimmed)
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func lookup(messages models.Messages, field, rule, fallback string) string {
	if msg, ok := messages[field+"."+rule]; ok {
		return msg
	}
	if rule == RuleInteger {
		if msg, ok := messages[field+"."+RuleType]; ok {
			return msg
		}
	}
	return fallback
}
