package editor

import (
	stdErrors "errors"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

// Input is the raw form state as the user edits it.
type Input struct {
	Title     string
	Subtitle  string
	CTA       string
	CTALink   string
	BgColor   string
	Order     string
	IsActive  bool
	StartDate string
	EndDate   string
}

// Values is Input after it passed the schema.
type Values struct {
	Title     string `json:"title" validate:"required,min=1"`
	Subtitle  string `json:"subtitle"`
	CTA       string `json:"cta"`
	CTALink   string `json:"ctaLink"`
	BgColor   string `json:"bgColor"`
	Order     int    `json:"order" validate:"min=0"`
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate" validate:"required,min=1,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

const (
	msgTitleRequired     = "Title is required"
	msgOrderNotInteger   = "Order must be an integer"
	msgOrderNegative     = "Order cannot be negative"
	msgStartDateRequired = "Start date is required"
	msgInvalidDate       = "Invalid date"
)

var messages = map[string]string{
	"title.required":     msgTitleRequired,
	"title.min":          msgTitleRequired,
	"order.min":          msgOrderNegative,
	"startDate.required": msgStartDateRequired,
	"startDate.min":      msgStartDateRequired,
	"startDate.datetime": msgInvalidDate,
	"endDate.datetime":   msgInvalidDate,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrors maps a field name to the message of the first constraint
// it violated.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid banner form:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
		b.WriteString(";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Validate coerces and checks in. On failure the error is ValidationErrors.
func Validate(in Input) (Values, error) {
	errs := ValidationErrors{}

	v := Values{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		CTA:       in.CTA,
		CTALink:   in.CTALink,
		BgColor:   in.BgColor,
		IsActive:  in.IsActive,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}

	order, ok := coerceInt(in.Order)
	if !ok {
		errs["order"] = msgOrderNotInteger
	}
	v.Order = order

	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stdErrors.As(err, &fieldErrs) {
			return Values{}, err
		}
		for _, fe := range fieldErrs {
			if _, seen := errs[fe.Field()]; seen {
				continue
			}
			errs[fe.Field()] = message(fe.Field(), fe.Tag())
		}
	}

	if len(errs) > 0 {
		return Values{}, errs
	}
	return v, nil
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return field + " is invalid"
}

// coerceInt follows number input semantics: blank is zero, "3.0" is 3,
// fractions and non-numbers are rejected.
func coerceInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// InputFromRecord seeds form defaults from a loaded banner.
func InputFromRecord(r Record) Input {
	return Input{
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		CTA:       entity.EffectiveCTA(r.CTA),
		CTALink:   entity.EffectiveCTALink(r.CTALink),
		BgColor:   entity.EffectiveBgColor(r.BgColor),
		Order:     strconv.Itoa(r.Order),
		IsActive:  r.IsActive,
		StartDate: DateOnly(r.StartDate),
		EndDate:   DateOnly(r.EndDate),
	}
}

// DateOnly drops the time of day from a wire date.
func DateOnly(s string) string {
	date, _, _ := strings.Cut(s, "T")
	return date
}
