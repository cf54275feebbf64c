// internal/adapter/validate.go
package adapter

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// patterns caches compiled parameter and date patterns by source text.
var patterns sync.Map

func compilePattern(expr string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	actual, _ := patterns.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp), nil
}

// Validate checks raw tool arguments against the descriptor and returns the
// resolved parameter set. The returned error is always a *ValidationError.
//
// Checks run in a fixed order: structure, defaults, field rules, calendar
// consistency, dependencies and finally the descriptor's own cross-field check.
// Arguments the descriptor does not declare are dropped.
func Validate(d Descriptor, args map[string]any, s Settings, clock Clock) (Params, error) {
	declared := make(map[string]any, len(d.Params))
	for _, p := range d.Params {
		if v, ok := args[p.Name]; ok && v != nil {
			declared[p.Name] = v
		}
	}

	if verr := checkStructure(d, declared); verr != nil {
		return nil, verr
	}

	params := make(Params, len(d.Params))
	for _, p := range d.Params {
		v, ok := declared[p.Name]
		if !ok {
			def, hasDefault := resolveDefault(p, s)
			if !hasDefault {
				continue
			}
			v = def
		}
		cv, err := coerce(p, v)
		if err != nil {
			return nil, &ValidationError{Tool: d.Name, Field: p.Name, Message: err.Error()}
		}
		params[p.Name] = cv
	}

	now := clock.Now()
	for _, p := range d.Params {
		v, ok := params[p.Name]
		if !ok {
			continue
		}
		if verr := checkField(p, v, now); verr != nil {
			verr.Tool, verr.Field = d.Name, p.Name
			return nil, verr
		}
	}

	if verr := checkCalendar(params); verr != nil {
		verr.Tool = d.Name
		return nil, verr
	}

	for _, p := range d.Params {
		if !params.Has(p.Name) {
			continue
		}
		var missing []string
		for _, dep := range p.Requires {
			if !params.Has(dep) {
				missing = append(missing, dep)
			}
		}
		if len(missing) > 0 {
			return nil, &ValidationError{
				Tool:    d.Name,
				Field:   p.Name,
				Message: "requires " + joinAnd(p.Requires),
			}
		}
	}

	if d.Check != nil {
		if verr := d.Check(params); verr != nil {
			verr.Tool = d.Name
			return nil, verr
		}
	}
	return params, nil
}

func checkStructure(d Descriptor, declared map[string]any) *ValidationError {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(structuralSchema(d)),
		gojsonschema.NewGoLoader(declared),
	)
	if err != nil {
		return &ValidationError{Tool: d.Name, Message: fmt.Sprintf("schema validation error: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field() < errs[j].Field() })
	first := errs[0]
	if first.Type() == "required" {
		field, _ := first.Details()["property"].(string)
		return &ValidationError{Tool: d.Name, Field: field, Message: "is required"}
	}
	return &ValidationError{Tool: d.Name, Field: first.Field(), Message: first.Description()}
}

func checkField(p Param, v any, now time.Time) *ValidationError {
	switch val := v.(type) {
	case int:
		if p.Range == nil {
			return nil
		}
		lo, hi := p.Range.Min.Resolve(now), p.Range.Max.Resolve(now)
		if val < lo || val > hi {
			return &ValidationError{Message: fmt.Sprintf("must be between %d and %d, got %d", lo, hi, val)}
		}
	case string:
		if len(p.Enum) > 0 && !slices.Contains(p.Enum, val) {
			return &ValidationError{Message: fmt.Sprintf("unknown value %q", val), Allowed: p.Enum}
		}
		if p.Pattern != "" {
			re, err := compilePattern(p.Pattern)
			if err != nil {
				return &ValidationError{Message: fmt.Sprintf("bad pattern %q: %v", p.Pattern, err)}
			}
			if !re.MatchString(val) {
				return &ValidationError{Message: fmt.Sprintf("%q does not match %s", val, p.Pattern)}
			}
		}
		if p.Date != nil {
			return checkDate(*p.Date, val, now)
		}
	}
	return nil
}

func checkDate(r DateRule, v string, now time.Time) *ValidationError {
	re, err := compilePattern(r.Pattern)
	if err != nil {
		return &ValidationError{Message: fmt.Sprintf("bad pattern %q: %v", r.Pattern, err)}
	}
	if !re.MatchString(v) {
		return &ValidationError{Message: fmt.Sprintf("must be in %s format", r.Hint)}
	}
	t, err := time.ParseInLocation(r.Layout, v, HongKong)
	if err != nil {
		return &ValidationError{Message: fmt.Sprintf("%q is not a calendar date", v)}
	}

	var earliest, latest time.Time
	if r.Earliest != nil {
		earliest = r.Earliest(now)
	}
	if r.Latest != nil {
		latest = r.Latest(now)
	}
	tooEarly := !earliest.IsZero() && t.Before(earliest)
	tooLate := !latest.IsZero() && t.After(latest)
	switch {
	case !tooEarly && !tooLate:
		return nil
	case !earliest.IsZero() && !latest.IsZero():
		return &ValidationError{Message: fmt.Sprintf("must be between %s and %s", earliest.Format(r.Layout), latest.Format(r.Layout))}
	case tooEarly:
		return &ValidationError{Message: fmt.Sprintf("must be on or after %s", earliest.Format(r.Layout))}
	default:
		return &ValidationError{Message: fmt.Sprintf("must be on or before %s", latest.Format(r.Layout))}
	}
}

// checkCalendar rejects day numbers that do not exist in the resolved month.
func checkCalendar(p Params) *ValidationError {
	year, okY := p.Int("year")
	month, okM := p.Int("month")
	day, okD := p.Int("day")
	if !okY || !okM || !okD || month < 1 || month > 12 {
		return nil
	}
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, HongKong).Day()
	if day > last {
		return &ValidationError{Field: "day", Message: fmt.Sprintf("%04d-%02d has only %d days", year, month, last)}
	}
	return nil
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
