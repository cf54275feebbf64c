// internal/adapter/descriptor.go
// Package adapter turns a declarative operation descriptor into a validated,
// fetched and normalized tool result.
package adapter

import (
	"net/http"
	"time"
)

// Kind is the semantic type of a parameter.
type Kind int

const (
	KindString Kind = iota
	KindInteger
)

func (k Kind) jsonType() string {
	if k == KindInteger {
		return "integer"
	}
	return "string"
}

// Base selects which upstream REST base an operation is served from.
type Base int

const (
	BaseWeather Base = iota
	BaseTransport
)

// FormatPolicy describes which response shapes an operation supports.
type FormatPolicy int

const (
	// JSONOnly operations always emit canonical JSON text.
	JSONOnly FormatPolicy = iota
	// DualFormat operations honour the rformat parameter.
	DualFormat
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"

	// FormatParam is the parameter name carrying the requested response format.
	FormatParam = "rformat"
	// DataTypeKey is the fixed upstream discriminator query key.
	DataTypeKey = "dataType"
)

// settingDefault marks a default that is resolved from Settings at validation time.
type settingDefault string

// DefaultLanguage resolves to Settings.Language.
const DefaultLanguage = settingDefault("language")

// Limit is one inclusive bound of a numeric range. A relative limit is
// computed from the clock's current year.
type Limit struct {
	Value      int
	YearOffset int
	Relative   bool
}

// Fixed returns a limit that never moves.
func Fixed(n int) Limit { return Limit{Value: n} }

// CurrentYear returns a limit of the clock's year plus offset.
func CurrentYear(offset int) Limit { return Limit{YearOffset: offset, Relative: true} }

// Resolve returns the concrete bound for the given instant.
func (l Limit) Resolve(now time.Time) int {
	if l.Relative {
		return now.Year() + l.YearOffset
	}
	return l.Value
}

// Range is an inclusive numeric constraint.
type Range struct {
	Min Limit
	Max Limit
}

// DateBound computes an earliest or latest acceptable date from the clock.
type DateBound func(now time.Time) time.Time

// Date returns a bound fixed on a calendar day.
func Date(year int, month time.Month, day int) DateBound {
	return func(time.Time) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, HongKong)
	}
}

// DaysAgo returns a bound n days before the clock's current day.
func DaysAgo(n int) DateBound {
	return func(now time.Time) time.Time {
		return startOfDay(now).AddDate(0, 0, -n)
	}
}

// YearStart returns January 1st of the clock's year plus offset.
func YearStart(offset int) DateBound {
	return func(now time.Time) time.Time {
		return time.Date(now.Year()+offset, time.January, 1, 0, 0, 0, 0, HongKong)
	}
}

// YearEnd returns December 31st of the clock's year plus offset.
func YearEnd(offset int) DateBound {
	return func(now time.Time) time.Time {
		return time.Date(now.Year()+offset, time.December, 31, 0, 0, 0, 0, HongKong)
	}
}

// DateRule constrains a string parameter to a calendar date in a given layout.
type DateRule struct {
	Layout   string
	Pattern  string
	Hint     string
	Earliest DateBound
	Latest   DateBound
}

var (
	// CompactDate accepts YYYYMMDD.
	CompactDate = DateRule{Layout: "20060102", Pattern: `^\d{8}$`, Hint: "YYYYMMDD"}
	// ISODate accepts YYYY-MM-DD.
	ISODate = DateRule{Layout: "2006-01-02", Pattern: `^\d{4}-\d{2}-\d{2}$`, Hint: "YYYY-MM-DD"}
)

// Between returns a copy of the rule bounded on both ends.
func (r DateRule) Between(earliest, latest DateBound) *DateRule {
	r.Earliest = earliest
	r.Latest = latest
	return &r
}

// Param declares one field of an operation's parameter schema.
type Param struct {
	Name        string
	Query       string
	Kind        Kind
	Required    bool
	Default     any
	Description string
	Enum        []string
	Pattern     string
	Range       *Range
	Date        *DateRule
	Requires    []string
}

// QueryKey is the upstream query key for the parameter.
func (p Param) QueryKey() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Name
}

// Summarizer re-projects a raw upstream body into prose.
type Summarizer func(body []byte) (string, error)

// Descriptor is the immutable definition of one operation.
type Descriptor struct {
	Name          string
	Description   string
	Base          Base
	Path          string
	DataType      string
	Method        string
	Accept        string
	Params        []Param
	Format        FormatPolicy
	DefaultFormat string
	Summarize     Summarizer
	// Check runs after field and dependency rules for cross-field constraints.
	Check func(Params) *ValidationError
}

// HTTPMethod returns the request method, GET unless overridden.
func (d Descriptor) HTTPMethod() string {
	if d.Method == "" {
		return http.MethodGet
	}
	return d.Method
}

// Param looks up a declared parameter by name.
func (d Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// YearRange returns the range of the "year" parameter, if the operation has one.
func (d Descriptor) YearRange() (Range, bool) {
	p, ok := d.Param("year")
	if !ok || p.Range == nil {
		return Range{}, false
	}
	return *p.Range, true
}
