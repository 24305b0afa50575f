package search

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidQuery is returned when a query cannot be compiled or parsed,
// e.g. a malformed name regexp. It is never silently treated as "no match".
var ErrInvalidQuery = errors.New("invalid search query")

// DateFormat is the wire format for query dates (ISO 8601 date)
const DateFormat = "2006-01-02"

// Query is a set of optional filter predicates over the activity table.
// Zero value matches every activity. Values within Equipment and Kind
// combine with OR; populated fields combine with AND.
type Query struct {
	Equipment         []string
	Kind              []string
	Name              string
	NameCaseSensitive bool
	StartBegin        *time.Time // date, midnight UTC
	StartEnd          *time.Time // date, midnight UTC
}

// Active reports whether any predicate is populated.
// An inactive query matches every activity.
func (q Query) Active() bool {
	return len(q.Equipment) > 0 ||
		len(q.Kind) > 0 ||
		q.Name != "" ||
		q.StartBegin != nil ||
		q.StartEnd != nil
}

// Validate checks that the query can be applied, notably that the
// name pattern compiles. Returns an error wrapping ErrInvalidQuery.
func (q Query) Validate() error {
	_, err := q.compileName()
	return err
}

func (q Query) compileName() (*regexp.Regexp, error) {
	if q.Name == "" {
		return nil, nil
	}
	pattern := q.Name
	if !q.NameCaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: name pattern %q: %v", ErrInvalidQuery, q.Name, err)
	}
	return re, nil
}

// Display is the query rendered for presentation: every field as a
// string plus the derived Active flag.
type Display struct {
	Equipment         []string
	Kind              []string
	Name              string
	NameCaseSensitive bool
	StartBegin        string
	StartEnd          string
	Active            bool
}

// Display renders the query for the presentation layer.
func (q Query) Display() Display {
	return Display{
		Equipment:         q.Equipment,
		Kind:              q.Kind,
		Name:              q.Name,
		NameCaseSensitive: q.NameCaseSensitive,
		StartBegin:        formatOptionalDate(q.StartBegin),
		StartEnd:          formatOptionalDate(q.StartEnd),
		Active:            q.Active(),
	}
}

// URLString encodes the query as a URL query string with a stable field
// order: repeated equipment pairs, repeated kind pairs, name,
// name_case_sensitive (only when true), start_begin, start_end. Absent
// fields are omitted entirely, so the encoding round-trips through
// ParseValues.
func (q Query) URLString() string {
	type pair struct{ key, value string }
	var pairs []pair

	for _, equipment := range q.Equipment {
		pairs = append(pairs, pair{"equipment", equipment})
	}
	for _, kind := range q.Kind {
		pairs = append(pairs, pair{"kind", kind})
	}
	if q.Name != "" {
		pairs = append(pairs, pair{"name", q.Name})
	}
	if q.NameCaseSensitive {
		pairs = append(pairs, pair{"name_case_sensitive", "true"})
	}
	if q.StartBegin != nil {
		pairs = append(pairs, pair{"start_begin", q.StartBegin.Format(DateFormat)})
	}
	if q.StartEnd != nil {
		pairs = append(pairs, pair{"start_end", q.StartEnd.Format(DateFormat)})
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + "=" + url.QueryEscape(p.value)
	}
	return strings.Join(parts, "&")
}

// ParseValues builds a Query from untyped request parameters. It is the
// inverse of URLString and validates the result.
func ParseValues(values url.Values) (Query, error) {
	q := Query{
		Equipment:         values["equipment"],
		Kind:              values["kind"],
		Name:              values.Get("name"),
		NameCaseSensitive: values.Get("name_case_sensitive") == "true",
	}

	var err error
	if q.StartBegin, err = parseOptionalDate(values.Get("start_begin")); err != nil {
		return Query{}, err
	}
	if q.StartEnd, err = parseOptionalDate(values.Get("start_end")); err != nil {
		return Query{}, err
	}

	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateFormat)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q: %v", ErrInvalidQuery, s, err)
	}
	return &t, nil
}
