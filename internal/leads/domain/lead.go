// Package domain holds the request-scoped lead types shared by the decision
// pipeline stages. Nothing here outlives a single webhook call.
package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidLeadJSON is returned when a webhook body is not a JSON object.
var ErrInvalidLeadJSON = errors.New("lead body must be a JSON object")

// Answer is a single answer from the questions map, coerced to a string.
// Null is set for JSON null so a blank answer can be told apart from "null".
type Answer struct {
	Value string
	Null  bool
}

// String returns the coerced answer, spelling JSON null as "null".
func (a Answer) String() string {
	if a.Null {
		return "null"
	}
	return a.Value
}

// Blank reports whether the answer carries no usable content.
func (a Answer) Blank() bool {
	return a.Null || a.Value == ""
}

// Question is one label/answer pair in the order it appeared in the payload.
type Question struct {
	Label  string
	Answer Answer
}

// Questions keeps the payload order of question labels so that "first match
// wins" lookups are stable across calls.
type Questions []Question

// First returns the first question whose label satisfies match.
func (qs Questions) First(match func(label string) bool) (Question, bool) {
	for _, q := range qs {
		if match(q.Label) {
			return q, true
		}
	}
	return Question{}, false
}

// RawLead is the inbound webhook record. Every scalar is coerced to a string.
type RawLead struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Street         string
	HouseNumber    string
	Zipcode        string
	Postcode       string
	City           string
	LandingPageURL string
	UniqueID       string
	UTMCampaign    string
	IP             string
	Questions      Questions
}

// PostalCode returns the first non-empty of zipcode and postcode, trimmed.
func (l RawLead) PostalCode() string {
	code := l.Zipcode
	if code == "" {
		code = l.Postcode
	}
	return strings.TrimSpace(code)
}

// UnmarshalJSON decodes a lead from an arbitrary JSON object. Questions are
// read in document order.
func (l *RawLead) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidLeadJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return ErrInvalidLeadJSON
	}

	field := func(name string) string {
		return coerce(root.Get(name)).Value
	}

	*l = RawLead{
		FirstName:      field("first_name"),
		LastName:       field("last_name"),
		Email:          field("email"),
		Phone:          field("phone"),
		Street:         field("street"),
		HouseNumber:    field("housenumber"),
		Zipcode:        field("zipcode"),
		Postcode:       field("postcode"),
		City:           field("city"),
		LandingPageURL: field("landingpage_url"),
		UniqueID:       field("unique_id"),
		UTMCampaign:    field("utm_campaign"),
		IP:             field("ip"),
	}

	questions := root.Get("questions")
	if questions.IsObject() {
		questions.ForEach(func(key, value gjson.Result) bool {
			l.Questions = append(l.Questions, Question{Label: key.String(), Answer: coerce(value)})
			return true
		})
	}

	return nil
}

// coerce stringifies a JSON value the way a loosely typed form backend would:
// numbers without trailing zeros, booleans as "true"/"false", nested values as raw JSON.
func coerce(v gjson.Result) Answer {
	switch v.Type {
	case gjson.Null:
		return Answer{Null: true}
	case gjson.String:
		return Answer{Value: v.Str}
	case gjson.Number:
		return Answer{Value: strconv.FormatFloat(v.Num, 'f', -1, 64)}
	case gjson.True:
		return Answer{Value: "true"}
	case gjson.False:
		return Answer{Value: "false"}
	default:
		return Answer{Value: v.Raw}
	}
}
