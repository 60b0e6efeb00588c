package subscribe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrNotParsed is returned by a Parser that cannot read the input.
	ErrNotParsed = errors.New("input not parsed")
	// ErrEmailRequired is returned when no source yields a non-empty email.
	ErrEmailRequired = errors.New("email is required")
)

// Request is a normalised subscription request.
type Request struct {
	Email     string
	FirstName string
}

// Input is the raw material parsers read from.
type Input struct {
	Body  []byte
	Query url.Values
}

// Parser extracts a Request from one part of the input.
type Parser interface {
	Parse(in Input) (Request, error)
}

// JSONParser reads a JSON object body.
type JSONParser struct{}

// Parse implements Parser. Only JSON objects are accepted; non-string fields are ignored.
func (JSONParser) Parse(in Input) (Request, error) {
	body := bytes.TrimSpace(in.Body)
	if len(body) == 0 {
		return Request{}, ErrNotParsed
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return Request{}, ErrNotParsed
	}

	return newRequest(
		stringField(fields["email"]),
		stringField(fields["firstName"]),
		stringField(fields["first_name"]),
	), nil
}

// FormParser reads an application/x-www-form-urlencoded body.
type FormParser struct{}

// Parse implements Parser. Bodies that are valid JSON belong to JSONParser and are skipped.
func (FormParser) Parse(in Input) (Request, error) {
	body := bytes.TrimSpace(in.Body)
	if len(body) == 0 || json.Valid(body) {
		return Request{}, ErrNotParsed
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrNotParsed, err)
	}
	return fromValues(values), nil
}

// QueryParser reads the query string.
type QueryParser struct{}

// Parse implements Parser.
func (QueryParser) Parse(in Input) (Request, error) {
	if len(in.Query) == 0 {
		return Request{}, ErrNotParsed
	}
	return fromValues(in.Query), nil
}

// Chain runs parsers in order. Each field takes the first non-empty value, so a
// parseable body wins over the query string and the query string only fills gaps.
type Chain []Parser

// DefaultChain returns the JSON body, form body, query string chain.
func DefaultChain() Chain {
	return Chain{JSONParser{}, FormParser{}, QueryParser{}}
}

// Parse returns the merged Request, or ErrEmailRequired if no parser produced an email.
func (ch Chain) Parse(in Input) (Request, error) {
	var req Request
	for _, p := range ch {
		r, err := p.Parse(in)
		if err != nil {
			continue
		}
		if req.Email == "" {
			req.Email = r.Email
		}
		if req.FirstName == "" {
			req.FirstName = r.FirstName
		}
	}

	if req.Email == "" {
		return req, ErrEmailRequired
	}
	return req, nil
}

func fromValues(v url.Values) Request {
	return newRequest(v.Get("email"), v.Get("firstName"), v.Get("first_name"))
}

func newRequest(email string, firstNames ...string) Request {
	req := Request{Email: strings.TrimSpace(email)}
	for _, name := range firstNames {
		if name = strings.TrimSpace(name); name != "" {
			req.FirstName = name
			break
		}
	}
	return req
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}
