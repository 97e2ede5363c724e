package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Validator lets a body type contribute its own validation on top of the
// structural checks. Returned field errors fail the request with a
// BodyValidationError.
type Validator interface {
	Validate() []FieldError
}

// bodyDecoder decodes and validates a request body into a declared type.
type bodyDecoder interface {
	decode(r *http.Request) (any, error)
}

// Body declares the request body shape for a route. The body is decoded from
// JSON when the content type contains application/json and from form-encoded
// key/value data otherwise, then validated against T's field tags:
//
//	type CreateComment struct {
//	    Text   string `json:"text" hue:"required"`
//	    Rating int    `json:"rating"`
//	}
//
//	r.FragmentPost("comments/", create, router.Body[CreateComment]())
//
// Handlers retrieve the decoded value with BodyOf[CreateComment](c).
func Body[T any]() RouteOption {
	return func(rt *Route) {
		rt.body = bodySpec[T]{}
	}
}

type bodySpec[T any] struct{}

func (bodySpec[T]) decode(r *http.Request) (any, error) {
	values, err := rawBodyValues(r)
	if err != nil {
		return nil, err
	}

	var out T
	fieldErrs := bindMap(&out, values)

	if len(fieldErrs) == 0 {
		if v, ok := any(out).(Validator); ok {
			fieldErrs = append(fieldErrs, v.Validate()...)
		}
	}
	if len(fieldErrs) > 0 {
		return nil, &BodyValidationError{Errors: fieldErrs}
	}

	return out, nil
}

// rawBodyValues reads the request body into a generic key/value map. JSON
// bodies are parsed strictly; anything else is treated as form data.
func rawBodyValues(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, invalidJSONError(err)
		}
		// An empty body decodes as an empty object so that required-field
		// validation still produces per-field errors.
		if len(raw) == 0 {
			return map[string]any{}, nil
		}

		values := make(map[string]any)
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, invalidJSONError(err)
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, &BodyValidationError{Errors: []FieldError{{
			Field:   "__all__",
			Message: "invalid form data: " + err.Error(),
		}}}
	}

	values := make(map[string]any, len(r.PostForm))
	for key, list := range r.PostForm {
		if len(list) > 0 {
			values[key] = list[0]
		}
	}
	return values, nil
}
