package router

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindMap populates the struct pointed to by dst from a generic key/value map
// and returns the collected field errors. Keys are matched against json tags
// (falling back to the lowercased field name); fields tagged `hue:"required"`
// must be present. Unknown keys are ignored.
func bindMap(dst any, values map[string]any) []FieldError {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	if t.Kind() != reflect.Struct {
		// Non-struct body types only make sense in tests; nothing to bind.
		return nil
	}

	var errs []FieldError

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		raw, present := values[name]

		if !present {
			if isRequired(field) {
				errs = append(errs, FieldError{Field: name, Message: "field required"})
			}
			continue
		}

		if err := assignValue(v.Field(i), raw); err != nil {
			errs = append(errs, FieldError{Field: name, Message: err.Error()})
		}
	}

	return errs
}

// fieldName resolves the body key for a struct field from its json tag.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}

// isRequired reports whether the field carries the `hue:"required"` tag.
func isRequired(field reflect.StructField) bool {
	for _, opt := range strings.Split(field.Tag.Get("hue"), ",") {
		if strings.TrimSpace(opt) == "required" {
			return true
		}
	}
	return false
}

// assignValue coerces a decoded body value into a struct field. JSON decoding
// produces string/float64/bool/map/slice values; form decoding produces only
// strings, so numeric and boolean fields are parsed from their string form.
func assignValue(target reflect.Value, raw any) error {
	switch target.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", raw)
		}
		target.SetString(s)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := raw.(type) {
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("expected an integer, got %v", v)
			}
			target.SetInt(int64(v))
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			target.SetInt(n)
		default:
			return fmt.Errorf("expected an integer, got %T", raw)
		}

	case reflect.Float32, reflect.Float64:
		switch v := raw.(type) {
		case float64:
			target.SetFloat(v)
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			target.SetFloat(f)
		default:
			return fmt.Errorf("expected a number, got %T", raw)
		}

	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			target.SetBool(v)
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected a boolean, got %q", v)
			}
			target.SetBool(b)
		default:
			return fmt.Errorf("expected a boolean, got %T", raw)
		}

	case reflect.Pointer:
		elem := reflect.New(target.Type().Elem())
		if err := assignValue(elem.Elem(), raw); err != nil {
			return err
		}
		target.Set(elem)

	default:
		return fmt.Errorf("unsupported body field type %s", target.Type())
	}

	return nil
}
