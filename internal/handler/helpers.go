package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"productmgmt/internal/apierror"
	"productmgmt/internal/dto"
	"productmgmt/internal/repository"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their wire name (json for bodies, form for queries).
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes a 422 if either step fails; the caller should
// return immediately without writing another response.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(decodeErrors(err)...))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fieldErrors("body", err)...))
		return false
	}
	return true
}

// bindListQuery reads paging and ordering from the query string. orders
// lists the accepted order_by values.
func bindListQuery(c *gin.Context, orders ...repository.Order) (repository.PageQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(apierror.FieldError{
			Loc:  []string{"query"},
			Msg:  "Input should be a valid integer",
			Type: "int_parsing",
		}))
		return repository.PageQuery{}, false
	}
	if err := validate.Struct(q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fieldErrors("query", err)...))
		return repository.PageQuery{}, false
	}

	order := repository.Order(q.OrderBy)
	if !containsOrder(orders, order) {
		names := make([]string, len(orders))
		for i, o := range orders {
			names[i] = "'" + string(o) + "'"
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(apierror.FieldError{
			Loc:  []string{"query", "order_by"},
			Msg:  "Input should be " + strings.Join(names, " or "),
			Type: "enum",
		}))
		return repository.PageQuery{}, false
	}

	offset, limit := q.Window()
	return repository.PageQuery{Offset: offset, Limit: limit, OrderBy: order}, true
}

func containsOrder(orders []repository.Order, o repository.Order) bool {
	for _, v := range orders {
		if v == o {
			return true
		}
	}
	return false
}

// pathID parses the :id segment. Returns false and writes a 422 when it is
// not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(apierror.FieldError{
			Loc:  []string{"path", "id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		}))
		return 0, false
	}
	return id, true
}

// decodeErrors turns a JSON decoding failure into field errors.
func decodeErrors(err error) []apierror.FieldError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []apierror.FieldError{{
			Loc:  loc,
			Msg:  "Input should be a valid " + kindName(typeErr.Type),
			Type: kindName(typeErr.Type) + "_type",
		}}
	case errors.As(err, &syntaxErr):
		return []apierror.FieldError{{
			Loc:  []string{"body", strconv.FormatInt(syntaxErr.Offset, 10)},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	case errors.Is(err, io.EOF):
		return []apierror.FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return []apierror.FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
	}
	return []apierror.FieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}

// fieldErrors converts validator tag failures. source is "body" or "query".
func fieldErrors(source string, err error) []apierror.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apierror.FieldError{{Loc: []string{source}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, typ := describe(fe)
		out = append(out, apierror.FieldError{Loc: []string{source, fe.Field()}, Msg: msg, Type: typ})
	}
	return out
}

func describe(fe validator.FieldError) (msg, typ string) {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "max":
		if isString {
			return fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
		}
		return "Input should be less than or equal to " + fe.Param(), "less_than_equal"
	case "min":
		if isString {
			return fmt.Sprintf("String should have at least %s characters", fe.Param()), "string_too_short"
		}
		return "Input should be greater than or equal to " + fe.Param(), "greater_than_equal"
	}
	return fmt.Sprintf("Failed on the %q rule", fe.Tag()), "value_error"
}

// writeMessage answers with a {"detail": msg} body.
func writeMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, apierror.New(msg))
}
