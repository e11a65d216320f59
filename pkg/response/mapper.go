package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	pkgErrors "serverless-api-template/pkg/errors"
)

// MapError translates any failure value into a status code and envelope.
// It never panics.
func MapError(v any) (int, ErrorResp) {
	err, ok := v.(error)
	if !ok {
		return unknown(nil)
	}

	he := classify(err)
	if he == nil {
		return unknown(nil)
	}

	switch he.Kind {
	case pkgErrors.KindValidation:
		if len(he.Errors) > 0 {
			return he.Kind.Status(), ErrorResp{Msg: he.Kind.Code(), Errors: he.Errors}
		}
	case pkgErrors.KindBadRequest, pkgErrors.KindForbidden, pkgErrors.KindNotFound, pkgErrors.KindInternalServerError:
		errs := make([]any, 0, len(he.Errors)+1)
		errs = append(errs, he.Errors...)
		errs = append(errs, pkgErrors.ParseDetail(he.Detail))
		return he.Kind.Status(), ErrorResp{Msg: he.Kind.Code(), Errors: errs}
	}

	return unknown(he.Errors)
}

func unknown(existing []any) (int, ErrorResp) {
	errs := existing
	if errs == nil {
		errs = []any{}
	}
	return http.StatusInternalServerError, ErrorResp{Msg: pkgErrors.CodeUnknownError, Errors: errs}
}

// classify returns the HTTPError carried by err, converting binding and
// decoding failures into the taxonomy. Other errors yield nil.
func classify(err error) *pkgErrors.HTTPError {
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) && he != nil {
		return he
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]any, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, map[string]any{
				"field": fe.Field(),
				"tag":   fe.Tag(),
				"param": fe.Param(),
			})
		}
		return pkgErrors.Validation(fields...)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return pkgErrors.BadRequest(fmt.Sprintf("invalid json at offset %d: %s", syntaxErr.Offset, syntaxErr.Error()))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return pkgErrors.BadRequest(fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type))
	}

	return nil
}
