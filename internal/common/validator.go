package common

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GenericEchoValidator plugs go-playground/validator into echo's Bind/Validate flow.
// A zero value is usable; the validator is then created once on first use.
type GenericEchoValidator struct {
	Validator *validator.Validate

	once sync.Once
}

func (gv *GenericEchoValidator) Validate(i interface{}) error {
	if err := ValidateStruct(gv.validator(), i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("received invalid request body: %v", err))
	}
	return nil
}

func (gv *GenericEchoValidator) validator() *validator.Validate {
	gv.once.Do(func() {
		if gv.Validator == nil {
			gv.Validator = validator.New()
		}
	})
	return gv.Validator
}

// ValidateStruct runs struct tag validation, creating a validator when v is nil.
func ValidateStruct(v *validator.Validate, i interface{}) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(i)
}
