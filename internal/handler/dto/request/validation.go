package request

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/KostasTheodoro/GArts-Edu/internal/domain/booking"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

var registerOnce sync.Once

// RegisterValidators adds the isodate and clocktime tags to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("unexpected binding validator engine")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err = v.RegisterValidation("isodate", validateISODate); err != nil {
			return
		}
		err = v.RegisterValidation("clocktime", validateClockTime)
	})
	return err
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == booking.GroupSessionDate {
		return true
	}
	_, err := time.Parse(booking.DateLayout, s)
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == booking.GroupSessionTime {
		return true
	}
	_, ok := booking.ParseClock(s)
	return ok
}

// BindingError converts a binding failure into a validation error listing the
// missing fields by their JSON names.
func BindingError(err error, msg string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Mark(errs.Wrap(err, "invalid request body"), errs.ErrValidationFailed)
	}
	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) == 0 {
		return errs.NewValidationError("Invalid " + verrs[0].Field())
	}
	return errs.NewValidationError(msg, missing...)
}
