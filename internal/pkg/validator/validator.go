package validator

import (
	"errors"
	"fmt"
	"sync"

	"gymmaster/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const TagBookingStatus = "booking_status"

var registerOnce sync.Once

var customTags = map[string]validator.Func{
	TagBookingStatus: func(fl validator.FieldLevel) bool {
		return domain.BookingStatus(fl.Field().String()).Valid()
	},
}

// Register installs the custom tags on gin's binding validator. Safe to call
// more than once. Panics if the tags cannot be installed.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("validator: unexpected binding engine %T", binding.Validator.Engine()))
		}
		if err := registerTags(v, customTags); err != nil {
			panic(err)
		}
	})
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register tag %q: %w", tag, err)
		}
	}
	return nil
}

// Fields maps each failed field to the tag that rejected it. Errors that did
// not come from the validator yield nil.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func HasTag(err error, tag string) bool {
	for _, t := range Fields(err) {
		if t == tag {
			return true
		}
	}
	return false
}
