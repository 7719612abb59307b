package catalog

import (
	"errors"
	"net/url"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var weekdays = []any{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ValidationError reports an invalid business profile.
type ValidationError struct {
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "catalog: invalid business profile: " + e.Err.Error()
}

// Unwrap exposes the underlying validation errors.
func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the profile for configuration mistakes.
func (p Profile) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&p.Phone, validation.Required),
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Hours),
		validation.Field(&p.SEO),
		validation.Field(&p.Reviews),
		validation.Field(&p.Services, validation.Required),
		validation.Field(&p.Gallery),
	)
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// Validate implements validation.Validatable.
func (h Hours) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Schedule, validation.When(h.Weekdays == "" && h.Weekend == "", validation.Required)),
	)
}

// Validate implements validation.Validatable.
func (o OpeningHours) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Day, validation.Required, validation.In(weekdays...)),
		validation.Field(&o.Opens, validation.Required, validation.Match(clockPattern)),
		validation.Field(&o.Closes, validation.Required, validation.Match(clockPattern)),
	)
}

// Validate implements validation.Validatable.
func (s SEO) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.CanonicalURL, validation.Required, validation.By(absoluteHTTPURL)),
		validation.Field(&s.ImageURL, validation.By(absoluteHTTPURL)),
	)
}

// Validate implements validation.Validatable.
func (r Reviews) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Best, validation.Required),
		validation.Field(&r.Worst, validation.By(func(any) error {
			if r.Worst >= r.Best {
				return errors.New("must be lower than best")
			}
			return nil
		})),
		validation.Field(&r.Rating, validation.By(func(any) error {
			if r.Rating < r.Worst || r.Rating > r.Best {
				return errors.New("must be within worst and best")
			}
			return nil
		})),
		validation.Field(&r.Count, validation.Min(0)),
	)
}

// Validate implements validation.Validatable.
func (s ServiceOffering) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Price, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (g GalleryImage) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Src, validation.Required),
		validation.Field(&g.Alt, validation.Required),
	)
}

func absoluteHTTPURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
}
