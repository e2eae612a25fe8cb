package config

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DateLayout is how calendar dates are written in suite definitions
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or timezone.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// DateDecodeHook converts scalar values into Date while decoding suite
// definitions with mapstructure. The yaml backend may hand dates over as
// either raw strings or parsed timestamps.
func DateDecodeHook() mapstructure.DecodeHookFunc {
	return func(_, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(Date{}) {
			return data, nil
		}
		switch value := data.(type) {
		case string:
			return ParseDate(value)
		case time.Time:
			return Date{value}, nil
		default:
			return data, nil
		}
	}
}
