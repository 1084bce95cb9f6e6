package wlog

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar day in "2006-01-02" form, the same form used as the
// storage key and by the calendar views.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func Today() Date {
	return NewDate(time.Now())
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

func (d Date) AddDays(n int) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return NewDate(t.AddDate(0, 0, n))
}
