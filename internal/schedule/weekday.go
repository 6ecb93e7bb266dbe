package schedule

import (
	"fmt"
	"strings"
)

// Weekday indexes the fixed Monday..Sunday week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the size of the weekday enumeration.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekdays returns all days in order.
func Weekdays() []Weekday {
	days := make([]Weekday, DaysInWeek)
	for i := range days {
		days[i] = Weekday(i)
	}
	return days
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// WeekdayName looks up the full name for index 0..6. Out-of-range indexes
// return an empty string.
func WeekdayName(index int) string {
	if !Weekday(index).Valid() {
		return ""
	}
	return weekdayNames[index]
}

// ParseWeekday maps a full weekday name back to its index, ignoring case.
func ParseWeekday(name string) (Weekday, bool) {
	name = strings.TrimSpace(name)
	for i, n := range weekdayNames {
		if strings.EqualFold(n, name) {
			return Weekday(i), true
		}
	}
	return -1, false
}
