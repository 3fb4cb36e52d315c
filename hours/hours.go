package hours

import (
	"fmt"
	"time"
)

const pathDateLayout = "2006/01-02"

var location *time.Location = mustLoad("Europe/Oslo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s location: %v", name, err))
	}
	return loc
}

// SetTimezone sets the zone that defines "today" and "this hour" for prices.
func SetTimezone(timezone string) error {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %s: %v", timezone, err)
	}
	location = loc
	return nil
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

func CurrentHour() int {
	return Now().Hour()
}

func Midnight(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

func NextMidnight(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, 1)
}

// PathDate formats the local calendar day of t as "yyyy/MM-dd".
func PathDate(t time.Time) string {
	return t.In(location).Format(pathDateLayout)
}

// IntervalLabel returns "HH:00-HH:00" for the i:th hour of a day.
func IntervalLabel(i int) string {
	return fmt.Sprintf("%02d:00-%02d:00", i, i+1)
}

func HourLabel(i int) string {
	return fmt.Sprintf("%02d:00", i)
}

func FormatTime(t time.Time) string {
	return t.In(location).Format("2006-01-02 15:04:05")
}
