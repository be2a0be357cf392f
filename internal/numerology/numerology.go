// Package numerology implements Pythagorean digit-reduction arithmetic for
// life path, personal year/month/day, and universal day numbers.
package numerology

import "time"

// Master numbers preserved during reduction.
var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// Reading is the complete numerology result for one day.
type Reading struct {
	LifePath      int
	PersonalYear  int
	PersonalMonth int
	PersonalDay   int
	UniversalDay  int

	DayTheme       string
	EnergyQuality  string
	Keywords       []string
	FavorableFor   []string
	ChallengingFor []string

	MasterNumberActive  bool
	MasterNumberMessage string
}

// Reduce repeatedly sums decimal digits until the value is a single digit.
// With keepMaster, reduction short-circuits at the master numbers 11, 22, 33.
func Reduce(n int, keepMaster bool) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		if keepMaster && masterNumbers[n] {
			return n
		}
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// LifePath computes the life path number from a birth date: month, day, and
// year digit-sum are reduced separately, then the total is reduced.
func LifePath(birth time.Time) int {
	month := Reduce(int(birth.Month()), true)
	day := Reduce(birth.Day(), true)
	year := Reduce(digitSum(birth.Year()), true)
	return Reduce(month+day+year, true)
}

// PersonalYear computes the personal year number for a target calendar year.
//
// The doctrine describes the personal year as running birthday to birthday,
// but the documented formula uses the calendar target year unconditionally.
// The formula is preserved as documented; callers before the birthday get the
// calendar-year value, not the previous year's.
func PersonalYear(birth time.Time, targetYear int) int {
	month := Reduce(int(birth.Month()), true)
	day := Reduce(birth.Day(), true)
	year := Reduce(digitSum(targetYear), true)
	return Reduce(month+day+year, true)
}

// PersonalMonth computes the personal month from a personal year and a
// calendar month.
func PersonalMonth(personalYear, month int) int {
	return Reduce(personalYear+month, true)
}

// PersonalDay computes the personal day from a personal month and a calendar
// day of month.
func PersonalDay(personalMonth, day int) int {
	return Reduce(personalMonth+day, true)
}

// UniversalDay computes the collective day number from the target date alone.
func UniversalDay(target time.Time) int {
	return Reduce(int(target.Month())+target.Day()+digitSum(target.Year()), true)
}

// ForDay computes the complete numerology reading for one target date.
func ForDay(birth, target time.Time) Reading {
	lifePath := LifePath(birth)
	personalYear := PersonalYear(birth, target.Year())
	personalMonth := PersonalMonth(personalYear, int(target.Month()))
	personalDay := PersonalDay(personalMonth, target.Day())
	universalDay := UniversalDay(target)

	meaning := meaningFor(personalDay)
	masterActive := masterNumbers[personalDay]
	masterMessage := ""
	if masterActive {
		masterMessage = meaning.MasterMessage
	}

	return Reading{
		LifePath:            lifePath,
		PersonalYear:        personalYear,
		PersonalMonth:       personalMonth,
		PersonalDay:         personalDay,
		UniversalDay:        universalDay,
		DayTheme:            meaning.Theme,
		EnergyQuality:       meaning.Quality,
		Keywords:            meaning.Keywords,
		FavorableFor:        meaning.Favorable,
		ChallengingFor:      meaning.Challenging,
		MasterNumberActive:  masterActive,
		MasterNumberMessage: masterMessage,
	}
}
