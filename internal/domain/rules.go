package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultMinGroupSize    = 1
	DefaultMaxGroupSize    = 50
	DefaultMaxNoteLength   = 80
	DefaultLongSpanMinutes = 240
)

// Rules holds the limits used by the entry validators. Each validator takes
// raw field text and the 0-based row index and returns nil on pass.
type Rules struct {
	MinGroupSize    int
	MaxGroupSize    int
	MaxNoteLength   int
	LongSpanMinutes int
}

// DefaultRules returns the limits of the published log format.
func DefaultRules() Rules {
	return Rules{
		MinGroupSize:    DefaultMinGroupSize,
		MaxGroupSize:    DefaultMaxGroupSize,
		MaxNoteLength:   DefaultMaxNoteLength,
		LongSpanMinutes: DefaultLongSpanMinutes,
	}
}

// GroupSizeParse is the outcome of reading group-size text.
// Integer is false when the text is not an integer at all; when it is an
// integer too large for int, Integer is true and InRange is false.
type GroupSizeParse struct {
	Value   int
	Integer bool
	InRange bool
}

// ParseGroupSize reads text as a base-10 integer and range-checks it.
func (r Rules) ParseGroupSize(text string) GroupSizeParse {
	n, err := strconv.Atoi(text)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return GroupSizeParse{Integer: true}
		}
		return GroupSizeParse{}
	}
	return GroupSizeParse{
		Value:   n,
		Integer: true,
		InRange: n >= r.MinGroupSize && n <= r.MaxGroupSize,
	}
}

func (r Rules) GroupSize(text string, row int) *Finding {
	p := r.ParseGroupSize(text)
	switch {
	case !p.Integer:
		return findingPtr(ErrorAt(row, "Group Amount Must Be A Whole Positive Number"))
	case !p.InRange:
		return findingPtr(ErrorAt(row, fmt.Sprintf(
			"Group Amount Must Be A Whole Number Between %d And %d", r.MinGroupSize, r.MaxGroupSize)))
	}
	return nil
}

func (r Rules) ActivityCode(text string, row int) *Finding {
	if DecodeActivityCode(text) == ActivityUnrecognized {
		return findingPtr(ErrorAt(row, "Activity Code Is Not Valid"))
	}
	return nil
}

// Note checks the free-text note. Notes are written back into a
// comma-delimited file, so an embedded comma would split the row.
func (r Rules) Note(text string, kind ActivityKind, row int) *Finding {
	switch {
	case kind == ActivityOther && text == "":
		return findingPtr(ErrorAt(row, "Activity Is Other, BUT Note Is Empty"))
	case utf8.RuneCountInString(text) > r.MaxNoteLength:
		return findingPtr(ErrorAt(row, fmt.Sprintf("Note Is Longer Than %d Characters!", r.MaxNoteLength)))
	case strings.Contains(text, ","):
		return findingPtr(ErrorAt(row, "Note Contains Commas!"))
	}
	return nil
}

// TimeSpanResult carries the blocking error, if any, and the non-blocking
// warnings produced by a time-span check.
type TimeSpanResult struct {
	Err      *Finding
	Warnings []Finding
	Minutes  int
}

// TimeSpan validates the date and both times, then checks the duration
// between them. Format failures return before any arithmetic.
func (r Rules) TimeSpan(date, start, end string, row int) TimeSpanResult {
	switch {
	case !IsValidDate(date):
		return TimeSpanResult{Err: findingPtr(ErrorAt(row, "Invalid Date Format. Dates Must Be MM/DD/YYYY"))}
	case !IsValidTime(start):
		return TimeSpanResult{Err: findingPtr(ErrorAt(row, "Invalid Start Time Format. Times Must Be HH:MM"))}
	case !IsValidTime(end):
		return TimeSpanResult{Err: findingPtr(ErrorAt(row, "Invalid End Time Format. Times Must Be HH:MM"))}
	}

	minutes := int(instant(date, end).Sub(instant(date, start)) / time.Minute)
	result := TimeSpanResult{Minutes: minutes}

	switch {
	case minutes < 0:
		result.Err = findingPtr(ErrorAt(row, "End Time Is Before Start Time. Activities Cannot Run Backwards In Time"))
	case minutes >= r.LongSpanMinutes:
		result.Warnings = append(result.Warnings, WarningAt(row, longSpanMessage(r.LongSpanMinutes)))
	}
	return result
}

func longSpanMessage(limit int) string {
	if limit%60 == 0 {
		return fmt.Sprintf("Did You Really Spend %s Or More Hours On An Activity?", hoursWord(limit/60))
	}
	return fmt.Sprintf("Did You Really Spend %d Or More Minutes On An Activity?", limit)
}

var hourWords = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve"}

func hoursWord(h int) string {
	if h >= 0 && h < len(hourWords) {
		return hourWords[h]
	}
	return strconv.Itoa(h)
}

// instant combines text already matched by IsValidDate and IsValidTime.
// time.Date normalizes out-of-range days (02/30 becomes 03/01), which is
// harmless since both instants share the date.
func instant(date, clock string) time.Time {
	month, _ := strconv.Atoi(date[0:2])
	day, _ := strconv.Atoi(date[3:5])
	year, _ := strconv.Atoi(date[6:10])
	hour, _ := strconv.Atoi(clock[0:2])
	minute, _ := strconv.Atoi(clock[3:5])
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func findingPtr(f Finding) *Finding { return &f }
