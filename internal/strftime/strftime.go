// Package strftime renders time values with C strftime-style patterns.
package strftime

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is the default output pattern (ISO calendar date).
const DefaultPattern = "%Y-%m-%d"

// Format renders t according to pattern. Directives outside the supported
// vocabulary are emitted verbatim ('%Q' stays '%Q'), as is a lone trailing
// '%'.
func Format(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}
		i++
		writeDirective(&b, t, pattern[i])
	}
	return b.String()
}

func writeDirective(b *strings.Builder, t time.Time, d byte) {
	switch d {
	case 'Y':
		fmt.Fprintf(b, "%04d", t.Year())
	case 'y':
		fmt.Fprintf(b, "%02d", t.Year()%100)
	case 'm':
		fmt.Fprintf(b, "%02d", int(t.Month()))
	case 'd':
		fmt.Fprintf(b, "%02d", t.Day())
	case 'e':
		fmt.Fprintf(b, "%2d", t.Day())
	case 'j':
		fmt.Fprintf(b, "%03d", t.YearDay())
	case 'H':
		fmt.Fprintf(b, "%02d", t.Hour())
	case 'I':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		fmt.Fprintf(b, "%02d", hour)
	case 'M':
		fmt.Fprintf(b, "%02d", t.Minute())
	case 'S':
		fmt.Fprintf(b, "%02d", t.Second())
	case 'p':
		if t.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'a':
		b.WriteString(t.Format("Mon"))
	case 'A':
		b.WriteString(t.Format("Monday"))
	case 'b', 'h':
		b.WriteString(t.Format("Jan"))
	case 'B':
		b.WriteString(t.Format("January"))
	case 'F':
		fmt.Fprintf(b, "%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	case 'D':
		fmt.Fprintf(b, "%02d/%02d/%02d", int(t.Month()), t.Day(), t.Year()%100)
	case 'T':
		fmt.Fprintf(b, "%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	case '%':
		b.WriteByte('%')
	default:
		// Unsupported directive, pass through untouched
		b.WriteByte('%')
		b.WriteByte(d)
	}
}
