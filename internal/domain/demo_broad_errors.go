package domain

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// demoBroadErrors contrasts discarding every parse error with matching only
// the expected condition. The broad version silently turns an overflow into
// zero; the narrow one lets it surface.
func demoBroadErrors(w io.Writer) {
	parseIntBad := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil { // any failure becomes zero, overflow included
			return 0
		}

		return n
	}

	parseIntGood := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			if errors.Is(err, strconv.ErrSyntax) {
				return 0, nil // expected: input is not a number
			}

			return 0, err // anything else is a real problem
		}

		return n, nil
	}

	huge := "99999999999999999999"

	fmt.Fprintln(w, `parseIntBad("123") :`, parseIntBad("123"))
	fmt.Fprintln(w, `parseIntBad("abc") :`, parseIntBad("abc"))
	fmt.Fprintf(w, "parseIntBad(%q): %d   <-- overflow silently became zero\n", huge, parseIntBad(huge))

	fmt.Fprintln(w)

	n, err := parseIntGood("123")
	fmt.Fprintf(w, "parseIntGood(\"123\"): %d, err=%v\n", n, err)
	n, err = parseIntGood("abc")
	fmt.Fprintf(w, "parseIntGood(\"abc\"): %d, err=%v\n", n, err)
	_, err = parseIntGood(huge)
	fmt.Fprintf(w, "parseIntGood(%q): err=%v\n", huge, err)
}
