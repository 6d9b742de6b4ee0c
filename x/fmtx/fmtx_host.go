//go:build !tinygo

package fmtx

import (
	"fmt"
	"io"
	"strings"
)

func Sprintf(format string, a ...any) string                    { return fmt.Sprintf(format, a...) }
func Printf(format string, a ...any) (int, error)               { return fmt.Printf(format, a...) }
func Fprintf(w io.Writer, format string, a ...any) (int, error) { return fmt.Fprintf(w, format, a...) }

// Sprint joins operands with single spaces, matching the MCU variant.
// fmt.Sprint separates only non-string neighbours, which would make log
// lines differ between host and board builds.
func Sprint(a ...any) string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

func Print(a ...any) (int, error) { return fmt.Print(Sprint(a...)) }
