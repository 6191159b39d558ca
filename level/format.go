package level

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/regroup/tier"
)

// Formatter renders numbers and expressions for a locale
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given BCP 47 tag
// Unparseable tags fall back to English
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Number formats n with the locale's grouping separator
func (f *Formatter) Number(n int) string {
	if f == nil || f.printer == nil {
		return fmt.Sprint(n)
	}
	return f.printer.Sprintf("%d", n)
}

// Expression formats "a + b + c = total" with plain digits; grouping
// separators would read as extra terms in the sum
func (f *Formatter) Expression(parts []int, total int) string {
	terms := make([]string, len(parts))
	for i, p := range parts {
		terms[i] = strconv.Itoa(p)
	}
	return strings.Join(terms, " + ") + " = " + strconv.Itoa(total)
}

// Caption formats a tier column footer such as "3 × 10 = 30"
func (f *Formatter) Caption(t *tier.Tier) string {
	return fmt.Sprintf("%s × %s = %s",
		f.Number(t.Len()), f.Number(t.Kind().Denomination()), f.Number(t.Value()))
}
