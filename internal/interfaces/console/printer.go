package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors applied to console lines. fatih/color turns them off when the
// output is not a terminal or NO_COLOR is set, leaving plain text.
var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// printer writes whole lines to the session output.
type printer struct {
	w io.Writer
}

// line writes text followed by a newline.
func (p printer) line(text string) error {
	_, err := fmt.Fprintln(p.w, text)
	return err
}

// colored writes text in the given color followed by a newline.
func (p printer) colored(c *color.Color, text string) error {
	_, err := c.Fprintln(p.w, text)
	return err
}
