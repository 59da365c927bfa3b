package dts

import (
	"fmt"
	"io"
)

// ManualAddition is appended after every generated declaration. The type is
// referenced by the documentation but never documented itself.
const ManualAddition = `
/**
 * MANUAL ADDITION: This type is undocumented, see {@link ChartComponent.props} for further information
 */
export type ChartComponentProps = object
`

type Writer struct {
	w     io.Writer
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteHeader(source string) error {
	_, err := fmt.Fprintf(w.w,
		"// This definition for the RpgLogs API is auto generated from %s\n"+
			"// it is not officially supported by WarcraftLogs\n",
		source,
	)
	return err
}

func (w *Writer) WriteDeclaration(d Declaration) error {
	_, err := fmt.Fprintf(w.w, "export %s\n", d.Render())
	if err != nil {
		return err
	}
	w.count++
	return nil
}

func (w *Writer) WriteFooter() error {
	_, err := io.WriteString(w.w, ManualAddition)
	return err
}

// Count is the number of declarations written so far.
func (w *Writer) Count() int {
	return w.count
}
