package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/parameter"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowRaw includes the raw codes alongside the label view.
	ShowRaw bool

	// ShowStates includes the state table.
	ShowStates bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowRaw:     true,
		ShowStates:  true,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatParameter renders a parameter: metadata header, label view,
// and optionally the raw codes and state table.
func (f *Formatter) FormatParameter(p *parameter.Parameter) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%.4g Hz, offset %.4gs", p.Name, p.Frequency, p.Offset)
	if p.ARINC429 != nil {
		fmt.Fprintf(&sb, ", arinc_429=%v", *p.ARINC429)
	}
	sb.WriteString(")\n")

	switch array := p.Array().(type) {
	case *parameter.MappedArray:
		sb.WriteString(f.Indent(1, "data: "+f.FormatArray(array)+"\n"))
		if f.ShowRaw {
			sb.WriteString(f.Indent(1, "raw:  "+f.FormatArray(array.Raw())+"\n"))
		}
		if f.ShowStates && array.Mapping() != nil {
			sb.WriteString(f.Indent(1, "states:\n"))
			sb.WriteString(f.formatStateLines(array.Mapping(), 2))
		}
	case []int64:
		sb.WriteString(f.Indent(1, fmt.Sprintf("data: %v\n", array)))
	default:
		sb.WriteString(f.Indent(1, fmt.Sprintf("data: %v\n", array)))
	}
	return sb.String()
}

// FormatArray renders one array as a bracketed element list. Masked
// samples render as "--", unlabeled codes as the unknown-state
// sentinel.
func (f *Formatter) FormatArray(a *parameter.MappedArray) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", a.At(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatStates renders a state table, one "code: label" line per code
// in ascending code order.
func (f *Formatter) FormatStates(m *parameter.StateMapping) string {
	return f.formatStateLines(m, 0)
}

func (f *Formatter) formatStateLines(m *parameter.StateMapping, depth int) string {
	codes := make([]int64, 0, m.Len())
	for code := range m.Codes() {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var sb strings.Builder
	for _, code := range codes {
		label, _ := m.LabelOf(code)
		sb.WriteString(f.Indent(depth, fmt.Sprintf("%d: %s\n", code, label)))
	}
	return sb.String()
}
