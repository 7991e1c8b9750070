package identify

import (
	"context"
	"errors"
	"strings"
)

const DefaultLabel = "Table"

var ErrEmptyTableNumber = errors.New("table number is empty")

// ManualEntry turns a number typed by the diner into a table id.
type ManualEntry struct {
	label string
	input string
}

func NewManualEntry(label, input string) *ManualEntry {
	if label == "" {
		label = DefaultLabel
	}
	return &ManualEntry{label: label, input: input}
}

// CanSubmit reports whether input would be accepted. Surfaces use it to
// disable submission.
func CanSubmit(input string) bool {
	return strings.TrimSpace(input) != ""
}

func FormatTableID(label, number string) string {
	return label + " " + strings.TrimSpace(number)
}

func (m *ManualEntry) Kind() Kind {
	return KindManualEntry
}

func (m *ManualEntry) Activate(ctx context.Context, report ReportFunc) error {
	if !CanSubmit(m.input) {
		return ErrEmptyTableNumber
	}
	report(FormatTableID(m.label, m.input))
	return nil
}

func (m *ManualEntry) Close() error {
	return nil
}
