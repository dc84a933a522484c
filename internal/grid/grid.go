package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle flag a row is filtered on.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Column keys. Each matches a Row field.
const (
	KeyID    = "id"
	KeyName  = "name"
	KeyValue = "value"
)

// MinColumnWidth is the narrowest width, in pixels, a column can be resized to.
const MinColumnWidth = 50

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrUnknownTab    = errors.New("unknown tab")
	ErrRowNotVisible = errors.New("row not in filtered view")
)

// Row is one immutable record of the dataset.
type Row struct {
	ID     int
	Name   string
	Value  string
	Status Status
}

// Field returns the display text of the field named by a column key.
func (r Row) Field(key string) string {
	switch key {
	case KeyID:
		return strconv.Itoa(r.ID)
	case KeyName:
		return r.Name
	case KeyValue:
		return r.Value
	}
	return ""
}

// Column is a column definition. Width is the declared width in pixels;
// the live width is held by State.
type Column struct {
	Header string
	Key    string
	Width  int
}

// Tab selects which rows are shown.
type Tab string

const (
	TabAll    Tab = "all"
	TabActive Tab = "active"
)

var tabOrder = []Tab{TabAll, TabActive}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return append([]Tab(nil), tabOrder...)
}

// ParseTab resolves a tab name, ignoring case and surrounding space.
func ParseTab(name string) (Tab, error) {
	normalized := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, t := range tabOrder {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// Label is the button text for the tab.
func (t Tab) Label() string {
	switch t {
	case TabActive:
		return "Active"
	default:
		return "All"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	for i, candidate := range tabOrder {
		if candidate == t {
			return tabOrder[(i+1)%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

// Filter returns the rows visible under tab, in source order. The all tab
// keeps every row; any other tab keeps rows whose status equals the tab
// name case-insensitively.
func Filter(rows []Row, tab Tab) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if tab == TabAll || strings.EqualFold(string(row.Status), string(tab)) {
			out = append(out, row)
		}
	}
	return out
}
