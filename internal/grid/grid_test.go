package grid

import (
	"errors"
	"reflect"
	"testing"
)

func newSample() State {
	return New(SampleRows(), DefaultColumns())
}

func rowIDs(rows []Row) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func columnKeys(cols []Column) []string {
	keys := make([]string, 0, len(cols))
	for _, c := range cols {
		keys = append(keys, c.Key)
	}
	return keys
}

func TestFilter(t *testing.T) {
	rows := []Row{
		{ID: 1, Status: "Active"},
		{ID: 2, Status: "Inactive"},
		{ID: 3, Status: "ACTIVE"},
		{ID: 4, Status: "active"},
	}
	tests := []struct {
		name string
		tab  Tab
		want []int
	}{
		{"all keeps every row", TabAll, []int{1, 2, 3, 4}},
		{"active matches case-insensitively", TabActive, []int{1, 3, 4}},
		{"unknown tab matches nothing", Tab("archived"), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowIDs(Filter(rows, tt.tab))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.tab, got, tt.want)
			}
		})
	}
}

func TestFilter_ActiveSample(t *testing.T) {
	got := Filter(SampleRows(), TabActive)
	if len(got) != 2 || got[0].Name != "Item 1" || got[1].Name != "Item 3" {
		t.Fatalf("Filter(active) = %#v, want [Item 1, Item 3]", got)
	}
}

func TestParseTab(t *testing.T) {
	if tab, err := ParseTab("  Active "); err != nil || tab != TabActive {
		t.Fatalf("ParseTab(Active) = %q, %v; want active, nil", tab, err)
	}
	if _, err := ParseTab("archived"); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("ParseTab(archived) error = %v, want ErrUnknownTab", err)
	}
	if got := TabAll.Next(); got != TabActive {
		t.Fatalf("TabAll.Next() = %q, want active", got)
	}
	if got := TabActive.Next(); got != TabAll {
		t.Fatalf("TabActive.Next() = %q, want all", got)
	}
}

func TestToggleColumnHidden_TwiceRestores(t *testing.T) {
	s := newSample()
	before := s.HiddenColumns()

	hidden, err := s.ToggleColumnHidden(KeyValue)
	if err != nil || !hidden {
		t.Fatalf("first toggle = %v, %v; want true, nil", hidden, err)
	}
	if got := columnKeys(s.VisibleColumns()); !reflect.DeepEqual(got, []string{KeyID, KeyName}) {
		t.Fatalf("VisibleColumns after hide = %v", got)
	}

	hidden, err = s.ToggleColumnHidden(KeyValue)
	if err != nil || hidden {
		t.Fatalf("second toggle = %v, %v; want false, nil", hidden, err)
	}
	if got := s.HiddenColumns(); !reflect.DeepEqual(got, before) {
		t.Fatalf("HiddenColumns = %v, want %v", got, before)
	}
	if got := columnKeys(s.VisibleColumns()); !reflect.DeepEqual(got, []string{KeyID, KeyName, KeyValue}) {
		t.Fatalf("VisibleColumns = %v, want [id name value]", got)
	}
}

func TestToggleColumnHidden_UnknownKey(t *testing.T) {
	s := newSample()
	if _, err := s.ToggleColumnHidden("status"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("ToggleColumnHidden(status) error = %v, want ErrUnknownColumn", err)
	}
}

func TestResizeColumn(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"below floor", 10, MinColumnWidth},
		{"negative", -40, MinColumnWidth},
		{"at floor", 50, 50},
		{"wide", 320, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSample()
			got, err := s.ResizeColumn(KeyName, tt.width)
			if err != nil {
				t.Fatalf("ResizeColumn returned error: %v", err)
			}
			if got != tt.want || s.Width(KeyName) != tt.want {
				t.Fatalf("ResizeColumn(%d) = %d (stored %d), want %d", tt.width, got, s.Width(KeyName), tt.want)
			}
		})
	}
}

func TestResizeColumn_LeavesDefinitionsAlone(t *testing.T) {
	s := newSample()
	if _, err := s.ResizeColumn(KeyID, 300); err != nil {
		t.Fatalf("ResizeColumn: %v", err)
	}
	if got := s.Columns()[0].Width; got != 80 {
		t.Fatalf("definition width = %d, want 80", got)
	}
	if _, err := s.ResizeColumn("nope", 100); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("ResizeColumn(nope) error = %v, want ErrUnknownColumn", err)
	}
}

func TestMove_UnfocusedIsNoop(t *testing.T) {
	s := newSample()
	for _, d := range []Direction{Up, Down, Left, Right} {
		if _, ok := s.Move(d); ok {
			t.Fatalf("Move(%s) focused a cell from unfocused", d)
		}
	}
}

func TestMove_StopsAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		start Cell
		dir   Direction
		want  Cell
	}{
		{"up at top", Cell{0, 1}, Up, Cell{0, 1}},
		{"down at bottom", Cell{2, 1}, Down, Cell{2, 1}},
		{"left at first column", Cell{1, 0}, Left, Cell{1, 0}},
		{"right at last column", Cell{1, 2}, Right, Cell{1, 2}},
		{"up", Cell{2, 0}, Up, Cell{1, 0}},
		{"down", Cell{0, 0}, Down, Cell{1, 0}},
		{"left", Cell{0, 2}, Left, Cell{0, 1}},
		{"right", Cell{0, 0}, Right, Cell{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSample()
			s.SetFocusedCell(tt.start.Row, tt.start.Col)
			got, ok := s.Move(tt.dir)
			if !ok || got != tt.want {
				t.Fatalf("Move(%s) from %v = %v, %v; want %v", tt.dir, tt.start, got, ok, tt.want)
			}
		})
	}
}

func TestMove_RightTwiceThenClamp(t *testing.T) {
	s := newSample()
	if _, err := s.FocusCell(1, KeyID); err != nil {
		t.Fatalf("FocusCell: %v", err)
	}
	s.Move(Right)
	got, _ := s.Move(Right)
	if got != (Cell{Row: 0, Col: 2}) {
		t.Fatalf("after two rights = %v, want {0 2}", got)
	}
	if _, col, _ := s.FocusedRow(); col.Key != KeyValue {
		t.Fatalf("focused column = %q, want value", col.Key)
	}
	got, _ = s.Move(Right)
	if got != (Cell{Row: 0, Col: 2}) {
		t.Fatalf("third right = %v, want {0 2}", got)
	}
}

func TestFocusCell_ResolvesAgainstFilteredRows(t *testing.T) {
	s := newSample()
	if err := s.SetActiveTab(TabActive); err != nil {
		t.Fatalf("SetActiveTab: %v", err)
	}
	got, err := s.FocusCell(3, KeyName)
	if err != nil {
		t.Fatalf("FocusCell: %v", err)
	}
	if got != (Cell{Row: 1, Col: 1}) {
		t.Fatalf("FocusCell(3, name) = %v, want {1 1}", got)
	}
}

func TestFocusCell_MissingRowClearsFocus(t *testing.T) {
	s := newSample()
	s.SetFocusedCell(0, 0)
	if err := s.SetActiveTab(TabActive); err != nil {
		t.Fatalf("SetActiveTab: %v", err)
	}
	if _, err := s.FocusCell(2, KeyName); !errors.Is(err, ErrRowNotVisible) {
		t.Fatalf("FocusCell(2) error = %v, want ErrRowNotVisible", err)
	}
	if _, ok := s.Focus(); ok {
		t.Fatal("focus should be cleared after a failed lookup")
	}
	if _, err := s.FocusCell(1, "status"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("FocusCell(status) error = %v, want ErrUnknownColumn", err)
	}
}

func TestSetActiveTab_ReclampsFocus(t *testing.T) {
	s := newSample()
	s.SetFocusedCell(2, 1)
	if err := s.SetActiveTab(TabActive); err != nil {
		t.Fatalf("SetActiveTab: %v", err)
	}
	got, ok := s.Focus()
	if !ok || got != (Cell{Row: 1, Col: 1}) {
		t.Fatalf("focus after tab switch = %v, %v; want {1 1}, true", got, ok)
	}
	if err := s.SetActiveTab(Tab("archived")); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("SetActiveTab(archived) error = %v, want ErrUnknownTab", err)
	}
	if s.Tab() != TabActive {
		t.Fatalf("Tab() = %q, want active after rejected switch", s.Tab())
	}
}

func TestSetActiveTab_EmptyViewClearsFocus(t *testing.T) {
	s := New([]Row{{ID: 9, Name: "Only", Status: StatusInactive}}, DefaultColumns())
	s.SetFocusedCell(0, 0)
	if err := s.SetActiveTab(TabActive); err != nil {
		t.Fatalf("SetActiveTab: %v", err)
	}
	if _, ok := s.Focus(); ok {
		t.Fatal("focus should be cleared when no rows are visible")
	}
}

func TestSetFocusedCell_Clamps(t *testing.T) {
	s := newSample()
	s.SetFocusedCell(10, -3)
	if got, _ := s.Focus(); got != (Cell{Row: 2, Col: 0}) {
		t.Fatalf("SetFocusedCell(10, -3) = %v, want {2 0}", got)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := newSample()
	dup := s.Clone()
	if _, err := dup.ToggleColumnHidden(KeyID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := dup.ResizeColumn(KeyID, 400); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if s.IsHidden(KeyID) || s.Width(KeyID) != 80 {
		t.Fatalf("original changed through clone: hidden=%v width=%d", s.IsHidden(KeyID), s.Width(KeyID))
	}
}

func TestRowField(t *testing.T) {
	r := SampleRows()[1]
	if r.Field(KeyID) != "2" || r.Field(KeyName) != "Item 2" || r.Field(KeyValue) != "200" {
		t.Fatalf("Field values = %q %q %q", r.Field(KeyID), r.Field(KeyName), r.Field(KeyValue))
	}
	if r.Field("status") != "" {
		t.Fatalf("Field(status) = %q, want empty", r.Field("status"))
	}
}

func TestResizeGesture(t *testing.T) {
	s := newSample()
	g := BeginResize(KeyName, 300, s.Width(KeyName))

	if got, err := g.Move(&s, 340); err != nil || got != 240 {
		t.Fatalf("Move(+40) = %d, %v; want 240", got, err)
	}
	if got, _ := g.Move(&s, 100); got != MinColumnWidth {
		t.Fatalf("Move far left = %d, want %d", got, MinColumnWidth)
	}
	if got, _ := g.Move(&s, 310); got != 210 {
		t.Fatalf("Move(+10) = %d, want 210", got)
	}

	g.End()
	if g.Active() {
		t.Fatal("gesture still active after End")
	}
	if got, _ := g.Move(&s, 900); got != 210 || s.Width(KeyName) != 210 {
		t.Fatalf("Move after End = %d (stored %d), want 210", got, s.Width(KeyName))
	}
}
