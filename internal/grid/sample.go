package grid

// SampleRows returns the fixed dataset the grid is backed by.
func SampleRows() []Row {
	return []Row{
		{ID: 1, Name: "Item 1", Value: "100", Status: StatusActive},
		{ID: 2, Name: "Item 2", Value: "200", Status: StatusInactive},
		{ID: 3, Name: "Item 3", Value: "300", Status: StatusActive},
	}
}

// DefaultColumns returns the column definitions in display order.
func DefaultColumns() []Column {
	return []Column{
		{Header: "ID", Key: KeyID, Width: 80},
		{Header: "Name", Key: KeyName, Width: 200},
		{Header: "Value", Key: KeyValue, Width: 150},
	}
}
