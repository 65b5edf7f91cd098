package grid

import "fmt"

// MemoryStore is the in-memory Store used by tests and as the
// reference implementation of the layout contract.
type MemoryStore struct {
	tables map[string]*MemoryTable
	order  []string

	// FailRangeWrites makes every SetRange fail, forcing callers onto
	// their per-cell fallback path. Test hook.
	FailRangeWrites bool

	// FailCellWrites makes per-cell writes fail as well.
	FailCellWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string]*MemoryTable{}}
}

func (s *MemoryStore) Get(month, year int) (Table, error) {
	name := NewLayout(month, year).SheetName()
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return t, nil
}

func (s *MemoryStore) Create(month, year int) (Table, error) {
	layout := NewLayout(month, year)
	if t, ok := s.tables[layout.SheetName()]; ok {
		return t, nil
	}

	t := &MemoryTable{
		layout:   layout,
		store:    s,
		cells:    map[[2]int]string{},
		formulas: map[[2]int]string{},
		maxRow:   1,
	}
	s.tables[layout.SheetName()] = t
	s.order = append(s.order, layout.SheetName())
	return t, nil
}

func (s *MemoryStore) All() ([]Table, error) {
	tables := make([]Table, 0, len(s.order))
	for _, name := range s.order {
		tables = append(tables, s.tables[name])
	}
	return tables, nil
}

func (s *MemoryStore) Flush() error { return nil }
func (s *MemoryStore) Close() error { return nil }

// MemoryTable keeps cells and formulas in maps and records the last
// validation codes it was formatted with.
type MemoryTable struct {
	layout   Layout
	store    *MemoryStore
	cells    map[[2]int]string
	formulas map[[2]int]string
	maxRow   int

	ValidationCodes []string
	Frozen          bool
}

func (t *MemoryTable) Layout() Layout { return t.layout }

func (t *MemoryTable) Rows() (int, error) { return t.maxRow, nil }

func (t *MemoryTable) Cell(row, col int) (string, error) {
	return t.cells[[2]int{row, col}], nil
}

func (t *MemoryTable) SetCell(row, col int, value string) error {
	if t.store != nil && t.store.FailCellWrites {
		return fmt.Errorf("cell write rejected")
	}
	if err := checkDataWrite(t.layout, row, col, 1); err != nil {
		return err
	}
	t.put(row, col, value)
	return nil
}

func (t *MemoryTable) SetRange(row, startCol int, values []string) error {
	if t.store != nil && t.store.FailRangeWrites {
		return fmt.Errorf("range write rejected")
	}
	if err := checkDataWrite(t.layout, row, startCol, len(values)); err != nil {
		return err
	}
	for i, v := range values {
		t.put(row, startCol+i, v)
	}
	return nil
}

func (t *MemoryTable) SetFormula(row, col int, formula string) error {
	t.formulas[[2]int{row, col}] = formula
	if row > t.maxRow {
		t.maxRow = row
	}
	return nil
}

func (t *MemoryTable) Formula(row, col int) (string, error) {
	return t.formulas[[2]int{row, col}], nil
}

func (t *MemoryTable) Column(col int) ([]string, error) {
	values := []string{}
	for row := 2; row <= t.maxRow; row++ {
		values = append(values, t.cells[[2]int{row, col}])
	}
	return values, nil
}

func (t *MemoryTable) ApplyFormat(codes []string) error {
	t.ValidationCodes = append([]string{}, codes...)
	t.Frozen = true
	return nil
}

func (t *MemoryTable) put(row, col int, value string) {
	t.cells[[2]int{row, col}] = value
	if row > t.maxRow {
		t.maxRow = row
	}
}
