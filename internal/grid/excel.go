package grid

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"rota-manager/pkg/dates"
)

// Validation covers this many data rows when a grid is formatted.
const validationRows = 200

// ExcelStore keeps every month grid as one worksheet of a single .xlsx
// workbook. Writes stay in memory until Flush saves the file.
type ExcelStore struct {
	path   string
	file   *excelize.File
	fresh  bool
	logger *logrus.Logger
}

func NewExcelStore(path string) (*ExcelStore, error) {
	store := &ExcelStore{path: path, logger: logrus.New()}

	if _, err := os.Stat(path); err == nil {
		file, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
		store.file = file
	} else {
		store.file = excelize.NewFile()
		store.fresh = true
	}

	store.logger.WithField("path", path).Info("Workbook store initialized")
	return store, nil
}

func (s *ExcelStore) Get(month, year int) (Table, error) {
	layout := NewLayout(month, year)
	idx, err := s.file.GetSheetIndex(layout.SheetName())
	if err != nil || idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, layout.SheetName())
	}
	return &excelTable{store: s, layout: layout}, nil
}

func (s *ExcelStore) Create(month, year int) (Table, error) {
	layout := NewLayout(month, year)
	name := layout.SheetName()

	if idx, err := s.file.GetSheetIndex(name); err == nil && idx != -1 {
		return &excelTable{store: s, layout: layout}, nil
	}

	if _, err := s.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	// Drop the placeholder sheet a fresh workbook starts with.
	if s.fresh {
		if idx, err := s.file.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
			if err := s.file.DeleteSheet("Sheet1"); err != nil {
				s.logger.WithError(err).Warn("Failed to remove placeholder sheet")
			}
		}
		s.fresh = false
	}

	s.logger.WithField("sheet", name).Info("Created month grid sheet")
	return &excelTable{store: s, layout: layout}, nil
}

func (s *ExcelStore) All() ([]Table, error) {
	tables := []Table{}
	for _, name := range s.file.GetSheetList() {
		my, err := dates.ParseMonthYear(name)
		if err != nil {
			continue // not a month grid sheet
		}
		tables = append(tables, &excelTable{store: s, layout: NewLayout(my.Month, my.Year)})
	}
	return tables, nil
}

func (s *ExcelStore) Flush() error {
	return s.file.SaveAs(s.path)
}

func (s *ExcelStore) Close() error {
	return s.file.Close()
}

type excelTable struct {
	store  *ExcelStore
	layout Layout
}

func (t *excelTable) sheet() string { return t.layout.SheetName() }

func (t *excelTable) Layout() Layout { return t.layout }

func (t *excelTable) Rows() (int, error) {
	rows, err := t.store.file.GetRows(t.sheet())
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 1, nil
	}
	return len(rows), nil
}

func (t *excelTable) Cell(row, col int) (string, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return t.store.file.GetCellValue(t.sheet(), ref)
}

func (t *excelTable) SetCell(row, col int, value string) error {
	if err := checkDataWrite(t.layout, row, col, 1); err != nil {
		return err
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return t.store.file.SetCellStr(t.sheet(), ref, value)
}

func (t *excelTable) SetRange(row, startCol int, values []string) error {
	if err := checkDataWrite(t.layout, row, startCol, len(values)); err != nil {
		return err
	}
	ref, err := excelize.CoordinatesToCellName(startCol, row)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return t.store.file.SetSheetRow(t.sheet(), ref, &cells)
}

func (t *excelTable) SetFormula(row, col int, formula string) error {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return t.store.file.SetCellFormula(t.sheet(), ref, formula)
}

func (t *excelTable) Formula(row, col int) (string, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return t.store.file.GetCellFormula(t.sheet(), ref)
}

func (t *excelTable) Column(col int) ([]string, error) {
	last, err := t.Rows()
	if err != nil {
		return nil, err
	}

	values := []string{}
	for row := 2; row <= last; row++ {
		value, err := t.Cell(row, col)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func (t *excelTable) ApplyFormat(codes []string) error {
	file := t.store.file
	sheet := t.sheet()

	// Column sizing: wide staff column, narrow day columns, medium
	// aggregates.
	if err := file.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	firstDay, err := excelize.ColumnNumberToName(t.layout.DayColumn(1))
	if err != nil {
		return err
	}
	lastDay, err := excelize.ColumnNumberToName(t.layout.DayColumn(t.layout.DaysInMonth))
	if err != nil {
		return err
	}
	if err := file.SetColWidth(sheet, firstDay, lastDay, 7); err != nil {
		return err
	}
	firstAgg, err := excelize.ColumnNumberToName(t.layout.AggregateStart())
	if err != nil {
		return err
	}
	lastAgg, err := excelize.ColumnNumberToName(t.layout.LastColumn())
	if err != nil {
		return err
	}
	if err := file.SetColWidth(sheet, firstAgg, lastAgg, 12); err != nil {
		return err
	}

	// Freeze the header row and the staff column.
	err = file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
	if err != nil {
		return err
	}

	// Dropdown validation on the day columns only. Aggregate columns
	// stay unrestricted: they hold formulas, not shift codes.
	if err := file.DeleteDataValidation(sheet); err != nil {
		return err
	}
	if len(codes) == 0 {
		return nil
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", firstDay, lastDay, validationRows+1)
	if err := dv.SetDropList(codes); err != nil {
		return err
	}
	return file.AddDataValidation(sheet, dv)
}
