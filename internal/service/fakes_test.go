package service

import (
	"fmt"
	"strings"
	"time"

	"rota-manager/internal/grid"
	"rota-manager/internal/models"
)

// In-memory repository fakes. Error flags let tests exercise the
// degraded paths.

type fakeStaffRepo struct {
	members []*models.StaffMember
	nextID  uint
	fail    bool
}

func (r *fakeStaffRepo) Create(member *models.StaffMember) error {
	if r.fail {
		return fmt.Errorf("staff storage unavailable")
	}
	for _, m := range r.members {
		if models.SameName(m.Name, member.Name) {
			return fmt.Errorf("staff member already exists")
		}
	}
	r.nextID++
	member.ID = r.nextID
	r.members = append(r.members, member)
	return nil
}

func (r *fakeStaffRepo) GetByName(name string) (*models.StaffMember, error) {
	if r.fail {
		return nil, fmt.Errorf("staff storage unavailable")
	}
	for _, m := range r.members {
		if models.SameName(m.Name, name) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) GetAll() ([]*models.StaffMember, error) {
	if r.fail {
		return nil, fmt.Errorf("staff storage unavailable")
	}
	return append([]*models.StaffMember{}, r.members...), nil
}

func (r *fakeStaffRepo) Delete(name string) error {
	if r.fail {
		return fmt.Errorf("staff storage unavailable")
	}
	for i, m := range r.members {
		if models.SameName(m.Name, name) {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("staff member not found")
}

func (r *fakeStaffRepo) Exists(name string) (bool, error) {
	m, err := r.GetByName(name)
	return m != nil, err
}

type fakeShiftRepo struct {
	customs []models.CustomShift
	hidden  []string
	fail    bool
}

func (r *fakeShiftRepo) CustomShifts() ([]models.CustomShift, error) {
	if r.fail {
		return nil, fmt.Errorf("shift storage unavailable")
	}
	return append([]models.CustomShift{}, r.customs...), nil
}

func (r *fakeShiftRepo) SaveCustom(shift *models.CustomShift) error {
	if r.fail {
		return fmt.Errorf("shift storage unavailable")
	}
	for i := range r.customs {
		if r.customs[i].Code == shift.Code {
			r.customs[i] = *shift
			return nil
		}
	}
	r.customs = append(r.customs, *shift)
	return nil
}

func (r *fakeShiftRepo) DeleteCustom(code string) error {
	for i := range r.customs {
		if r.customs[i].Code == code {
			r.customs = append(r.customs[:i], r.customs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("custom shift not found")
}

func (r *fakeShiftRepo) HiddenCodes() ([]string, error) {
	if r.fail {
		return nil, fmt.Errorf("shift storage unavailable")
	}
	return append([]string{}, r.hidden...), nil
}

func (r *fakeShiftRepo) Hide(code string) error {
	for _, h := range r.hidden {
		if h == code {
			return nil
		}
	}
	r.hidden = append(r.hidden, code)
	return nil
}

func (r *fakeShiftRepo) Unhide(code string) error {
	for i, h := range r.hidden {
		if h == code {
			r.hidden = append(r.hidden[:i], r.hidden[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAbsenceRepo struct {
	records []models.AbsenceRecord
	fail    bool
}

func (r *fakeAbsenceRepo) Create(record *models.AbsenceRecord) error {
	if r.fail {
		return fmt.Errorf("absence storage unavailable")
	}
	record.ID = uint(len(r.records) + 1)
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeAbsenceRepo) GetByStaffName(staffName string) ([]models.AbsenceRecord, error) {
	out := []models.AbsenceRecord{}
	for _, rec := range r.records {
		if models.SameName(rec.StaffName, staffName) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAbsenceRepo) GetAll() ([]models.AbsenceRecord, error) {
	return append([]models.AbsenceRecord{}, r.records...), nil
}

type fakeAllocRepo struct {
	defaults map[string]int
	years    map[string]int
}

func newFakeAllocRepo() *fakeAllocRepo {
	return &fakeAllocRepo{defaults: map[string]int{}, years: map[string]int{}}
}

func allocKey(staff string, year int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(staff), year)
}

func (r *fakeAllocRepo) GetDefault(staffName string) (*models.LeaveAllocation, error) {
	days, ok := r.defaults[strings.ToLower(staffName)]
	if !ok {
		return nil, nil
	}
	return &models.LeaveAllocation{StaffName: staffName, Days: days}, nil
}

func (r *fakeAllocRepo) GetForYear(staffName string, year int) (*models.LeaveAllocation, error) {
	days, ok := r.years[allocKey(staffName, year)]
	if !ok {
		return nil, nil
	}
	return &models.LeaveAllocation{StaffName: staffName, Year: &year, Days: days}, nil
}

func (r *fakeAllocRepo) SetDefault(staffName string, days int) error {
	r.defaults[strings.ToLower(staffName)] = days
	return nil
}

func (r *fakeAllocRepo) SetForYear(staffName string, year, days int) error {
	r.years[allocKey(staffName, year)] = days
	return nil
}

// testEnv bundles the full service stack over in-memory storage.
type testEnv struct {
	store       *grid.MemoryStore
	staffRepo   *fakeStaffRepo
	shiftRepo   *fakeShiftRepo
	absenceRepo *fakeAbsenceRepo
	allocRepo   *fakeAllocRepo

	catalog     *CatalogService
	sheets      *SheetService
	staff       *StaffService
	schedule    *ScheduleService
	absences    *AbsenceService
	allocations *AllocationService
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		store:       grid.NewMemoryStore(),
		staffRepo:   &fakeStaffRepo{},
		shiftRepo:   &fakeShiftRepo{},
		absenceRepo: &fakeAbsenceRepo{},
		allocRepo:   newFakeAllocRepo(),
	}

	env.catalog = NewCatalogService(env.shiftRepo)
	env.allocations = NewAllocationService(env.allocRepo)
	env.sheets = NewSheetService(env.store, env.catalog, env.allocRepo)
	env.catalog.OnChange(env.sheets.Resync)
	env.allocations.OnChange(env.sheets.Resync)

	env.staff = NewStaffService(env.staffRepo, env.store, env.sheets)
	env.staff.Now = func() time.Time { return now }

	env.schedule = NewScheduleService(env.sheets, env.catalog)
	env.schedule.Now = func() time.Time { return now }

	env.absences = NewAbsenceService(env.absenceRepo, env.sheets)
	return env
}

// dayCell reads one day cell of a staff row. A missing grid reads as
// a sentinel so assertions on it fail loudly.
func (env *testEnv) dayCell(month, year, row, day int) string {
	table, err := env.store.Get(month, year)
	if err != nil {
		return "<no grid>"
	}
	value, _ := table.Cell(row, table.Layout().DayColumn(day))
	return value
}
