package service

import (
	"fmt"
	"regexp"
	"strings"

	"rota-manager/internal/models"
	"rota-manager/internal/repository"

	"github.com/sirupsen/logrus"
)

var customCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// CatalogService resolves the shift catalog: the fixed built-in set,
// minus hidden codes, plus user-defined custom shifts.
type CatalogService struct {
	repo   repository.ShiftTypeRepository
	resync func() error
	logger *logrus.Logger
}

func NewCatalogService(repo repository.ShiftTypeRepository) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// OnChange registers the resync step that re-applies grid validation
// and rebuilds aggregate formulas after every catalog mutation.
func (s *CatalogService) OnChange(resync func() error) {
	s.resync = resync
}

// Resolve returns the visible catalog. A custom entry whose code
// matches a built-in replaces it in the resolved view. Storage
// failures degrade to the unmodified built-in set, never an error.
func (s *CatalogService) Resolve() []models.ShiftType {
	hiddenCodes, err := s.repo.HiddenCodes()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read hidden shifts, using built-ins as-is")
		hiddenCodes = nil
	}
	customs, err := s.repo.CustomShifts()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read custom shifts, using built-ins as-is")
		customs = nil
	}

	hidden := map[string]bool{}
	for _, code := range hiddenCodes {
		hidden[code] = true
	}

	resolved := []models.ShiftType{}
	for _, builtin := range models.Builtins() {
		if hidden[builtin.Code] {
			continue
		}
		resolved = append(resolved, builtin)
	}

	for _, custom := range customs {
		entry := models.ShiftType{
			Code:   custom.Code,
			Label:  custom.Label,
			Hours:  custom.Hours,
			Color:  custom.Color,
			Custom: true,
		}
		replaced := false
		for i := range resolved {
			if resolved[i].Code == entry.Code {
				resolved[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			resolved = append(resolved, entry)
		}
	}

	return resolved
}

// VisibleCodes returns the codes of the resolved catalog, in catalog
// order.
func (s *CatalogService) VisibleCodes() []string {
	resolved := s.Resolve()
	codes := make([]string, 0, len(resolved))
	for _, st := range resolved {
		codes = append(codes, st.Code)
	}
	return codes
}

// AddCustom stores a custom shift type and resyncs every grid so the
// new code counts toward total hours immediately.
func (s *CatalogService) AddCustom(code, label string, hours float64, color string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	label = strings.TrimSpace(label)

	s.logger.WithFields(logrus.Fields{
		"code":  code,
		"hours": hours,
	}).Info("Adding custom shift")

	if !customCodePattern.MatchString(code) {
		return fmt.Errorf("invalid code %q: use 2-10 letters or digits", code)
	}
	if label == "" {
		return fmt.Errorf("label must not be empty")
	}
	if hours < 0 || hours > 24 {
		return fmt.Errorf("hours must be between 0 and 24, got %g", hours)
	}

	err := s.repo.SaveCustom(&models.CustomShift{
		Code:  code,
		Label: label,
		Hours: hours,
		Color: color,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to save custom shift")
		return err
	}

	return s.triggerResync()
}

func (s *CatalogService) RemoveCustom(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.logger.WithField("code", code).Info("Removing custom shift")

	if err := s.repo.DeleteCustom(code); err != nil {
		return err
	}
	return s.triggerResync()
}

// Hide removes a built-in code from the resolved catalog. Built-ins
// can only be hidden, never deleted.
func (s *CatalogService) Hide(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	builtin := false
	for _, st := range models.Builtins() {
		if st.Code == code {
			builtin = true
			break
		}
	}
	if !builtin {
		return fmt.Errorf("%q is not a built-in shift code", code)
	}

	s.logger.WithField("code", code).Info("Hiding built-in shift")
	if err := s.repo.Hide(code); err != nil {
		return err
	}
	return s.triggerResync()
}

func (s *CatalogService) Unhide(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.logger.WithField("code", code).Info("Unhiding built-in shift")

	if err := s.repo.Unhide(code); err != nil {
		return err
	}
	return s.triggerResync()
}

// triggerResync pushes the catalog change out to every materialized
// grid. Leaving grids stale would silently miscount total hours.
func (s *CatalogService) triggerResync() error {
	if s.resync == nil {
		return nil
	}
	if err := s.resync(); err != nil {
		s.logger.WithError(err).Error("Failed to resync grids after catalog change")
		return fmt.Errorf("catalog saved, but resyncing grids failed: %w", err)
	}
	return nil
}

// FormatCatalog renders the resolved catalog for display.
func (s *CatalogService) FormatCatalog() string {
	resolved := s.Resolve()

	var b strings.Builder
	b.WriteString("📋 Shift types:\n\n")
	for _, st := range resolved {
		marker := ""
		if st.Custom {
			marker = " (custom)"
		}
		b.WriteString(fmt.Sprintf("%s — %s, %gh%s\n", st.Code, st.Label, st.Hours, marker))
	}
	return b.String()
}
