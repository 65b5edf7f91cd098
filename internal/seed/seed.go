// Package seed imports an optional rota.yaml declaring initial staff,
// custom shift types and leave allocations. Entries already present
// are left alone, so the file can stay in place across restarts.
package seed

import (
	"fmt"
	"os"

	"rota-manager/internal/models"
	"rota-manager/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type File struct {
	Staff []struct {
		Name string `yaml:"name"`
		Role string `yaml:"role"`
	} `yaml:"staff"`
	Shifts []struct {
		Code  string  `yaml:"code"`
		Label string  `yaml:"label"`
		Hours float64 `yaml:"hours"`
		Color string  `yaml:"color"`
	} `yaml:"shifts"`
	Allowances []struct {
		Staff string `yaml:"staff"`
		Year  int    `yaml:"year"`
		Days  int    `yaml:"days"`
	} `yaml:"allowances"`
}

// Import loads the seed file if it exists. A missing file is not an
// error; a malformed one is.
func Import(path string, staff repository.StaffRepository, shifts repository.ShiftTypeRepository, allocs repository.AllocationRepository) error {
	logger := logrus.New()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.WithField("path", path).Debug("No seed file, skipping import")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	imported := 0

	for _, s := range file.Staff {
		exists, err := staff.Exists(s.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := staff.Create(&models.StaffMember{Name: s.Name, Role: s.Role}); err != nil {
			return err
		}
		imported++
	}

	existing, err := shifts.CustomShifts()
	if err != nil {
		return err
	}
	known := map[string]bool{}
	for _, c := range existing {
		known[c.Code] = true
	}
	for _, sh := range file.Shifts {
		if known[sh.Code] {
			continue
		}
		err := shifts.SaveCustom(&models.CustomShift{
			Code:  sh.Code,
			Label: sh.Label,
			Hours: sh.Hours,
			Color: sh.Color,
		})
		if err != nil {
			return err
		}
		imported++
	}

	for _, a := range file.Allowances {
		if a.Year != 0 {
			current, err := allocs.GetForYear(a.Staff, a.Year)
			if err != nil {
				return err
			}
			if current != nil {
				continue
			}
			if err := allocs.SetForYear(a.Staff, a.Year, a.Days); err != nil {
				return err
			}
		} else {
			current, err := allocs.GetDefault(a.Staff)
			if err != nil {
				return err
			}
			if current != nil {
				continue
			}
			if err := allocs.SetDefault(a.Staff, a.Days); err != nil {
				return err
			}
		}
		imported++
	}

	logger.WithFields(logrus.Fields{
		"path":     path,
		"imported": imported,
	}).Info("Seed import finished")
	return nil
}
