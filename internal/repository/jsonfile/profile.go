package jsonfile

import (
	"context"

	"github.com/seclens/insight-backend-go/internal/domain/profile"
)

type profileRepository struct {
	dataset *Dataset
}

func NewProfileRepository(dataset *Dataset) profile.ProfileRepository {
	return &profileRepository{dataset: dataset}
}

type profileRow struct {
	EmployeeID int    `json:"employee_id"`
	Department string `json:"department"`
	IPAddress  string `json:"ip_address"`
}

type orgUnitRow struct {
	MinisterID string   `json:"minister_id"`
	Members    []string `json:"members"`
}

// ListProfiles implements profile.ProfileRepository.
func (r *profileRepository) ListProfiles(_ context.Context) ([]profile.EmployeeProfile, error) {
	var rows []profileRow
	if err := r.dataset.decode(profileFile, &rows); err != nil {
		return nil, err
	}

	profiles := make([]profile.EmployeeProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, profile.EmployeeProfile{
			EmployeeID: row.EmployeeID,
			Department: profile.Department(row.Department),
			IPAddress:  row.IPAddress,
		})
	}

	return profiles, nil
}

// ListOrgUnits implements profile.ProfileRepository.
func (r *profileRepository) ListOrgUnits(_ context.Context) ([]profile.OrgUnit, error) {
	var rows []orgUnitRow
	if err := r.dataset.decode(orgUnitFile, &rows); err != nil {
		return nil, err
	}

	units := make([]profile.OrgUnit, 0, len(rows))
	for _, row := range rows {
		units = append(units, profile.OrgUnit{
			MinisterID: row.MinisterID,
			Members:    row.Members,
		})
	}

	return units, nil
}
