// Package jsonfile provides repositories backed by the raw JSON dataset
// files, so the service can run directly against an exported dataset
// directory without any database.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	profileFile    = "employee_profile.json"
	orgUnitFile    = "final_rd_structure.json"
	attendanceFile = "checking_clean.json"
	loginFile      = "login_clean.json"
	trafficFile    = "tcplog_clean.json"
)

type Dataset struct {
	dir string
}

func NewDataset(dir string) (*Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path %q is not a directory", dir)
	}

	return &Dataset{dir: dir}, nil
}

func (d *Dataset) decode(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(d.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read dataset file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode dataset file %s: %w", name, err)
	}
	return nil
}
