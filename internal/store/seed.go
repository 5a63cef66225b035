package store

import (
	_ "embed"
	"fmt"

	"admin-dashboard-backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedData []byte

type seedFile struct {
	Accounts []models.Account `yaml:"accounts"`
	Users    []models.User    `yaml:"users"`
}

// SampleData returns the static sample accounts and users the dashboard is
// seeded with
func SampleData() ([]models.Account, []models.User, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedData, &f); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return f.Accounts, f.Users, nil
}

// LoadSampleData seeds the store with the embedded sample dataset
func (s *DirectoryStore) LoadSampleData() error {
	accounts, users, err := SampleData()
	if err != nil {
		return err
	}
	s.Load(accounts, users)
	return nil
}
