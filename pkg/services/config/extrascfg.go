// Package config reads source profiles from an ini file (~/.extrascfg by
// convention), one section per named profile.
package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile holds everything needed to reach one spreadsheet source.
type Profile struct {
	Name            string
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
	SamplePath      string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := cr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	return &Profile{
		Name:            name,
		SpreadsheetID:   section.Key("spreadsheet_id").String(),
		Worksheet:       section.Key("worksheet").String(),
		CredentialsFile: section.Key("credentials_file").String(),
		SamplePath:      section.Key("sample_path").String(),
	}, nil
}
