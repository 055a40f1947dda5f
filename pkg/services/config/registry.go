package config

import (
	"context"
	"fmt"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Profile is one named forecast setup from the CLI config file. Every
// field except DBPath may be overridden by a command line flag.
type Profile struct {
	Name                 string
	DBPath               string
	Company              string
	PresentationCurrency string
	Periodicity          domain.Periodicity
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
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &Profile{
		Name:                 name,
		DBPath:               section.Key("db_path").String(),
		Company:              section.Key("company").String(),
		PresentationCurrency: section.Key("presentation_currency").String(),
		Periodicity:          domain.Periodicity(section.Key("periodicity").String()),
	}
	if profile.DBPath == "" {
		return nil, fmt.Errorf("profile %s has no db_path", name)
	}
	if profile.PresentationCurrency == "" {
		profile.PresentationCurrency = "EUR"
	}
	if profile.Periodicity == "" {
		profile.Periodicity = domain.PeriodicityMonthly
	}
	return profile, nil
}
