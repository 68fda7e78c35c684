package config

import (
	"context"
	"fmt"

	"github.com/de-tools/budget-bee/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ProfileRegistry resolves named user profiles from an ini file. Each
// section is one profile; keys: persona, currency.
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.Profile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (*domain.Profile, error) {
	section, err := pr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	persona := domain.Persona(section.Key("persona").MustString(string(domain.PersonaGeneral)))
	currency := section.Key("currency").MustString("USD")

	return &domain.Profile{
		Name:     name,
		Persona:  persona,
		Currency: currency,
	}, nil
}
