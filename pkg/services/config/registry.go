package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Profile describes one analyzable resource: where its table lives and how
// its anomaly detection is tuned.
type Profile struct {
	Resource   domain.ResourceType
	CSVPath    string
	Percentile float64
	NightHours []int
}

// Registry reads resource profiles from an ini file. Each section names a
// resource type and carries csv_path (required), percentile and night_hours.
type Registry interface {
	GetProfiles() ([]Profile, error)
	GetProfile(resource string) (*Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles() ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}
		profile, err := parseProfile(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(resource string) (*Profile, error) {
	if !r.cfg.HasSection(resource) {
		return nil, fmt.Errorf("profile %q not found", resource)
	}
	return parseProfile(r.cfg.Section(resource))
}

func parseProfile(section *ini.Section) (*Profile, error) {
	profile := &Profile{
		Resource:   domain.ResourceType(section.Name()),
		CSVPath:    section.Key("csv_path").String(),
		Percentile: section.Key("percentile").MustFloat64(75),
	}
	if profile.CSVPath == "" {
		return nil, fmt.Errorf("profile %q: csv_path is required", section.Name())
	}

	hours, err := parseNightHours(section.Key("night_hours").String())
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", section.Name(), err)
	}
	profile.NightHours = hours

	return profile, nil
}

func parseNightHours(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	hours := make([]int, 0, len(parts))
	for _, part := range parts {
		hour, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid night hour %q", part)
		}
		hours = append(hours, hour)
	}
	return hours, nil
}
