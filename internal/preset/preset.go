// Package preset provides named query configurations: a built-in table of
// common lead searches plus optional user presets loaded from YAML, merged
// by name with the user's winning.
package preset

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Preset is a named partial QueryConfig. Zero fields fall back to the
// pipeline defaults; the query text from the command line is appended to
// Query when both are present.
type Preset struct {
	Name                    string  `yaml:"name"`
	Description             string  `yaml:"description,omitempty"`
	Query                   string  `yaml:"query"`
	RadiusMeters            int     `yaml:"radius_meters,omitempty"`
	MaxResults              int     `yaml:"max_results,omitempty"`
	BatchSize               int     `yaml:"batch_size,omitempty"`
	MinRating               float64 `yaml:"min_rating,omitempty"`
	MaxRating               float64 `yaml:"max_rating,omitempty"`
	RequirePhone            bool    `yaml:"require_phone,omitempty"`
	RequireWebsite          bool    `yaml:"require_website,omitempty"`
	IncludeClosedBusinesses bool    `yaml:"include_closed,omitempty"`
}

// builtins are the stock presets shipped with the binary.
var builtins = []Preset{
	{
		Name:         "restaurants",
		Description:  "Operating restaurants with a published phone number",
		Query:        "restaurants",
		MinRating:    3.5,
		RequirePhone: true,
	},
	{
		Name:           "contractors",
		Description:    "General contractors reachable by phone and web",
		Query:          "general contractor",
		RequirePhone:   true,
		RequireWebsite: true,
	},
	{
		Name:         "medical",
		Description:  "Medical and dental practices",
		Query:        "medical clinic",
		MinRating:    4.0,
		RequirePhone: true,
	},
	{
		Name:           "retail",
		Description:    "Retail storefronts with an online presence",
		Query:          "retail store",
		RequireWebsite: true,
	},
	{
		Name:        "auto",
		Description: "Car dealers and repair shops",
		Query:       "car dealership",
	},
}

// Registry holds the merged preset table.
type Registry struct {
	presets map[string]Preset
}

// Load builds a Registry from the built-ins plus the optional user file at
// path. A missing file is not an error; a malformed one is.
func Load(path string) (*Registry, error) {
	r := &Registry{presets: make(map[string]Preset, len(builtins))}
	for _, p := range builtins {
		r.presets[p.Name] = p
	}

	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, eris.Wrapf(err, "preset: read %s", path)
	}

	var user []Preset
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, eris.Wrapf(err, "preset: parse %s", path)
	}

	for _, p := range user {
		if p.Name == "" {
			return nil, eris.Errorf("preset: unnamed preset in %s", path)
		}
		r.presets[p.Name] = p
	}

	return r, nil
}

// Get returns the preset with the given name.
func (r *Registry) Get(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Names returns all preset names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for n := range r.presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply folds the preset into a QueryConfig, keeping any value the config
// already sets. The preset query is used only when the config has none.
func (p Preset) Apply(cfg model.QueryConfig) model.QueryConfig {
	if cfg.Query == "" {
		cfg.Query = p.Query
	}
	if cfg.RadiusMeters == 0 {
		cfg.RadiusMeters = p.RadiusMeters
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = p.MaxResults
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = p.BatchSize
	}
	if cfg.MinRating == 0 {
		cfg.MinRating = p.MinRating
	}
	if cfg.MaxRating == 0 {
		cfg.MaxRating = p.MaxRating
	}
	cfg.RequirePhone = cfg.RequirePhone || p.RequirePhone
	cfg.RequireWebsite = cfg.RequireWebsite || p.RequireWebsite
	cfg.IncludeClosedBusinesses = cfg.IncludeClosedBusinesses || p.IncludeClosedBusinesses
	return cfg
}
