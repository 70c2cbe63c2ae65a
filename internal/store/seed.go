package store

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/clubhub/internal/model"
)

//go:embed seed.yaml
var defaultSeed []byte

// ErrEmptySeed is returned when a seed declares no records at all
var ErrEmptySeed = errors.New("seed contains no records")

// Seed is the on-disk shape of the demo data
type Seed struct {
	Notifications []model.Notification `yaml:"notifications"`
	Resources     []model.Resource     `yaml:"resources"`
	Categories    []CategorySeed       `yaml:"categories"`
}

// CategorySeed lists the clubs declared under one category
type CategorySeed struct {
	Name  string       `yaml:"name"`
	Clubs []model.Club `yaml:"clubs"`
}

// ParseSeed decodes a YAML seed document
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, errors.Wrap(err, "decode seed")
	}
	if err := seed.validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// DefaultSeed returns the seed compiled into the binary
func DefaultSeed() Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(errors.Wrap(err, "embedded seed"))
	}
	return seed
}

func (s Seed) validate() error {
	if len(s.Notifications) == 0 && len(s.Resources) == 0 && len(s.Categories) == 0 {
		return ErrEmptySeed
	}
	for i, category := range s.Categories {
		if category.Name == "" {
			return errors.Errorf("category %d has no name", i)
		}
		if model.Category(category.Name).IsAll() {
			return errors.Errorf("category %d uses reserved name %q", i, category.Name)
		}
	}
	return nil
}

// LoadFile builds a store from the YAML seed at path
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}
	return New(seed), nil
}
