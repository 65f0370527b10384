package seeder

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/legends-backend/internal/domain"
	"github.com/heartmarshall/legends-backend/internal/validate"
)

// Dataset is the reference data file: a nested geography plus the category list.
//
//	provinces:
//	  - id: 1
//	    name: San José
//	    cantons:
//	      - id: 101
//	        name: Escazú
//	        districts:
//	          - {id: 10101, name: San Rafael}
//	categories:
//	  - {id: 1, name: Aparecidos}
type Dataset struct {
	Provinces  []ProvinceRecord `yaml:"provinces"  json:"provinces"  validate:"dive"`
	Categories []NamedRecord    `yaml:"categories" json:"categories" validate:"dive"`
}

// ProvinceRecord is a province with its cantons.
type ProvinceRecord struct {
	ID      int64          `yaml:"id"      json:"id"      validate:"gt=0"`
	Name    string         `yaml:"name"    json:"name"    validate:"required,min=5,max=20"`
	Cantons []CantonRecord `yaml:"cantons" json:"cantons" validate:"dive"`
}

// CantonRecord is a canton with its districts.
type CantonRecord struct {
	ID        int64         `yaml:"id"        json:"id"        validate:"gt=0"`
	Name      string        `yaml:"name"      json:"name"      validate:"required,min=5,max=40"`
	Districts []NamedRecord `yaml:"districts" json:"districts" validate:"dive"`
}

// NamedRecord is a leaf row: a district or a category.
type NamedRecord struct {
	ID   int64  `yaml:"id"   json:"id"   validate:"gt=0"`
	Name string `yaml:"name" json:"name" validate:"required,min=5,max=40"`
}

// ReadDataset parses and validates a dataset file.
func ReadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseDataset(f)
}

// ParseDataset decodes a dataset, rejecting unknown keys, invalid names and
// duplicate ids.
func ParseDataset(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if err := ds.checkUniqueIDs(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return &ds, nil
}

func (ds *Dataset) checkUniqueIDs() error {
	seen := map[string]map[int64]bool{
		"province": {}, "canton": {}, "district": {}, "category": {},
	}
	var verr domain.ValidationError
	mark := func(kind string, id int64) {
		if seen[kind][id] {
			verr.Add(kind, fmt.Sprintf("duplicate id %d", id))
		}
		seen[kind][id] = true
	}

	for _, p := range ds.Provinces {
		mark("province", p.ID)
		for _, c := range p.Cantons {
			mark("canton", c.ID)
			for _, d := range c.Districts {
				mark("district", d.ID)
			}
		}
	}
	for _, c := range ds.Categories {
		mark("category", c.ID)
	}

	return verr.OrNil()
}

// Flatten turns the nested geography into rows with parent ids filled in.
func (ds *Dataset) Flatten() ([]domain.Province, []domain.Canton, []domain.District, []domain.Category) {
	var (
		provinces []domain.Province
		cantons   []domain.Canton
		districts []domain.District
	)
	for _, p := range ds.Provinces {
		provinces = append(provinces, domain.Province{ID: p.ID, Name: p.Name})
		for _, c := range p.Cantons {
			cantons = append(cantons, domain.Canton{ID: c.ID, Name: c.Name, ProvinceID: p.ID})
			for _, d := range c.Districts {
				districts = append(districts, domain.District{ID: d.ID, Name: d.Name, CantonID: c.ID})
			}
		}
	}

	categories := make([]domain.Category, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		categories = append(categories, domain.Category{ID: c.ID, Name: c.Name})
	}
	return provinces, cantons, districts, categories
}
