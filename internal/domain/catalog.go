package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed departments.yaml
var departmentsYAML []byte

// Department is one entry of the department -> municipality lookup table.
type Department struct {
	Name           string   `yaml:"name"`
	Default        string   `yaml:"default"`
	Municipalities []string `yaml:"municipalities"`
}

// Catalog is a read-only department -> municipality lookup table.
type Catalog struct {
	departments []Department
	byName      map[string]int
}

// LoadCatalog parses a catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Departments []Department `yaml:"departments"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load catalog: parse yaml: %w", err)
	}
	if len(doc.Departments) == 0 {
		return nil, errors.New("load catalog: no departments")
	}

	c := &Catalog{
		departments: doc.Departments,
		byName:      make(map[string]int, len(doc.Departments)),
	}
	for i, d := range doc.Departments {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("load catalog: department at index %d has no name", i+1)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("load catalog: duplicate department %q", name)
		}
		if d.Default != "" && !slices.Contains(d.Municipalities, d.Default) {
			return nil, fmt.Errorf("load catalog: default %q is not a municipality of %q", d.Default, name)
		}
		c.byName[name] = i
	}
	return c, nil
}

// DefaultCatalog returns the embedded El Salvador catalog.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(departmentsYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Departments returns department names in catalog order.
func (c *Catalog) Departments() []string {
	out := make([]string, 0, len(c.departments))
	for _, d := range c.departments {
		out = append(out, d.Name)
	}
	return out
}

// Municipalities returns the municipalities of a department, or nil when
// the department is unknown.
func (c *Catalog) Municipalities(department string) []string {
	i, ok := c.byName[department]
	if !ok {
		return nil
	}
	return slices.Clone(c.departments[i].Municipalities)
}

// DefaultMunicipality returns the preselected municipality of a department.
// Only San Salvador has one (Soyapango).
func (c *Catalog) DefaultMunicipality(department string) (string, bool) {
	i, ok := c.byName[department]
	if !ok || c.departments[i].Default == "" {
		return "", false
	}
	return c.departments[i].Default, true
}

// HasMunicipality reports whether municipality belongs to department.
func (c *Catalog) HasMunicipality(department, municipality string) bool {
	i, ok := c.byName[department]
	if !ok {
		return false
	}
	return slices.Contains(c.departments[i].Municipalities, municipality)
}
