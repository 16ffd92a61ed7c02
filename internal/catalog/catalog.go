package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var servicesYAML []byte

// Catalog is the read-only slug -> ServiceDetail table. It is built once
// from the embedded services document and never mutated afterwards.
type Catalog struct {
	services map[string]ServiceDetail
	order    []string
}

// Load parses the embedded services document and validates it.
func Load() (*Catalog, error) {
	var doc struct {
		Services []ServiceDetail `yaml:"services"`
	}
	if err := yaml.Unmarshal(servicesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing services document: %w", err)
	}
	if len(doc.Services) == 0 {
		return nil, fmt.Errorf("services document contains no services")
	}

	c := &Catalog{services: make(map[string]ServiceDetail, len(doc.Services))}
	for _, svc := range doc.Services {
		if svc.Slug == "" {
			return nil, fmt.Errorf("service %q has no slug", svc.Name)
		}
		if _, exists := c.services[svc.Slug]; exists {
			return nil, fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		for i, step := range svc.ProcessSteps {
			if step.Number != i+1 {
				return nil, fmt.Errorf("service %q: process step %d is numbered %d", svc.Slug, i+1, step.Number)
			}
		}
		c.services[svc.Slug] = svc
		c.order = append(c.order, svc.Slug)
	}
	return c, nil
}

// Must is Load for initialization paths where a broken embedded
// document is a programming error.
func Must() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the service for the given slug. A miss is a normal
// outcome and signals the caller to fall back to the home page.
func (c *Catalog) Lookup(slug string) (ServiceDetail, bool) {
	svc, ok := c.services[slug]
	return svc, ok
}

// Slugs returns all service slugs in document order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of services in the catalog.
func (c *Catalog) Len() int { return len(c.services) }
