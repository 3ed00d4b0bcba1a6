package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

//go:embed default_catalog.yaml
var defaultDocument []byte

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Document is the on-disk shape of a game-data file. JSON files decode as well, being valid YAML.
type Document struct {
	Recipes   []production.Recipe   `yaml:"recipes" validate:"dive"`
	Buildings []production.Building `yaml:"buildings" validate:"dive"`
}

// Load reads and validates a catalog file
func Load(path string) (*production.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	cat, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Default returns the built-in catalog
func Default() (*production.Catalog, error) {
	return Decode(defaultDocument)
}

// MustDefault returns the built-in catalog and panics if it is invalid
func MustDefault() *production.Catalog {
	cat, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return cat
}

// Decode parses and validates a catalog document
func Decode(data []byte) (*production.Catalog, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return production.NewCatalog(doc.Recipes, doc.Buildings), nil
}

// Validate checks record fields and that every recipe refers to known buildings
func Validate(doc *Document) error {
	if err := newValidator().Struct(doc); err != nil {
		return formatValidationError(err)
	}

	buildings := make(map[string]bool, len(doc.Buildings))
	for _, b := range doc.Buildings {
		if buildings[b.Name] {
			return fmt.Errorf("duplicate building %s", b.Name)
		}
		buildings[b.Name] = true
	}

	recipes := make(map[string]bool, len(doc.Recipes))
	for _, r := range doc.Recipes {
		if recipes[r.Name] {
			return fmt.Errorf("duplicate recipe %s", r.Name)
		}
		recipes[r.Name] = true
		for _, b := range r.Buildings {
			if !buildings[b] {
				return fmt.Errorf("recipe %s refers to unknown building %s", r.Name, b)
			}
		}
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})
	return v
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s failed %s (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid catalog:\n  %s", strings.Join(messages, "\n  "))
}
