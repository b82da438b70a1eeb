// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"go-node-defense/internal/assets"
	"go-node-defense/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadCatalog читает каталог из файла. YAML является надмножеством JSON,
// поэтому принимаются оба формата.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	catalog, err := ParseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog разбирает и проверяет каталог. Ошибка каталога — ошибка
// автора данных, поэтому симуляция получает только проверенные каталоги.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	logger.Component("defs").WithFields(logrus.Fields{
		"nodes": len(catalog.Nodes),
		"edges": len(catalog.Edges),
	}).Debug("Catalog loaded.")
	return &catalog, nil
}

// Validate проверяет структуру каталога, эффекты и форму дерева.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	if _, err := c.Initial(); err != nil {
		return fmt.Errorf("initial stats: %w", err)
	}
	if err := c.validateEffects(); err != nil {
		return err
	}
	if err := ValidateForest(c.NodeIDs(), c.Edges); err != nil {
		return err
	}
	return nil
}

// DefaultCatalog возвращает встроенный каталог.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(assets.DefaultCatalog)
}

// MustDefaultCatalog паникует, если встроенный каталог повреждён.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}
