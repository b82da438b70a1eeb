// Package assets хранит встроенные данные: каталог улучшений и конфигурацию
// симуляции по умолчанию.
package assets

import _ "embed"

//go:embed catalog.yaml
var DefaultCatalog []byte

//go:embed simulation.yaml
var DefaultSimConfig []byte
