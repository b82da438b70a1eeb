// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"go-node-defense/internal/assets"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth      = 1200
	ScreenHeight     = 900
	GridScale        = 64.0 // пикселей на клетку сетки
	NodeRadius       = 18.0
	MaxDeltaTime     = 0.06
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	TextCharWidth    = 7
	TextOffsetY      = 4
	StrokeWidth      = 2.0
	ProjectileRadius = 3.0
	PickupRadius     = 4.0
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	IdleStateColor    = color.RGBA{70, 130, 180, 220}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	RootColor         = color.RGBA{50, 205, 50, 255}
	ActiveNodeColor   = color.RGBA{50, 100, 255, 255}
	InactiveNodeColor = color.RGBA{80, 80, 90, 255}
	AffordableColor   = color.RGBA{255, 215, 0, 255}
	EnemyColor        = color.RGBA{120, 230, 120, 255}
	WobblerColor      = color.RGBA{180, 50, 230, 255}
	ProjectileColor   = color.RGBA{255, 50, 50, 255}
	PickupColor       = color.RGBA{80, 220, 255, 255}
	LineColor         = color.RGBA{255, 255, 0, 128}
	CollectorColor    = color.RGBA{255, 255, 255, 60}
	HealthBarColor    = color.RGBA{50, 205, 50, 255}
)

// SimConfig — параметры симуляции, которые не являются характеристиками
// из каталога: геометрия мира, враги, волны, стартовая экономика.
type SimConfig struct {
	Seed       int64   `yaml:"seed"`
	Catalog    string  `yaml:"catalog"`
	TickMs     float64 `yaml:"tickMs"`
	MaxDeltaMs float64 `yaml:"maxDeltaMs"`

	World   WorldConfig   `yaml:"world"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Wave    WaveConfig    `yaml:"wave"`
	Economy EconomyConfig `yaml:"economy"`
}

type WorldConfig struct {
	// BoundsHalfSize — снаряды за пределами квадрата ±BoundsHalfSize удаляются.
	BoundsHalfSize      float64 `yaml:"boundsHalfSize"`
	// ProjectileHitbox — размер квадрата снаряда при проверке пересечения.
	ProjectileHitbox    float64 `yaml:"projectileHitbox"`
	PickupCaptureRadius float64 `yaml:"pickupCaptureRadius"`
	// MaxPickupPull — скорость притяжения (клеток в мс) вплотную к сборщику.
	MaxPickupPull       float64 `yaml:"maxPickupPull"`
	MovementEpsilon     float64 `yaml:"movementEpsilon"`
	WobbleFrequency     float64 `yaml:"wobbleFrequency"`
	WobbleAmplitude     float64 `yaml:"wobbleAmplitude"`
	PassivePickupRadius float64 `yaml:"passivePickupRadius"`
	SpawnMargin         float64 `yaml:"spawnMargin"`
}

type EnemyConfig struct {
	Size          float64 `yaml:"size"`
	AttackSpeed   float64 `yaml:"attackSpeed"`
	StraightSpeed float64 `yaml:"straightSpeed"`
	WobblerSpeed  float64 `yaml:"wobblerSpeed"`
	WobblerChance float64 `yaml:"wobblerChance"`
}

type WaveConfig struct {
	AttackDurationMs  float64 `yaml:"attackDurationMs"`
	GraceDurationMs   float64 `yaml:"graceDurationMs"`
	BaseMaxEnemies    int     `yaml:"baseMaxEnemies"`
	MaxEnemiesPerWave int     `yaml:"maxEnemiesPerWave"`
}

type EconomyConfig struct {
	StartPower float64 `yaml:"startPower"`
	StartAmmo  int     `yaml:"startAmmo"`
}

// Default возвращает встроенную конфигурацию.
func Default() *SimConfig {
	cfg, err := Parse(assets.DefaultSimConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded simulation config is invalid: %v", err))
	}
	return cfg
}

// Parse разбирает YAML поверх пустой конфигурации.
func Parse(data []byte) (*SimConfig, error) {
	var cfg SimConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation config: %w", err)
	}
	return &cfg, nil
}

// Load читает YAML-файл поверх значений по умолчанию и применяет
// переопределения из окружения. Пустой path означает только умолчания.
func Load(path string) (*SimConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read simulation config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal simulation config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv применяет переменные NODEDEF_SEED, NODEDEF_CATALOG, NODEDEF_TICK_MS.
func (c *SimConfig) ApplyEnv() error {
	if v := os.Getenv("NODEDEF_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("NODEDEF_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("NODEDEF_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("NODEDEF_TICK_MS"); v != "" {
		tick, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("NODEDEF_TICK_MS: %w", err)
		}
		c.TickMs = tick
	}
	return nil
}
