package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StatKey — индекс поля в наборе характеристик.
type StatKey int

const (
	// Глобальная экономика
	StatMaxPower StatKey = iota
	StatPowerMultiplier
	StatPowerPerEnemy
	StatAdditionalPowerPerEnemyChance
	StatPickupAttractionRadius
	StatBulletMaxAmmo
	StatBulletAmmoPrice
	StatDamageMultiplier

	// Область сборщика (курсор)
	StatCollectorSize
	StatCollectorHealAmount
	StatCollectorAttackSpeed
	StatCollectorAttackDamage

	// Характеристики отдельного узла
	StatCostMultiplier
	StatHealth
	StatArmor
	StatDamageIntakeCooldown
	StatHealthRegenerationAmount
	StatHealthRegenerationSpeed
	StatBulletAttackDamage
	StatBulletAttackRange
	StatBulletAttackSpeed
	StatBulletProjectileSpeed
	StatPowerGenerationSpeed
	StatPowerGenerationAmount
	StatPowerGenerationMaxAmount

	NumStats
)

var statNames = [NumStats]string{
	StatMaxPower:                      "maxPower",
	StatPowerMultiplier:               "powerMultiplier",
	StatPowerPerEnemy:                 "powerPerEnemy",
	StatAdditionalPowerPerEnemyChance: "additionalPowerPerEnemyChance",
	StatPickupAttractionRadius:        "pickupAttractionRadius",
	StatBulletMaxAmmo:                 "bulletMaxAmmo",
	StatBulletAmmoPrice:               "bulletAmmoPrice",
	StatDamageMultiplier:              "damageMultiplier",
	StatCollectorSize:                 "collectorSize",
	StatCollectorHealAmount:           "collectorHealAmount",
	StatCollectorAttackSpeed:          "collectorAttackSpeed",
	StatCollectorAttackDamage:         "collectorAttackDamage",
	StatCostMultiplier:                "costMultiplier",
	StatHealth:                        "health",
	StatArmor:                         "armor",
	StatDamageIntakeCooldown:          "damageIntakeCooldown",
	StatHealthRegenerationAmount:      "healthRegenerationAmount",
	StatHealthRegenerationSpeed:       "healthRegenerationSpeed",
	StatBulletAttackDamage:            "bulletAttackDamage",
	StatBulletAttackRange:             "bulletAttackRange",
	StatBulletAttackSpeed:             "bulletAttackSpeed",
	StatBulletProjectileSpeed:         "bulletProjectileSpeed",
	StatPowerGenerationSpeed:          "powerGenerationSpeed",
	StatPowerGenerationAmount:         "powerGenerationAmount",
	StatPowerGenerationMaxAmount:      "powerGenerationMaxAmount",
}

func (k StatKey) String() string {
	if k < 0 || k >= NumStats {
		return fmt.Sprintf("StatKey(%d)", int(k))
	}
	return statNames[k]
}

// ParseStatKey ищет характеристику по имени из каталога.
func ParseStatKey(name string) (StatKey, error) {
	for i, n := range statNames {
		if n == name {
			return StatKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

func (k StatKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *StatKey) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStatKey(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// Bundle — фиксированный набор характеристик. Комбинируется только явными
// эффектами, общего правила сложения нет.
type Bundle [NumStats]float64

func (b Bundle) Get(k StatKey) float64 {
	return b[k]
}

// With возвращает копию набора с изменённым полем.
func (b Bundle) With(k StatKey, v float64) Bundle {
	b[k] = v
	return b
}

// Sub вычитает other из b поле за полем.
func (b Bundle) Sub(other Bundle) Bundle {
	var out Bundle
	for i := range b {
		out[i] = b[i] - other[i]
	}
	return out
}

// IsZero сообщает, что все поля равны нулю.
func (b Bundle) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// NonZero возвращает только ненулевые поля, удобно для всплывающих подсказок.
func (b Bundle) NonZero() map[StatKey]float64 {
	out := make(map[StatKey]float64)
	for i, v := range b {
		if v != 0 {
			out[StatKey(i)] = v
		}
	}
	return out
}

// BundleFromMap собирает набор из базовых значений и переопределений по имени.
func BundleFromMap(base Bundle, values map[string]float64) (Bundle, error) {
	out := base
	for name, v := range values {
		k, err := ParseStatKey(name)
		if err != nil {
			return Bundle{}, err
		}
		out[k] = v
	}
	return out, nil
}

// DefaultStats — начальные характеристики, если каталог их не переопределяет.
// Время в миллисекундах, расстояния в клетках сетки.
func DefaultStats() Bundle {
	var b Bundle
	b[StatMaxPower] = 10
	b[StatPowerMultiplier] = 1
	b[StatPowerPerEnemy] = 1
	b[StatAdditionalPowerPerEnemyChance] = 0.1
	b[StatPickupAttractionRadius] = 2
	b[StatBulletMaxAmmo] = 10
	b[StatBulletAmmoPrice] = 0.5
	b[StatDamageMultiplier] = 1
	b[StatCollectorSize] = 1
	b[StatCollectorHealAmount] = 0
	b[StatCollectorAttackSpeed] = 3000
	b[StatCollectorAttackDamage] = 1
	b[StatCostMultiplier] = 1
	b[StatHealth] = 1
	b[StatArmor] = 0
	b[StatDamageIntakeCooldown] = 1000
	b[StatHealthRegenerationAmount] = 0
	b[StatHealthRegenerationSpeed] = 4000
	b[StatBulletAttackDamage] = 0
	b[StatBulletAttackRange] = 1.5
	b[StatBulletAttackSpeed] = 2000
	b[StatBulletProjectileSpeed] = 0.01
	b[StatPowerGenerationSpeed] = 5000
	b[StatPowerGenerationAmount] = 0
	b[StatPowerGenerationMaxAmount] = 0
	return b
}
