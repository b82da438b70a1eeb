package defs

import "go-node-defense/internal/types"

// Op описывает изменение одного поля. Все операции эффекта читают
// аккумулятор в том виде, в каком он пришёл в эффект, и затем
// перезаписывают свои поля.
type Op struct {
	Stat   StatKey  `yaml:"stat" json:"stat"`
	Kind   OpKind   `yaml:"op" json:"op" validate:"required,oneof=add mul set add_stat mul_stat add_per_active"`
	Value  float64  `yaml:"value" json:"value"`
	Source *StatKey `yaml:"source,omitempty" json:"source,omitempty"`
}

// Selector выбирает узлы, на которые действует scoped-эффект.
// Отношения (children, parent, ...) считаются от узла-владельца эффекта.
type Selector struct {
	Kind SelectorKind   `yaml:"kind" json:"kind" validate:"required,oneof=self ids children descendants parent ancestors siblings leaves roots active all"`
	IDs  []types.NodeID `yaml:"ids,omitempty" json:"ids,omitempty"`
}

// Effect — помеченные данные вместо замыкания: global или scoped.
type Effect struct {
	Kind   EffectKind `yaml:"kind" json:"kind" validate:"required,oneof=global scoped"`
	Target *Selector  `yaml:"target,omitempty" json:"target,omitempty"`
	Ops    []Op       `yaml:"ops" json:"ops" validate:"required,min=1,dive"`
}

// IsScoped сообщает, что эффект пишет в наборы отдельных узлов.
func (e Effect) IsScoped() bool {
	return e.Kind == EffectScoped
}

// Global создаёт глобальный эффект. Удобно в тестах и встроенных каталогах.
func Global(ops ...Op) Effect {
	return Effect{Kind: EffectGlobal, Ops: ops}
}

// Scoped создаёт эффект для узлов, выбранных селектором.
func Scoped(target Selector, ops ...Op) Effect {
	return Effect{Kind: EffectScoped, Target: &target, Ops: ops}
}

func Add(stat StatKey, v float64) Op { return Op{Stat: stat, Kind: OpAdd, Value: v} }
func Mul(stat StatKey, v float64) Op { return Op{Stat: stat, Kind: OpMul, Value: v} }
func Set(stat StatKey, v float64) Op { return Op{Stat: stat, Kind: OpSet, Value: v} }

// AddStat прибавляет к stat значение source, умноженное на scale.
func AddStat(stat, source StatKey, scale float64) Op {
	return Op{Stat: stat, Kind: OpAddStat, Value: scale, Source: &source}
}

// MulStat умножает stat на значение source, умноженное на scale.
func MulStat(stat, source StatKey, scale float64) Op {
	return Op{Stat: stat, Kind: OpMulStat, Value: scale, Source: &source}
}

// AddPerActive прибавляет v за каждый активный узел.
func AddPerActive(stat StatKey, v float64) Op {
	return Op{Stat: stat, Kind: OpAddPerActive, Value: v}
}

// Select создаёт селектор указанного вида.
func Select(kind SelectorKind, ids ...types.NodeID) Selector {
	return Selector{Kind: kind, IDs: ids}
}
