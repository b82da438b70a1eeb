// internal/defs/types.go
package defs

import "errors"

// EffectKind определяет, куда пишет эффект.
type EffectKind string

const (
	EffectGlobal EffectKind = "global" // общий набор характеристик
	EffectScoped EffectKind = "scoped" // наборы узлов, выбранных селектором
)

// OpKind — операция над одним полем набора.
type OpKind string

const (
	OpAdd          OpKind = "add"            // v + value
	OpMul          OpKind = "mul"            // v * value
	OpSet          OpKind = "set"            // value
	OpAddStat      OpKind = "add_stat"       // v + value * source
	OpMulStat      OpKind = "mul_stat"       // v * value * source
	OpAddPerActive OpKind = "add_per_active" // v + value * число активных узлов
)

// SelectorKind — предикат над (целевой узел, все узлы, все связи).
type SelectorKind string

const (
	SelectSelf        SelectorKind = "self"
	SelectIDs         SelectorKind = "ids"
	SelectChildren    SelectorKind = "children"
	SelectDescendants SelectorKind = "descendants"
	SelectParent      SelectorKind = "parent"
	SelectAncestors   SelectorKind = "ancestors"
	SelectSiblings    SelectorKind = "siblings"
	SelectLeaves      SelectorKind = "leaves"
	SelectRoots       SelectorKind = "roots"
	SelectActive      SelectorKind = "active"
	SelectAll         SelectorKind = "all"
)

var (
	ErrUnknownStat      = errors.New("unknown stat")
	ErrUnknownNode      = errors.New("unknown node")
	ErrDuplicateNode    = errors.New("duplicate node id")
	ErrMultipleParents  = errors.New("node has more than one parent")
	ErrCyclicCatalog    = errors.New("edge set contains a cycle")
	ErrInvalidEffect    = errors.New("invalid effect")
	ErrMissingRootNodes = errors.New("catalog has no root node")
)
