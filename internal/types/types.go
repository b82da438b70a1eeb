package types

// EntityID — идентификатор динамической сущности (враг, снаряд, сгусток энергии).
type EntityID uint64

// NodeID — идентификатор узла дерева улучшений, задаётся каталогом.
type NodeID string
