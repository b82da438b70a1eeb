// component/movement.go
package component

import "math"

// Position — компонент позиции в клетках сетки
type Position struct {
	X, Y float64
}

// Velocity — скорость в клетках за миллисекунду
type Velocity struct {
	X, Y float64
}

func (p Position) Add(o Position) Position { return Position{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub возвращает вектор от o к p.
func (p Position) Sub(o Position) Position { return Position{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Position) Scale(k float64) Position { return Position{X: p.X * k, Y: p.Y * k} }

func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Position) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized возвращает единичный вектор (для нулевого нулевой).
func (p Position) Normalized() Position {
	l := p.Length()
	if l == 0 {
		return Position{}
	}
	return Position{X: p.X / l, Y: p.Y / l}
}

// Area — прямоугольная область (левый верхний угол и размеры)
type Area struct {
	X, Y          float64
	Width, Height float64
}

// Contains проверяет, что точка лежит внутри области или на её границе.
func (a Area) Contains(p Position) bool {
	return p.X >= a.X && p.X <= a.X+a.Width && p.Y >= a.Y && p.Y <= a.Y+a.Height
}
