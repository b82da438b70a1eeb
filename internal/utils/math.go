// internal/utils/math.go
package utils

import (
	"math"

	"go-node-defense/internal/component"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

// Clamp ограничивает v отрезком [min, max]
func Clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

// LerpPosition сдвигает start к end на долю t. Ближе epsilon или при t >= 1
// позиция совпадает с end точно, без колебаний вокруг цели.
func LerpPosition(start, end component.Position, t, epsilon float64) component.Position {
	if start.DistanceTo(end) < epsilon || t >= 1 {
		return end
	}
	return component.Position{
		X: Lerp(start.X, end.X, t),
		Y: Lerp(start.Y, end.Y, t),
	}
}

// SpeedVector — вектор длины speed от start к target.
func SpeedVector(start, target component.Position, speed float64) component.Velocity {
	dir := target.Sub(start).Normalized()
	return component.Velocity{X: dir.X * speed, Y: dir.Y * speed}
}

// DistributePointOnCircle — index-я из total точек, равномерно разложенных
// по окружности радиуса radius.
func DistributePointOnCircle(total, index int, radius float64) component.Position {
	if total <= 0 {
		return component.Position{}
	}
	angle := 2 * math.Pi * float64(index) / float64(total)
	return component.Position{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
}

// VectorAngleDegrees — угол вектора в градусах [0, 360).
func VectorAngleDegrees(v component.Position) float64 {
	return math.Mod(math.Atan2(v.Y, v.X)*180/math.Pi+360, 360)
}

// RandomPositionOnEdge выбирает случайную точку на границе области.
func RandomPositionOnEdge(area component.Area, rng *PRNGService) component.Position {
	left, right := area.X, area.X+area.Width
	top, bottom := area.Y, area.Y+area.Height
	switch rng.Intn(4) {
	case 0:
		return component.Position{X: left, Y: rng.FloatRange(top, bottom)}
	case 1:
		return component.Position{X: right, Y: rng.FloatRange(top, bottom)}
	case 2:
		return component.Position{X: rng.FloatRange(left, right), Y: top}
	default:
		return component.Position{X: rng.FloatRange(left, right), Y: bottom}
	}
}
