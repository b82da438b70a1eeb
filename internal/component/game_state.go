package component

// Economy — накопленное состояние, не пересчитывается каждый тик.
type Economy struct {
	Power float64
	Ammo  int
}

// WaveState — производное состояние волны
type WaveState string

const (
	WaveOngoing WaveState = "ongoing"
	WaveIdle    WaveState = "idle"
)

// Wave — счётчик и начало текущей волны
type Wave struct {
	Number    int
	StartTime float64
}
