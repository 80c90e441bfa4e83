package domain

// Shift is one of three fixed 24-hour-clock buckets used to group hourly data.
type Shift string

const (
	ShiftMadrugada Shift = "Madrugada" // 00h-06h
	ShiftComercial Shift = "Comercial" // 06h-18h
	ShiftNoturno   Shift = "Noturno"   // 18h-00h
)

// Color returns the display color associated with a shift.
func (s Shift) Color() string {
	switch s {
	case ShiftMadrugada:
		return "#EF4444"
	case ShiftComercial:
		return "#3B82F6"
	default:
		return "#F97316"
	}
}
