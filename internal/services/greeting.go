package services

// Greeting maps an hour of day (0-23) to a salutation. Bounds are lower
// inclusive, upper exclusive: [6,12) morning, [12,18) afternoon,
// [18,24) evening, [0,6) night.
func Greeting(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 18:
		return "Good afternoon"
	case hour >= 18 && hour < 24:
		return "Good evening"
	default:
		return "Good night"
	}
}
