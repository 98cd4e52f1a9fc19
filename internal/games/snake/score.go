package snake

// PointsPerApple is the regular score increment for one growth event.
const PointsPerApple = 10

// NextScore returns the score after one growth event.
// The sequence deliberately runs ..., 50, 60, 69, 80, 90, ...
func NextScore(score int) int {
	switch score {
	case 60:
		return 69
	case 69:
		return 80
	default:
		return score + PointsPerApple
	}
}
