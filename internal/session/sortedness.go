package session

// Sortedness is the fraction of adjacent pairs already in non-decreasing
// order; 1 for arrays shorter than two.
func Sortedness(values []int) float64 {
	if len(values) < 2 {
		return 1
	}
	ordered := 0
	for i := 1; i < len(values); i++ {
		if values[i-1] <= values[i] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(values)-1)
}
