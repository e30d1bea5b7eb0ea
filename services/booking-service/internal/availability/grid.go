package availability

// DefaultStepMinutes is the slot granularity used when a business does not
// override it. Step values must divide 60 so slots align to clock boundaries.
const DefaultStepMinutes = 15

// Grid returns the ordered candidate start minutes in [openMinute, closeMinute),
// stepping by stepMinutes. The slot exactly at closing is excluded: nothing can
// start there and still occupy time before close. Closed or inverted windows
// yield an empty grid.
func Grid(openMinute, closeMinute, stepMinutes int) []int {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	if openMinute >= closeMinute {
		return nil
	}
	slots := make([]int, 0, (closeMinute-openMinute)/stepMinutes+1)
	for t := openMinute; t < closeMinute; t += stepMinutes {
		slots = append(slots, t)
	}
	return slots
}
