package habit

// AllowedDurations are the commitment lengths a habit can be created with.
var AllowedDurations = []int{7, 10, 15, 30}

func IsValidDuration(days int) bool {
	for _, d := range AllowedDurations {
		if d == days {
			return true
		}
	}
	return false
}
