package metric

const percentScale = 100

// ToPercent scales a stored fraction to a percentage. Absent stays absent.
func ToPercent(f Float) Float {
	if !f.Valid {
		return f
	}
	return Of(f.Value * percentScale)
}

// Sub returns a - b, defined only when both operands are.
func Sub(a, b Float) Float {
	if !a.Valid || !b.Valid {
		return Float{}
	}
	return Of(a.Value - b.Value)
}

// First returns the first defined value of the chain, or absent.
func First(chain ...Float) Float {
	for _, f := range chain {
		if f.Valid {
			return f
		}
	}
	return Float{}
}

// Compare orders a before b the way a descending ranking needs it: absent
// values are lower than any defined value and equal to each other.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Float) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	default:
		return 0
	}
}

// Neg flips the sign, which turns a descending ranking into an ascending one
// while keeping absent values last.
func Neg(f Float) Float {
	if !f.Valid {
		return f
	}
	return Of(-f.Value)
}
