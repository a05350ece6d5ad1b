package search

// Constraint is a named pass/fail gate on a candidate.
type Constraint struct {
	Name  string
	Check func(x float64) bool
}

// Gates builds a shrinking Rule: Hold when every constraint passes, Lower
// otherwise. It is the rule shape of a "shrink until it fits" correction.
func Gates(cons ...Constraint) Rule {
	return func(x float64) Move {
		for _, c := range cons {
			if !c.Check(x) {
				return Lower
			}
		}

		return Hold
	}
}

// Failing returns the names of the constraints x violates, in declaration
// order. An empty result means x passes every gate.
func Failing(x float64, cons ...Constraint) []string {
	var out []string
	for _, c := range cons {
		if !c.Check(x) {
			out = append(out, c.Name)
		}
	}

	return out
}

// All reports whether x passes every constraint.
func All(x float64, cons ...Constraint) bool {
	for _, c := range cons {
		if !c.Check(x) {
			return false
		}
	}

	return true
}
