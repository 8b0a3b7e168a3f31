package orchestrator

import (
	"fmt"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// ValidateClassDistribution checks the fleet-wide path_A_label proportions
// against fleetconfig.PathALabelBounds, the validator pass spec.md §7
// requires at the end of a full generation run. It returns a KindValidation
// error (exit code 3) the first time a class falls outside its bound.
func ValidateClassDistribution(counts map[string]int) error {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return apperrors.Validation("ValidateClassDistribution", "no rows were generated, cannot validate class distribution")
	}

	for _, class := range []string{"NORMAL", "IMMINENT", "CRITICAL"} {
		bound, ok := fleetconfig.PathALabelBounds[class]
		if !ok {
			continue
		}
		frac := float64(counts[class]) / float64(total)
		if frac < bound.Lo || frac > bound.Hi {
			return apperrors.Validation("ValidateClassDistribution",
				fmt.Sprintf("%s proportion %.4f outside required bound [%.4f, %.4f]", class, frac, bound.Lo, bound.Hi))
		}
	}
	return nil
}
