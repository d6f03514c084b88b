package screen

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate applies a field list's rules to submitted values and returns one
// message per failing field. It runs for creates and updates alike; an
// update is never sent to the backend unvalidated.
func Validate(fields []Field, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range fields {
		v := strings.TrimSpace(values[f.Name])
		switch {
		case f.Required && v == "":
			errs[f.Name] = f.Label + " is required"
		case v == "":
			// optional and absent
		case f.Email && !strings.Contains(v, "@"):
			errs[f.Name] = "Valid " + strings.ToLower(f.Label) + " is required"
		case f.MinLen > 0 && len(v) < f.MinLen:
			errs[f.Name] = fmt.Sprintf("%s must be at least %d characters long", f.Label, f.MinLen)
		case f.Kind == KindNumber:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				errs[f.Name] = f.Label + " must be a number"
			}
		}
	}
	return errs
}
