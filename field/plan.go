package field

import "errors"

// Plan partitions the filtered fields of one query execution by comparison
// strategy. The two lists are disjoint: a field lands in exactly one,
// according to its UseRenderedValue flag.
//
// Order follows definition order and is deterministic, so repeated passes
// over the same configuration evaluate fields identically.
type Plan struct {
	// Raw holds the fields compared on fetched values, before output
	// formatting. Entries are result-column aliases where available.
	Raw []ID

	// Rendered holds the UI field ids compared on formatted output.
	Rendered []ID
}

// IsEmpty reports whether the plan filters nothing. An empty plan is valid
// and means "do nothing".
func (p Plan) IsEmpty() bool {
	return len(p.Raw) == 0 && len(p.Rendered) == 0
}

// BuildPlan resolves the setting for every definition and assembles the
// Plan for one query execution.
//
// Resolution failures degrade to the built-in default (disabled) and are
// accumulated into the returned error via errors.Join; the Plan is valid
// either way. Fields whose setting leaves filtering disabled are ignored.
func BuildPlan(defs []Definition, src SettingsSource, displayID string) (Plan, error) {
	var plan Plan
	var errs []error

	rawSeen := make(map[ID]struct{}, len(defs))
	renderedSeen := make(map[ID]struct{}, len(defs))

	for _, def := range defs {
		setting, err := Resolve(src, def.ID, displayID)
		if err != nil {
			errs = append(errs, err)
		}
		if !setting.FilterEnabled {
			continue
		}

		if setting.UseRenderedValue {
			if _, ok := renderedSeen[def.ID]; ok {
				continue
			}
			renderedSeen[def.ID] = struct{}{}
			plan.Rendered = append(plan.Rendered, def.ID)
			continue
		}

		id := def.rawID()
		if _, ok := rawSeen[id]; ok {
			continue
		}
		rawSeen[id] = struct{}{}
		plan.Raw = append(plan.Raw, id)
	}

	return plan, errors.Join(errs...)
}
