package field

// Setting is the per-field duplicate-filter configuration.
//
// The zero value is the built-in default: filtering disabled. It is what
// every resolution failure degrades to, so the filter stays best-effort and
// never blocks the surrounding query pipeline.
type Setting struct {
	// FilterEnabled marks the field as participating in duplicate
	// filtering.
	FilterEnabled bool

	// UseRenderedValue selects comparison on the formatted output instead
	// of the fetched value. Meaningful only when FilterEnabled is true.
	UseRenderedValue bool
}

// SettingsSource resolves the persisted Setting for a field on a display.
//
// Implementations are provided by the surrounding system (typically backed
// by its configuration storage). found reports whether a setting exists for
// exactly this (field, display) pair; a false return is not an error, it
// just moves resolution down the fallback chain. A non-nil error signals a
// storage or configuration inconsistency: resolution still proceeds with
// the built-in default, and the caller is expected to log the condition.
type SettingsSource interface {
	Lookup(fieldID ID, displayID string) (setting Setting, found bool, err error)
}

// DefaultDisplayID is the display consulted when no display-specific
// setting exists.
const DefaultDisplayID = "default"

// MapSource is an in-memory SettingsSource keyed by display id, then field
// id. Useful for tests and for callers that materialize their settings up
// front.
type MapSource map[string]map[ID]Setting

// Lookup implements SettingsSource.
func (m MapSource) Lookup(fieldID ID, displayID string) (Setting, bool, error) {
	s, ok := m[displayID][fieldID]
	return s, ok, nil
}

// Resolve applies the fallback chain for one field: the display-specific
// setting, then the default-display setting, then the built-in default.
//
// The returned Setting is always usable. The returned error, when non-nil,
// reports a source inconsistency that the caller should log; it never
// invalidates the Setting.
func Resolve(src SettingsSource, fieldID ID, displayID string) (Setting, error) {
	if src == nil {
		return Setting{}, nil
	}

	s, ok, err := src.Lookup(fieldID, displayID)
	if err != nil {
		return Setting{}, err
	}
	if ok {
		return s, nil
	}

	if displayID != DefaultDisplayID {
		s, ok, err = src.Lookup(fieldID, DefaultDisplayID)
		if err != nil {
			return Setting{}, err
		}
		if ok {
			return s, nil
		}
	}

	return Setting{}, nil
}
