// Package field describes the configurable columns of a listing and turns
// per-field duplicate-filter settings into an executable filter plan.
//
// # Settings resolution
//
// Settings live outside this module (an admin surface persists them per
// view, display and field). They reach the engine through the
// SettingsSource interface. Chain applies the standard fallback order:
//
//	display-specific setting -> default-display setting -> built-in default
//
// The built-in default is the zero Setting: filtering disabled. A source
// that fails to resolve a setting never aborts plan construction; the
// failure is reported alongside a usable default.
//
// # Filter plans
//
// BuildPlan partitions the enabled fields into two disjoint lists:
//
//   - Raw: fields compared on their fetched value, before output
//     formatting. These use the field's result-column alias when one is
//     exposed, so the comparison hits the value the query produced.
//   - Rendered: fields compared on their formatted output. These use the
//     UI field id, which is what the renderer is keyed by.
//
// A plan is built once per query execution and is deterministic: fields
// appear in definition order, duplicates collapsed.
package field
