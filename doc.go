// Package dedupe collapses logical duplicates in paginated query results.
//
// Listings built from joins often show the same underlying entity on more
// than one row. Dedupe removes the repeats before the rows are paginated
// and displayed, keeping the first-seen occurrence of each value.
//
// # Quick Start
//
//	eng := dedupe.New()
//
//	plan := eng.BuildPlan(defs, settings, "page_1")
//
//	// After query execution, before any rendering:
//	eng.RunRawPass(results, plan.Raw, pg)
//
//	// After output formatting, before final display:
//	eng.RunRenderedPass(ctx, results, plan.Rendered, renderField, pg)
//
// # Two-Phase Filtering
//
// Fields are compared either on their raw fetched value or on their
// rendered output, per field configuration. The raw pass runs right after
// query execution; the rendered pass runs once formatted output exists,
// against whatever rows the raw pass left. The two passes share nothing
// but the already-mutated result set.
//
// # Semantics
//
//   - First-seen-wins: the earliest row in result order keeps a value,
//     later rows repeating it are removed. Survivor order is preserved.
//   - Any matching field removes the row; fields are evaluated in plan
//     order, deterministically.
//   - A row missing a field's value falls back to its backing entity
//     identifier in the raw pass; with no fallback the field is skipped
//     for that row. The rendered pass has no fallback: a null render
//     skips the field.
//   - Seen values are recorded even for rows being removed, so later rows
//     compare against the first-seen occurrence.
//
// # Pagination
//
// After each pass the pager's total-item count is set to the new running
// total and page boundaries are recomputed. This is best-effort:
// duplicates on unfetched pages are unknown, so the page count may remain
// an overestimate.
//
// The filter never aborts the surrounding pipeline: unresolvable settings
// degrade to "disabled" and are logged, absent values mean "skip".
package dedupe
