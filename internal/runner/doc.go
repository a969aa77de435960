// Package runner loads puzzle inputs, runs registered solutions and checks
// their answers against the configured known answers.
//
// Days run in parallel, at most Config.Workers at a time; both parts of a
// day share one read of the input. A failing part never stops the others:
// its error is reported in its Result. Watch re-runs a day whenever its
// input file changes.
package runner
