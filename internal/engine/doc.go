// Package engine holds the gamification rules: streak evaluation, learning
// step progression and unlocking, the quiz XP ledger, and derived stats.
//
// Every operation is a pure function over a state snapshot supplied by the
// caller, with the clock injected. The package performs no I/O and assumes
// the caller serializes calls per user (see ProgressService).
package engine
