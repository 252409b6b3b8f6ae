// Package checkout models an open order form session: the Draft being filled in and
// the DatePicker that decides which delivery days can be chosen.
//
// Sessions are short lived and kept in memory. The picker cutoff ("today") is fixed at
// the moment the session opens; delivery is never same day, and Sundays are disabled
// when the Monday to Saturday policy is enabled.
package checkout
