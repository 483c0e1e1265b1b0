// Package script defines the typed, deferred value producers attached to
// tasks and data objects.
//
// A script body is a single expression written in a small language:
//
//	# leading comment lines are ignored
//	return "case_" + str(random(1, 100))
//
// Scripts are compiled once, on first use, and evaluated on every call to
// Execute. Executors are safe for concurrent use.
package script
