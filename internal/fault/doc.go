// Package fault defines the core error model shared by the dispatch and
// recovery layers.
//
// # Purpose
//
//   - Provide the severity table that maps raw runtime error codes to display
//     labels and classification predicates (deprecation, fatal class).
//   - Model the immutable Record captured for every intercepted runtime error.
//   - Model the two error values this subsystem produces: RaisedError (a
//     catchable fault escalated to the code that triggered the error) and
//     FatalError (the shutdown-path object handed to the final handler).
//
// # Scope
//
// Package fault performs no IO, no classification policy, and no message
// enhancement. Policy lives in internal/dispatch, enhancement in
// internal/suggest. Keep the data model deterministic and side-effect free so
// every consumer can serialise and compare records in tests.
package fault
