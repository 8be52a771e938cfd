// Package testing provides test helpers for the framesplit library.
//
// It currently offers a types.Logger implementation that routes log output
// through a *testing.T, making splitter decisions visible in test logs.
package testing
