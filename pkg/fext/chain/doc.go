// Package chain provides a fluent wrapper around result.Result for building
// synchronous chains whose steps receive a context.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/ThenTry/Map: steps that keep the value type
// - Bind/Convert: package-level steps that change the value type
// - Ensure: side effects for either branch without changing the result
// - Or/And: pick between chains
// - While/RepeatUntil: repeat a step while the chain is Ok
// - Match: collapse the chain into a final value
//
// Once a chain holds an Error, no later step function is called.
package chain
