// Package fetch simulates retrieving a payload from a named endpoint.
//
// A simulated fetch waits a random delay drawn from a DelayRange and then
// either returns the payload unchanged or fails with a typed *Error. All
// randomness comes from an injected Source, so a seeded or scripted source
// makes every outcome reproducible.
package fetch
