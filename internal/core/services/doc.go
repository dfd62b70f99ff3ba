// Package services implements the driving port interfaces.
// Services contain the client's orchestration logic and call out
// to driven ports (the backend client, history store, opener).
//
// Services are pure Go with no CGO or external dependencies.
package services
