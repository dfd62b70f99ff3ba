// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MeetingAPI: The meeting-notes backend (upload, search, export)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MeetingStore: Local meeting history. Without it, exports need an
//     upload in the same process.
//   - URLOpener: Opens export links. Without it, links are only returned.
//   - AudioWatcher: Directory watching for the watch command.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
