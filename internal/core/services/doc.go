// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never talk to SQLite or Google Drive directly; they only see
// the driven interfaces, so every service is tested with the in-memory
// adapters.
package services
