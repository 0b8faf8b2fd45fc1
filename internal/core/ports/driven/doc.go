// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RawItemStore: Harvested files, input of the classification pass
//   - CourseStore: Course catalog persistence
//   - ParsedItemStore: Idempotent persistence of classification results
//   - RunStore: Parse run bookkeeping
//   - ConfigStore: Application configuration
//
// # Crawler Interfaces
//
//   - TreeStore: Resumable record of the remote tree
//   - FolderLister: Lists folders of the remote storage (Google Drive)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
