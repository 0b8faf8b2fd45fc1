// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. It implements every store interface through a single database connection:
//
//   - TreeStore and RawItemStore: the crawled tree (file table)
//   - CourseStore: the course catalog (course table)
//   - ParsedItemStore: classification results (parsed_content and its
//     parsed_content_type / parsed_content_course membership tables)
//   - RunStore: parse run bookkeeping (parse_runs table)
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory and embedded at compile time.
//
// # Data Location
//
// By default, the database is stored at ~/.apuntes/data/apuntes.db
//
// # Idempotence
//
// Every write of parsed content uses ON CONFLICT DO NOTHING, so re-running a
// classification pass over the same input leaves the database unchanged.
package sqlite
