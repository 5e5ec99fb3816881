// Package powerbill provides the data model and persistent store for
// managing utility-service accounts (UKSC meters) grouped under physical
// properties. It is designed to be local-first: the whole book lives in a
// single JSON document that the user owns, can back up, and can restore.
//
// The core functionalities include:
//   - Book Management: nested CRUD over properties and their meters, with
//     per-meter tenant details and the latest billing snapshot. Every
//     mutation is atomic in memory and followed by exactly one write of
//     the whole document.
//   - Data Persistence: encoding and decoding of the book to a stable,
//     human-readable JSON document, used both for routine saves and for
//     user-initiated backup and restore.
//   - Bill Snapshots: a simulated billing provider produces point-in-time
//     readouts (amount, units, dates, status) attached to a meter.
//
// This package serves as the foundational logic for the `pbm` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package powerbill
