// Package artifact persists rendered reports to their destination.
//
// A Writer is the sink the comparison and sync runs publish to. Two
// implementations exist: ObjectWriter stores artifacts as objects in the
// configured bucket (S3/MinIO via core/storage), and DirWriter writes plain
// files into a local directory for storage-less CLI runs.
//
// # Retention
//
// Both writers support pruning: Prune keeps the N most recent artifacts
// under the writer's prefix and removes the rest, so scheduled runs do not
// accumulate unbounded history.
//
// # Failure
//
// A failed write surfaces as a *StorageError naming the artifact; the
// caller aborts the remaining writes of the run, so a run either publishes
// completely or stops at the first broken artifact.
package artifact
