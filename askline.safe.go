package askline

import "sync"

// consoleMu is the process-wide console lock behind WithSerializedIO.
//
// Engines created with WithSerializedIO hold this lock for an entire ask
// loop - prompt, every retry, and the final accept - so goroutines prompting
// on the same terminal never interleave their prompt/response exchanges or
// steal each other's lines. The lock is shared across all serialized
// engines, since the underlying stdin/stdout are process-wide too.
//
// Engines without WithSerializedIO never touch the lock.
var consoleMu sync.Mutex
