package profiler

import "github.com/yandex/haversine-workbench/internal/profiler/ring"

// Default is the process-wide profiler instance. Call its methods
// directly (Default.Begin("parse"), defer Default.Section("parse").End())
// rather than through another wrapper: Begin/End/Section capture the
// call site of their immediate caller, so an extra indirection layer
// would attribute records to the wrong line.
var Default = New(ring.DefaultCapacity)
