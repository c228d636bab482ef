package wrecked

// ID identifies a rect within a RectManager's lifetime. Id 0 is always the
// root. Ids are assigned monotonically increasing and, per spec.md §5, are
// never reused once freed within the same session.
type ID uint32

// RootID is the id of the manager's root rect.
const RootID ID = 0

// NoID is the reserved sentinel returned by id-producing operations on
// failure (spec.md §6).
const NoID ID = 0xFFFFFFFF
