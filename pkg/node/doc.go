// Package node groups attributes into entity types, walks them for
// validation and form generation, and dispatches record lifecycle
// notifications to registered listeners.
package node
