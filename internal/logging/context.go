package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for identification sessions.
	FieldSessionID = "session_id"
	// FieldSpecies is the standardized structured logging key for species names.
	FieldSpecies = "species"
	// FieldPercentage carries a species' match percentage.
	FieldPercentage = "percentage"
	// FieldAttribute is the standardized structured logging key for attribute names.
	FieldAttribute = "attribute"
	// FieldEventType tags log lines with a stable machine-readable event name.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step for the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)
