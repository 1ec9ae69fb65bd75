// Package log defines standard attribute keys for gaussrank operations.
//
// Using these keys consistently keeps log records filterable across the
// library: every fit/transform event carries the same field names for the
// model, the operation and the data shape.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the transformer type, e.g. "GaussRankScaler".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "transform", "inverse_transform", "fit_transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "preprocessing".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of rows in the processed matrix.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns in the processed matrix.
	FeaturesKey = "data.features"
)

// Performance.
const (
	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// StacktraceKey carries a formatted stack trace extracted from a
	// cockroachdb/errors chain.
	StacktraceKey = "stacktrace"
)
