// Package llm defines the core contracts shared by all provider adapters:
// the Provider interface, the errors-as-values Result type, the ModelConfig
// parameter map, and the pull-based Stream used for incremental responses.
//
// Failures from vendor APIs are data, not control flow. A failed Generate
// call yields a Result whose text begins with "Error with <Vendor>: " and a
// failed Stream yields exactly one chunk with the corresponding streaming
// prefix before terminating. Callers aggregating results across providers
// never need per-call error handling.
package llm
