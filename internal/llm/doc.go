// Package llm classifies transaction vendors into spending categories using
// a language model. The service boundary is the Client interface, which
// reports success or failure explicitly; the Classifier above it guarantees
// callers only ever see a member of the closed category set, degrading to
// Other on any failure.
package llm
