// Package form keeps the field state of one form instance. A Registry owns
// every Field of the form and is the only place field values and validation
// outcomes change; a Controller routes UI events into the registry and
// branches submissions to host callbacks.
//
// Each form gets its own Controller and Registry. There is no package-level
// state, so independent forms can live side by side (and be driven from
// different goroutines). A single Registry is not safe for concurrent use;
// events for one form are expected to arrive one after another.
package form
