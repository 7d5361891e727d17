// Package loader implements indexed lazy loading of model assets.
//
// A Loader owns the loaded-model slots, one per model descriptor, and is
// their only writer. Each slot is Unloaded, Loaded or Failed. Loading an
// index that is already Loaded is a cache hit; loading an index that is
// being fetched joins the in-flight fetch instead of starting another, so
// there is at most one fetch per index at any time. Failed slots are
// fetched again on the next request.
package loader
