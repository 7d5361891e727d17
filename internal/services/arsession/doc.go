// Package arsession implements the AR session state machine: hit-test
// reticle lifecycle, model placement, model switching and gesture
// transforms.
//
// # States
//
//	Idle -> ReticleSearching -> ReticleLocked -> ModelPlaced
//	ModelPlaced -> ModelPlaced      (switch)
//	any -> Idle                     (session end)
//
// All state lives in a Machine; handlers receive it explicitly, so the
// transitions can be driven in tests without a device or renderer. The
// Machine never touches presentation directly. It emits semantic events
// (domain.Event) to a domain.Presenter after releasing its lock, so a
// presenter may call back into the Machine.
//
// # Concurrency
//
// Frame never blocks: it skips hit-testing while a model load is in flight.
// While searching without a hit-test source, it re-requests one in the
// background, so search resumes after a failed switch. Select and
// Switch block their caller on the lazy loader; at most one of them is in
// flight at a time, further calls are ignored until it completes. Ending
// the session invalidates any in-flight request, whose late completion is
// dropped.
package arsession
