// Package xrsim drives an AR session without a headset.
//
// Session, Source and Frame stand in for the XR runtime: the session grants
// a viewer reference space and a hit-test source, and each Frame carries
// the hit poses a real device would report. A Script is a JSON list of
// steps replayed against an arsession.Machine:
//
//	{"steps": [
//	    {"op": "frame", "at": [0, -1, -2]},
//	    {"op": "select"},
//	    {"op": "drag", "dx": 0.1, "dz": 0},
//	    {"op": "switch", "index": 2},
//	    {"op": "end"}
//	]}
//
// A frame step takes either "at" (a translation) or "pose" (a column-major
// 4x4 matrix); a frame with neither reports no hit. Recorder is a Presenter
// that keeps everything the machine and the bootstrap sequence emit.
package xrsim
