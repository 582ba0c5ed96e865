// Package dispatch implements the daemon's main loop: pulling requests off
// the shared queue and handing each to the lowest-index idle worker.
//
// A request that arrives when every worker is busy is rejected immediately
// with a FAILURE verdict rather than held; the pool does not grow and the
// queue does not retry admission, matching the original dispatcher's
// fixed-size thread array.
package dispatch
