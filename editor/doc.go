// Package editor implements the screen-and-buffer engine: the cursor and
// viewport model, the incremental escape-sequence renderer, raw input
// decoding, and the single-threaded control loop that ties them to a
// buffer.Buffer.
//
// The package owns no terminal state. Raw mode, size queries, and resize
// signals are external collaborators wired in through Config.
package editor
