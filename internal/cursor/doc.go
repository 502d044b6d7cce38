// Package cursor implements the cursor-position query protocol: write the
// "report cursor position" control request to the terminal and wait, through
// the event multiplexer, for the asynchronous reply.
//
// The query is a pure client of the multiplexer's read path. It waits with a
// filter matching only cursor-position replies, so keystrokes and other
// events arriving in the meantime stay queued for the application.
package cursor
