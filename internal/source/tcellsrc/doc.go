// Package tcellsrc adapts a tcell screen into the multiplexer's Source
// capability. tcell owns the terminal and all raw escape-sequence decoding;
// this package only translates its typed events into the event union and
// implements bounded-timeout reads over the screen's event channel.
//
// The source's Waker posts a tcell interrupt event to the screen, so a wake
// is delivered through the same queue as ordinary input and cannot be lost.
package tcellsrc
