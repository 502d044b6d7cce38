// Package mouse defines mouse event value types: buttons, actions, screen
// positions, and the Event struct carried inside the multiplexer's event
// union.
package mouse
