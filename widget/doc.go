// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state and input handling of DCC style
// numeric spinboxes. Drawing is done by package material.
//
// A Spinbox composes the drag value mapper and the step ladder with a
// Gio text editor; it never draws by itself.
package widget
