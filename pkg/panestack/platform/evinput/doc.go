// Package evinput reads a Linux touchscreen through evdev and produces
// pointer events for a panestack Container, for devices whose SDL build
// has no touch support.
package evinput
