// Package requests reads a JSON request document, loads its base requests
// into a catalogue and answers its stat requests through a Handler.
package requests
