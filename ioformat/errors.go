package ioformat

import "errors"

// ErrMalformedLine indicates a topology or changes line did not have
// exactly three whitespace-separated integer fields. Per the simulation
// driver's contract this is fatal, unlike a malformed message line.
var ErrMalformedLine = errors.New("ioformat: malformed line")
