package squeue

import (
	"encoding/binary"
	"fmt"
)

const (
	// ArgMax bounds the length of a submitted command line, mirroring the
	// ARG_MAX used by the original daemon's request record.
	ArgMax = 4096
	// PathMax bounds the length of a client's reply pipe path.
	PathMax = 4096

	// RequestSize is the fixed, wire-stable byte length of an encoded
	// Request: a length-prefixed command, a length-prefixed pipe path,
	// and a 4-byte little-endian client PID.
	RequestSize = 4 + ArgMax + 4 + PathMax + 4
)

// Request is one submitted command: the shell command line to run, the
// named pipe the client is waiting to read from, and the client's PID (used
// only to target the SUCCESS/FAILURE verdict signal).
type Request struct {
	Cmd       string
	Pipe      string
	ClientPID int32
}

// NewRequest builds a Request, returning an error if cmd or pipe exceed the
// fixed-size fields they must be copied into.
func NewRequest(cmd, pipe string, clientPID int32) (Request, error) {
	if len(cmd) > ArgMax {
		return Request{}, fmt.Errorf("squeue: command length %d exceeds ArgMax %d", len(cmd), ArgMax)
	}
	if len(pipe) > PathMax {
		return Request{}, fmt.Errorf("squeue: pipe path length %d exceeds PathMax %d", len(pipe), PathMax)
	}
	return Request{Cmd: cmd, Pipe: pipe, ClientPID: clientPID}, nil
}

// encode writes r into dst, which must be at least RequestSize bytes.
func (r Request) encode(dst []byte) {
	putLengthPrefixed(dst[0:4+ArgMax], r.Cmd)
	putLengthPrefixed(dst[4+ArgMax:4+ArgMax+4+PathMax], r.Pipe)
	binary.LittleEndian.PutUint32(dst[4+ArgMax+4+PathMax:], uint32(r.ClientPID))
}

// decode reads a Request out of src, which must be at least RequestSize
// bytes.
func decode(src []byte) Request {
	cmd := getLengthPrefixed(src[0 : 4+ArgMax])
	pipe := getLengthPrefixed(src[4+ArgMax : 4+ArgMax+4+PathMax])
	pid := int32(binary.LittleEndian.Uint32(src[4+ArgMax+4+PathMax:]))
	return Request{Cmd: cmd, Pipe: pipe, ClientPID: pid}
}

func putLengthPrefixed(dst []byte, s string) {
	binary.LittleEndian.PutUint32(dst[0:4], uint32(len(s)))
	copy(dst[4:], s)
}

func getLengthPrefixed(src []byte) string {
	n := binary.LittleEndian.Uint32(src[0:4])
	return string(src[4 : 4+n])
}
