// SPDX-License-Identifier: MIT
package udp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"specviz/internal/transport"
)

// Binary packet layout, big-endian:
//
//	magic    uint16  (0x5356, "SV")
//	sequence uint32  monotonically increasing per packet
//	frame    uint32  1-based frame index
//	total    uint32  total frames in the sequence
//	feature  float32 mean analysis value for the frame
const (
	packetMagic = uint16(0x5356)
	packetSize  = 2 + 4 + 4 + 4 + 4
)

// Transport adapts a Sender to the transport.Transport interface,
// encoding progress events as fixed-size binary packets.
type Transport struct {
	sender   *Sender
	sequence uint32
	buf      bytes.Buffer
}

// NewTransport dials targetAddress and returns a progress transport
// writing binary packets to it.
func NewTransport(targetAddress string) (*Transport, error) {
	sender, err := NewSender(targetAddress)
	if err != nil {
		return nil, err
	}
	return &Transport{sender: sender}, nil
}

// Send encodes a transport.Progress event and transmits it. Other
// payload types are rejected.
func (t *Transport) Send(data any) error {
	p, ok := data.(transport.Progress)
	if !ok {
		return fmt.Errorf("udp transport: unsupported payload type %T", data)
	}

	t.sequence++
	t.buf.Reset()
	t.buf.Grow(packetSize)

	var scratch [4]byte
	binary.BigEndian.PutUint16(scratch[:2], packetMagic)
	t.buf.Write(scratch[:2])
	binary.BigEndian.PutUint32(scratch[:], t.sequence)
	t.buf.Write(scratch[:])
	binary.BigEndian.PutUint32(scratch[:], uint32(p.Frame))
	t.buf.Write(scratch[:])
	binary.BigEndian.PutUint32(scratch[:], uint32(p.Total))
	t.buf.Write(scratch[:])
	binary.BigEndian.PutUint32(scratch[:], math.Float32bits(float32(p.Feature)))
	t.buf.Write(scratch[:])

	return t.sender.Send(t.buf.Bytes())
}

// Close shuts down the underlying sender.
func (t *Transport) Close() error {
	return t.sender.Close()
}
