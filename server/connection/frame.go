package connection

import (
	"bytes"
	"fmt"
	"io"
)

// FrameSize is the fixed length of every frame on the wire. Payloads
// are UTF-8 JSON padded to this length with zero bytes; the receiver
// reads up to the first zero byte.
const FrameSize = 2048

// ErrFrameTooLarge reports a payload that cannot fit a frame with at
// least one byte of padding left.
var ErrFrameTooLarge = fmt.Errorf("payload exceeds %d bytes", FrameSize-1)

// EncodeFrame pads a payload to a full frame
func EncodeFrame(payload []byte) ([]byte, error) {
	if len(payload) > FrameSize-1 {
		return nil, ErrFrameTooLarge
	}
	frame := make([]byte, FrameSize)
	copy(frame, payload)
	return frame, nil
}

// DecodeFrame strips the zero-byte padding from a received frame
func DecodeFrame(frame []byte) []byte {
	if i := bytes.IndexByte(frame, 0); i >= 0 {
		return frame[:i]
	}
	return frame
}

// WriteFrame encodes and writes one frame
func WriteFrame(w io.Writer, payload []byte) error {
	frame, err := EncodeFrame(payload)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// ReadFrame reads one full frame and returns the payload
func ReadFrame(r io.Reader) ([]byte, error) {
	frame := make([]byte, FrameSize)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, err
	}
	return DecodeFrame(frame), nil
}
