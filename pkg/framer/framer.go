// Package framer implements the length-prefixed, optionally zlib-compressed
// packet framing described in the revision-47 protocol: a writer packs an
// id+body into a single length-prefixed frame, switching to the compressed
// frame shape once a per-connection threshold is configured and the frame
// grows past it; a reader mirrors that logic and hands the decompressed
// (id, body) pair back to the caller.
package framer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// MaxFrameLength bounds the total (post length-prefix) frame size; a frame
// claiming to be larger is rejected before any read is attempted.
const MaxFrameLength = 2097152

var (
	// ErrFrameTooLarge is returned when a frame's declared length exceeds
	// MaxFrameLength.
	ErrFrameTooLarge = errors.New("framer: frame exceeds maximum length")
	// ErrNegativeUncompressedLen is returned when the uncompressed-length
	// varint inside a compressed frame is negative.
	ErrNegativeUncompressedLen = errors.New("framer: negative uncompressed length")
	// ErrCompressedBeforeThreshold is returned when a sender compresses a
	// frame whose uncompressed size is below the negotiated threshold.
	ErrCompressedBeforeThreshold = errors.New("framer: frame compressed below threshold")
	// ErrResidualBytes is returned when a frame's body is not fully
	// consumed by the declared length.
	ErrResidualBytes = errors.New("framer: residual bytes after frame body")
)

// Frame is a decoded (packet id, body) pair ready for catalogue dispatch.
type Frame struct {
	ID   int32
	Body []byte
}

// Writer packs packets into frames and writes them to an underlying
// connection, applying zlib compression once Threshold is set positive and
// a given frame's scratch body grows to at least that many bytes.
type Writer struct {
	w         io.Writer
	Threshold int32 // <= 0 disables compression
}

// NewWriter wraps w with no compression; call SetThreshold to enable it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, Threshold: -1}
}

// SetThreshold enables compression for frames whose body is at least n
// bytes; n <= 0 disables compression again.
func (fw *Writer) SetThreshold(n int32) { fw.Threshold = n }

// WritePacket frames id and body and writes the frame to the connection.
func (fw *Writer) WritePacket(id int32, body []byte) error {
	var scratch bytes.Buffer
	if err := codec.WriteVarInt(&scratch, id); err != nil {
		return err
	}
	if _, err := scratch.Write(body); err != nil {
		return err
	}

	if fw.Threshold <= 0 {
		var out bytes.Buffer
		if err := codec.WriteVarInt(&out, int32(scratch.Len())); err != nil {
			return err
		}
		if _, err := out.Write(scratch.Bytes()); err != nil {
			return err
		}
		_, err := fw.w.Write(out.Bytes())
		return err
	}

	if int32(scratch.Len()) >= fw.Threshold {
		var zbuf bytes.Buffer
		zw := zlib.NewWriter(&zbuf)
		if _, err := zw.Write(scratch.Bytes()); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}

		var dataLen bytes.Buffer
		if err := codec.WriteVarInt(&dataLen, int32(scratch.Len())); err != nil {
			return err
		}

		var out bytes.Buffer
		totalLen := int32(dataLen.Len() + zbuf.Len())
		if err := codec.WriteVarInt(&out, totalLen); err != nil {
			return err
		}
		out.Write(dataLen.Bytes())
		out.Write(zbuf.Bytes())
		_, err := fw.w.Write(out.Bytes())
		return err
	}

	// below threshold: send uncompressed with a 0 data-length marker
	var out bytes.Buffer
	totalLen := int32(1 + scratch.Len())
	if err := codec.WriteVarInt(&out, totalLen); err != nil {
		return err
	}
	if err := codec.WriteVarInt(&out, 0); err != nil {
		return err
	}
	out.Write(scratch.Bytes())
	_, err := fw.w.Write(out.Bytes())
	return err
}

// Reader reads and decodes frames from an underlying connection.
type Reader struct {
	r         io.Reader
	Threshold int32 // <= 0 means compression is not in effect
}

// NewReader wraps r with no compression; call SetThreshold to enable it.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, Threshold: -1}
}

// SetThreshold enables compressed-frame parsing with the given threshold,
// used only to validate ErrCompressedBeforeThreshold.
func (fr *Reader) SetThreshold(n int32) { fr.Threshold = n }

// ReadPacket reads and decodes the next frame.
func (fr *Reader) ReadPacket() (Frame, error) {
	totalLen, err := codec.ReadVarInt(fr.r)
	if err != nil {
		return Frame{}, err
	}
	if totalLen <= 0 {
		return Frame{}, fmt.Errorf("framer: non-positive frame length %d", totalLen)
	}
	if totalLen > MaxFrameLength {
		return Frame{}, ErrFrameTooLarge
	}

	frameBody := make([]byte, totalLen)
	if _, err := io.ReadFull(fr.r, frameBody); err != nil {
		return Frame{}, err
	}
	br := bytes.NewReader(frameBody)

	var scratch []byte
	if fr.Threshold > 0 {
		uncompressedLen, err := codec.ReadVarInt(br)
		if err != nil {
			return Frame{}, err
		}
		switch {
		case uncompressedLen < 0:
			return Frame{}, ErrNegativeUncompressedLen
		case uncompressedLen == 0:
			scratch = make([]byte, br.Len())
			if _, err := io.ReadFull(br, scratch); err != nil {
				return Frame{}, err
			}
		default:
			if uncompressedLen < fr.Threshold {
				return Frame{}, ErrCompressedBeforeThreshold
			}
			zr, err := zlib.NewReader(br)
			if err != nil {
				return Frame{}, err
			}
			defer zr.Close()
			scratch = make([]byte, uncompressedLen)
			if _, err := io.ReadFull(zr, scratch); err != nil {
				return Frame{}, err
			}
			if n, _ := zr.Read(make([]byte, 1)); n > 0 {
				return Frame{}, ErrResidualBytes
			}
		}
	} else {
		scratch = make([]byte, br.Len())
		if _, err := io.ReadFull(br, scratch); err != nil {
			return Frame{}, err
		}
	}

	sr := bytes.NewReader(scratch)
	id, err := codec.ReadVarInt(sr)
	if err != nil {
		return Frame{}, err
	}
	body := make([]byte, sr.Len())
	if _, err := io.ReadFull(sr, body); err != nil {
		return Frame{}, err
	}
	return Frame{ID: id, Body: body}, nil
}
