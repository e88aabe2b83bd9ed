// Package audio turns synthesized speech into something a platform player
// can handle and optionally archives it. Decoding and playback themselves
// are delegated to an external player.
package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// Format of the speech payload returned by the model.
const (
	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
)

var ErrEmptyAudio = errors.New("empty audio payload")

// DecodePCM base64-decodes a speech payload into raw PCM samples.
func DecodePCM(payload string) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyAudio
	}
	pcm, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	if len(pcm) == 0 {
		return nil, ErrEmptyAudio
	}
	return pcm, nil
}

// WAV wraps 16-bit little-endian mono PCM at SampleRate in a RIFF header.
func WAV(pcm []byte) []byte {
	const headerSize = 44
	blockAlign := Channels * BitsPerSample / 8
	byteRate := SampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(headerSize + len(pcm))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(Channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// Duration is the playing time of pcm.
func Duration(pcm []byte) time.Duration {
	samples := len(pcm) / (Channels * BitsPerSample / 8)
	return time.Duration(samples) * time.Second / SampleRate
}
