package world

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Snapshot is a deep copy of the world's observable state.
type Snapshot struct {
	Tick         uint64
	Player       PlayerState
	ScrollOffset float64
	Lanes        []Lane
}

// Snapshot captures the current state. Later ticks do not affect it.
func (w *World) Snapshot() Snapshot {
	lanes := make([]Lane, 0, w.lanes.Len())
	for _, l := range w.lanes.Lanes() {
		lanes = append(lanes, l.Clone())
	}
	return Snapshot{
		Tick:         w.tick,
		Player:       w.player,
		ScrollOffset: w.camera.Offset,
		Lanes:        lanes,
	}
}

// Fingerprint hashes the current state. Two worlds built from the same
// configuration and seed and fed the same moves have equal fingerprints.
func (w *World) Fingerprint() uint64 {
	return w.Snapshot().Fingerprint()
}

// Fingerprint hashes a canonical little-endian encoding of the snapshot.
func (s Snapshot) Fingerprint() uint64 {
	buf := make([]byte, 0, 64+len(s.Lanes)*48)
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	buf = appendPlayer(buf, s.Player)
	buf = appendFloat(buf, s.ScrollOffset)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.Lanes)))
	for _, l := range s.Lanes {
		buf = appendLane(buf, l)
	}
	return xxh3.Hash(buf)
}

func appendPlayer(buf []byte, p PlayerState) []byte {
	buf = appendInt(buf, p.Row)
	buf = appendFloat(buf, p.Column)
	buf = appendBool(buf, p.Alive)
	buf = appendBool(buf, p.Drowning)
	buf = append(buf, byte(p.Cause))
	buf = appendInt(buf, p.Score)
	return appendInt(buf, p.HighScore)
}

func appendLane(buf []byte, l Lane) []byte {
	buf = appendInt(buf, l.Index)
	buf = append(buf, byte(l.Kind), byte(int8(l.Direction)))
	buf = appendFloat(buf, l.Speed)
	if l.Signal != nil {
		buf = appendBool(buf, true)
		buf = appendInt(buf, l.Signal.Timer)
		buf = appendBool(buf, l.Signal.Active)
	} else {
		buf = appendBool(buf, false)
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(l.Obstacles)))
	for _, o := range l.Obstacles {
		buf = append(buf, byte(o.Kind), o.Tint)
		buf = appendFloat(buf, o.Position)
		buf = appendFloat(buf, o.Width)
		buf = appendBool(buf, o.HasSpeed)
		buf = appendFloat(buf, o.Speed)
	}
	return buf
}

func appendInt(buf []byte, v int) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
}

func appendFloat(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}
