package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/parameter"
)

// SnapshotVersion is the current version of the snapshot format.
const SnapshotVersion = 1

// Codec errors.
var (
	// ErrUnsupportedArray is returned when a Parameter holds an array
	// type the codec cannot serialize.
	ErrUnsupportedArray = errors.New("unsupported array type")

	// ErrSnapshotVersion is returned when decoding a snapshot with an
	// unknown format version.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)

// Snapshot is the serialized form of one Parameter.
// CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `cbor:"1,keyasint"`

	// RecordingID identifies the snapshot (UUID).
	RecordingID string `cbor:"2,keyasint"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `cbor:"3,keyasint"`

	// Name is the channel name.
	Name string `cbor:"4,keyasint"`

	// Frequency is the sampling frequency in Hz.
	Frequency float64 `cbor:"5,keyasint"`

	// Offset is the timing offset in seconds.
	Offset float64 `cbor:"6,keyasint"`

	// ARINC429 is the optional bus-origin flag.
	ARINC429 *bool `cbor:"7,keyasint,omitempty"`

	// Values are the raw codes.
	Values []int64 `cbor:"8,keyasint,omitempty"`

	// Mask marks masked samples (true = invalid).
	Mask []bool `cbor:"9,keyasint,omitempty"`

	// States is the code-to-label table, empty for plain channels.
	States map[int64]string `cbor:"10,keyasint,omitempty"`
}

// encMode is the CBOR encoder mode for snapshots: deterministic
// encoding with RFC3339 nano timestamps.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for snapshots.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Encode snapshots a Parameter and encodes it to CBOR bytes. A fresh
// recording identifier is assigned.
func Encode(p *parameter.Parameter) ([]byte, error) {
	snap, err := NewSnapshot(p)
	if err != nil {
		return nil, err
	}
	return EncodeSnapshot(snap)
}

// NewSnapshot captures a Parameter as a Snapshot.
func NewSnapshot(p *parameter.Parameter) (*Snapshot, error) {
	snap := &Snapshot{
		Version:     SnapshotVersion,
		RecordingID: uuid.NewString(),
		SavedAt:     time.Now().UTC(),
		Name:        p.Name,
		Frequency:   p.Frequency,
		Offset:      p.Offset,
		ARINC429:    p.ARINC429,
	}
	switch array := p.Array().(type) {
	case *parameter.MappedArray:
		snap.Values = array.Data()
		snap.Mask = array.Mask()
		if m := array.Mapping(); m != nil {
			snap.States = m.Codes()
		}
	case []int64:
		snap.Values = append([]int64(nil), array...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArray, p.Array())
	}
	return snap, nil
}

// EncodeSnapshot encodes a Snapshot to CBOR bytes.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return encMode.Marshal(snap)
}

// DecodeSnapshot decodes CBOR bytes into a Snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := decMode.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	return &snap, nil
}

// Decode decodes CBOR bytes and rebuilds the Parameter.
func Decode(data []byte) (*parameter.Parameter, error) {
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return snap.Parameter()
}

// Parameter rebuilds the Parameter a snapshot was taken from.
func (s *Snapshot) Parameter() (*parameter.Parameter, error) {
	opts := &parameter.ParameterOptions{
		Frequency: s.Frequency,
		Offset:    s.Offset,
		ARINC429:  s.ARINC429,
	}
	if len(s.States) == 0 && s.Mask == nil {
		opts.Array = append([]int64(nil), s.Values...)
		return parameter.NewParameter(s.Name, opts), nil
	}
	var mapping *parameter.StateMapping
	if len(s.States) > 0 {
		mapping = parameter.NewStateMapping(s.States)
	}
	array, err := parameter.NewMappedArray(s.Values, s.Mask, mapping)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.RecordingID, err)
	}
	opts.Array = array
	return parameter.NewParameter(s.Name, opts), nil
}
