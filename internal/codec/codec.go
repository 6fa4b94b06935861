// Package codec stores converted labels as MessagePack.
package codec

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/riverfjs/linkmarkup-go/internal/types"
)

// Record 是一个已转换的标签
type Record struct {
	Text     string
	Entities []types.Entity
}

type wireEntity struct {
	Type   string `msgpack:"t"`
	Offset uint32 `msgpack:"o"`
	Length uint32 `msgpack:"l"`
	URL    string `msgpack:"u,omitempty"`
}

type wireRecord struct {
	Text     string       `msgpack:"text"`
	Entities []wireEntity `msgpack:"entities,omitempty"`
}

// Encode writes rec to w.
func Encode(w io.Writer, rec Record) error {
	wire := wireRecord{Text: rec.Text}
	for i, e := range rec.Entities {
		offset, err := safecast.Conv[uint32](e.Offset)
		if err != nil {
			return fmt.Errorf("entity %d offset: %w", i, err)
		}
		length, err := safecast.Conv[uint32](e.Length)
		if err != nil {
			return fmt.Errorf("entity %d length: %w", i, err)
		}
		wire.Entities = append(wire.Entities, wireEntity{
			Type:   e.Type,
			Offset: offset,
			Length: length,
			URL:    e.URL,
		})
	}

	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&wire); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// Decode reads one record from r.
func Decode(r io.Reader) (Record, error) {
	var wire wireRecord
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return Record{}, fmt.Errorf("failed to decode record: %w", err)
	}

	rec := Record{Text: wire.Text}
	for _, e := range wire.Entities {
		rec.Entities = append(rec.Entities, types.Entity{
			Type:   e.Type,
			Offset: int(e.Offset),
			Length: int(e.Length),
			URL:    e.URL,
		})
	}
	return rec, nil
}
