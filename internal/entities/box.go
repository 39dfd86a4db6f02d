package entities

import (
	"encoding/json"
	"reflect"
)

type BoxSource struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Box is the status of a single file slot as returned by the API.
type Box struct {
	Number int        `json:"number,omitempty"`
	Empty  bool       `json:"empty"`
	Name   string     `json:"name,omitempty"`
	Size   int64      `json:"size,omitempty"`
	Type   string     `json:"type,omitempty"`
	Source *BoxSource `json:"source,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// UnmarshalJSON defaults "empty" to true when the field is missing.
func (b *Box) UnmarshalJSON(data []byte) error {
	type plain Box
	decoded := plain{Empty: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*b = Box(decoded)
	return nil
}

func (b Box) HasFile() bool {
	return !b.Empty && b.Error == ""
}

func NewEmptyBox(number int) Box {
	return Box{
		Number: number,
		Empty:  true,
	}
}

func NewErrorBox(number int, err error) Box {
	return Box{
		Number: number,
		Empty:  true,
		Error:  err.Error(),
	}
}

// Boxes maps box number to its status.
type Boxes map[int]Box

func (b Boxes) Get(number int) Box {
	if box, ok := b[number]; ok {
		return box
	}

	return NewEmptyBox(number)
}

func (b Boxes) Clone() Boxes {
	clone := make(Boxes, len(b))
	for number, box := range b {
		if box.Source != nil {
			source := *box.Source
			box.Source = &source
		}
		clone[number] = box
	}

	return clone
}

func (b Boxes) Equal(other Boxes) bool {
	return reflect.DeepEqual(b, other)
}

// AllFailed reports whether every box carries a fetch error.
func (b Boxes) AllFailed() bool {
	if len(b) == 0 {
		return false
	}

	for _, box := range b {
		if box.Error == "" {
			return false
		}
	}

	return true
}
