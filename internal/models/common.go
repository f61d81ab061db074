// server/internal/models/common.go
package models

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/spf13/cast"
)

// Number is a float64 that decodes leniently: JSON numbers, numeric strings and
// form values all work, anything else (including null and "") becomes 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*n = 0
		return nil
	}
	*n = ToNumber(raw)
	return nil
}

// UnmarshalParam lets gin's form binding use the same coercion as JSON.
func (n *Number) UnmarshalParam(param string) error {
	*n = ToNumber(param)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// ToNumber coerces v to a finite Number, 0 when it is not numeric.
func ToNumber(v interface{}) Number {
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}

// FileMeta describes an uploaded file. FileName is the stored name, OriginalName the client's.
type FileMeta struct {
	FileName     string `bson:"fileName" json:"fileName"`
	OriginalName string `bson:"originalName" json:"originalName"`
	MimeType     string `bson:"mimeType" json:"mimeType"`
	Size         int64  `bson:"size" json:"size"`
}
