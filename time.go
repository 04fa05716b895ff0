package custos

import (
	"time"

	"github.com/custos-chain/custos/errors"
)

// UnixTime represents a point in time as POSIX time.
// This type comes in handy when dealing with protobuf messages. Use
// standard time.Time type in all other cases.
type UnixTime int64

// AsUnixTime converts time.Time structure into its UnixTime
// representation. All time information more granular than a second is
// dropped as it cannot be represented by the UnixTime type.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// Time returns a time.Time structure that represents the same moment
// in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Add modifies this UNIX time by given duration. This is compatible
// with time.Time.Add method. Any duration value smaller than a second
// is ignored as it cannot be represented by the UnixTime type.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative time value")
	}
	return nil
}

// String returns the usual format of this time.
func (t UnixTime) String() string {
	return t.Time().UTC().String()
}
