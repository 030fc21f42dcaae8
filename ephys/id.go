package ephys

import "strings"

// TraceID identifies one channel of one recording file.
type TraceID struct {
	File    string
	Channel string
}

// String returns "file/channel".
func (id TraceID) String() string {
	if id.File == "" && id.Channel == "" {
		return ""
	}

	return id.File + "/" + id.Channel
}

// Compare orders IDs by file, then channel.
func (id TraceID) Compare(other TraceID) int {
	if c := strings.Compare(id.File, other.File); c != 0 {
		return c
	}

	return strings.Compare(id.Channel, other.Channel)
}
