package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entity defines the common behavior for all Graph API objects.
type Entity interface {
	GetID() string
}

// Object holds the identifier shared by every Graph API object.
// It is embedded into the concrete entity types.
type Object struct {
	ID string `json:"id"`
}

// GetID returns the object's ID.
func (o Object) GetID() string {
	return o.ID
}

// IdNameEntity is a lightweight reference to another object, as found in
// "from", "to" and similar attributes.
type IdNameEntity struct {
	Object
	Name string `json:"name,omitempty"`
}

// Category is an IdNameEntity that also carries a category label.
type Category struct {
	IdNameEntity
	Category string `json:"category,omitempty"`
}

// Time is a timestamp as serialized by the Graph API. It accepts the service's
// "2006-01-02T15:04:05-0700" layout, RFC 3339, date-only values and unix seconds.
type Time struct {
	time.Time
}

// Layouts accepted by Time.UnmarshalJSON, tried in order.
var timeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// UnmarshalJSON implements json.Unmarshaler to handle the mixed timestamp encodings.
func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	s := string(data)

	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	// Unix seconds, either bare or quoted.
	raw := strings.Trim(s, `"`)
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t.Time = time.Unix(secs, 0).UTC()
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("unrecognized timestamp: %s", s)
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp: %s", s)
}

// MarshalJSON writes the timestamp in the service's own layout.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05-0700"))
}

// GeoLocation is a latitude/longitude pair.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String renders the location as "lat,long", the form used by search center parameters.
func (g GeoLocation) String() string {
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}

// PictureSize selects a rendition of a profile or object picture.
type PictureSize string

const (
	PictureSquare PictureSize = "square"
	PictureSmall  PictureSize = "small"
	PictureNormal PictureSize = "normal"
	PictureLarge  PictureSize = "large"
)

// RSVPStatus values accepted by the event RSVP connections.
const (
	RSVPNoReply   = "noreply"
	RSVPInvited   = "invited"
	RSVPAttending = "attending"
	RSVPMaybe     = "maybe"
	RSVPDeclined  = "declined"
)

// Paging holds the cursor block of a list envelope.
type Paging struct {
	Next     string   `json:"next,omitempty"`
	Previous string   `json:"previous,omitempty"`
	Cursors  *Cursors `json:"cursors,omitempty"`
}

// Cursors holds opaque before/after markers.
type Cursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}
