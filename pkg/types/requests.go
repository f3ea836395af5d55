package types

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/schema"
)

var paramEncoder = schema.NewEncoder()

func init() {
	paramEncoder.SetAliasTag("param")
	paramEncoder.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		return strconv.FormatInt(v.Interface().(time.Time).Unix(), 10)
	})
	paramEncoder.RegisterEncoder(GeoLocation{}, func(v reflect.Value) string {
		b, _ := json.Marshal(v.Interface().(GeoLocation))
		return string(b)
	})
	paramEncoder.RegisterEncoder(JSONList{}, func(v reflect.Value) string {
		b, _ := json.Marshal([]string(v.Interface().(JSONList)))
		return string(b)
	})
}

// JSONList is a string list sent as a single JSON array parameter.
type JSONList []string

// EncodeParams flattens a request struct into Params using its `param` tags.
// Names are emitted in sorted order so the wire form is stable.
func EncodeParams(src any) (Params, error) {
	values := map[string][]string{}
	if err := paramEncoder.Encode(src, values); err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var ps Params
	for _, name := range names {
		for _, v := range values[name] {
			ps = append(ps, Param{Name: name, Value: v})
		}
	}
	return ps, nil
}

// PostUpdate is a feed post.
type PostUpdate struct {
	Message              string    `param:"message,omitempty" validate:"required_without=Link"`
	Link                 string    `param:"link,omitempty" validate:"omitempty,url"`
	Picture              string    `param:"picture,omitempty" validate:"omitempty,url"`
	Name                 string    `param:"name,omitempty"`
	Caption              string    `param:"caption,omitempty"`
	Description          string    `param:"description,omitempty"`
	Place                string    `param:"place,omitempty"`
	Tags                 string    `param:"tags,omitempty"`
	Privacy              string    `param:"privacy,omitempty"`
	ObjectAttachment     string    `param:"object_attachment,omitempty"`
	ScheduledPublishTime time.Time `param:"scheduled_publish_time,omitempty"`
}

// EventUpdate creates or edits an event.
type EventUpdate struct {
	Name        string    `param:"name" validate:"required"`
	StartTime   time.Time `param:"start_time" validate:"required"`
	EndTime     time.Time `param:"end_time,omitempty" validate:"omitempty,gtfield=StartTime"`
	Description string    `param:"description,omitempty"`
	Location    string    `param:"location,omitempty"`
	LocationID  string    `param:"location_id,omitempty"`
	Privacy     string    `param:"privacy_type,omitempty" validate:"omitempty,oneof=OPEN SECRET FRIENDS"`
}

// AlbumCreate creates a photo album.
type AlbumCreate struct {
	Name    string `param:"name" validate:"required"`
	Message string `param:"message,omitempty"`
	Privacy string `param:"privacy,omitempty"`
}

// CheckinCreate records a visit to a place.
type CheckinCreate struct {
	Place       string      `param:"place" validate:"required"`
	Coordinates GeoLocation `param:"coordinates" validate:"required"`
	Tags        string      `param:"tags,omitempty"`
	Message     string      `param:"message,omitempty"`
	Link        string      `param:"link,omitempty" validate:"omitempty,url"`
	Picture     string      `param:"picture,omitempty" validate:"omitempty,url"`
}

// TagUpdate tags a user on a photo, optionally at a position given in percent.
type TagUpdate struct {
	To      string  `param:"to" validate:"required"`
	TagText string  `param:"tag_text,omitempty"`
	X       float64 `param:"x,omitempty" validate:"gte=0,lte=100"`
	Y       float64 `param:"y,omitempty" validate:"gte=0,lte=100"`
}

// QuestionCreate asks a question, optionally with predefined answers.
type QuestionCreate struct {
	Question        string   `param:"question" validate:"required"`
	Options         JSONList `param:"options,omitempty" validate:"omitempty,dive,required"`
	AllowNewOptions bool     `param:"allow_new_options"`
}
