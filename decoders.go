package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jamesprial/go-graph-api-wrapper/internal"
	pkgerrs "github.com/jamesprial/go-graph-api-wrapper/pkg/errors"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

// entityDecoder decodes into T and returns it as an Entity.
func entityDecoder[T types.Entity]() internal.Decoder[types.Entity] {
	return func(raw json.RawMessage) (types.Entity, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// decoders maps an entity kind name to its decoder. The names are the ones
// accepted by GetObject and GetConnection.
var decoders = map[string]internal.Decoder[types.Entity]{
	"account":        entityDecoder[types.Account](),
	"achievement":    entityDecoder[types.Achievement](),
	"activity":       entityDecoder[types.Activity](),
	"album":          entityDecoder[types.Album](),
	"book":           entityDecoder[types.Book](),
	"checkin":        entityDecoder[types.Checkin](),
	"comment":        entityDecoder[types.Comment](),
	"domain":         entityDecoder[types.Domain](),
	"event":          entityDecoder[types.Event](),
	"family":         entityDecoder[types.FamilyMember](),
	"friend":         entityDecoder[types.Friend](),
	"friendlist":     entityDecoder[types.Friendlist](),
	"friendrequest":  entityDecoder[types.FriendRequest](),
	"game":           entityDecoder[types.Game](),
	"group":          entityDecoder[types.Group](),
	"groupdoc":       entityDecoder[types.GroupDoc](),
	"groupmember":    entityDecoder[types.GroupMember](),
	"insight":        entityDecoder[types.Insight](),
	"interest":       entityDecoder[types.Interest](),
	"like":           entityDecoder[types.Like](),
	"link":           entityDecoder[types.Link](),
	"location":       entityDecoder[types.Location](),
	"message":        entityDecoder[types.Message](),
	"movie":          entityDecoder[types.Movie](),
	"music":          entityDecoder[types.Music](),
	"note":           entityDecoder[types.Note](),
	"notification":   entityDecoder[types.Notification](),
	"object":         entityDecoder[types.IdNameEntity](),
	"page":           entityDecoder[types.Page](),
	"permission":     entityDecoder[types.Permission](),
	"photo":          entityDecoder[types.Photo](),
	"place":          entityDecoder[types.Place](),
	"poke":           entityDecoder[types.Poke](),
	"post":           entityDecoder[types.Post](),
	"question":       entityDecoder[types.Question](),
	"questionoption": entityDecoder[types.QuestionOption](),
	"questionvotes":  entityDecoder[types.QuestionVotes](),
	"rsvp":           entityDecoder[types.RSVPStatus](),
	"score":          entityDecoder[types.Score](),
	"subscription":   entityDecoder[types.Subscription](),
	"tag":            entityDecoder[types.Tag](),
	"television":     entityDecoder[types.Television](),
	"testuser":       entityDecoder[types.TestUser](),
	"user":           entityDecoder[types.User](),
	"video":          entityDecoder[types.Video](),
}

// Kinds returns the entity kind names GetObject and GetConnection accept, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(decoders))
	for k := range decoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func decoderFor(op, kind string) (internal.Decoder[types.Entity], error) {
	if kind == "" {
		kind = "object"
	}
	decode, ok := decoders[kind]
	if !ok {
		return nil, pkgerrs.New(pkgerrs.KindEncoding, op, fmt.Sprintf("unknown entity kind %q", kind), nil)
	}
	return decode, nil
}

// GetObject fetches any object and decodes it as kind. An empty kind decodes
// only the id and name. It returns (nil, nil) when the object is not visible.
func (c *Client) GetObject(ctx context.Context, kind, id string, r *reading.Reading) (entity types.Entity, err error) {
	decode, err := decoderFor("GetObject", kind)
	if err != nil {
		return nil, err
	}
	err = c.call(ctx, "GetObject", false, func(ctx context.Context) error {
		resp, err := c.http.Get(ctx, c.build(orMe(id), "", r), nil)
		if err != nil {
			return err
		}
		v, found, err := internal.DecodeEntity(resp.Body, decode)
		if found {
			entity = v
		}
		return err
	})
	return entity, err
}

// GetConnection fetches any list connection and decodes its elements as kind.
// Further pages can be fetched with FetchNext as usual.
func (c *Client) GetConnection(ctx context.Context, kind, id, connection string, r *reading.Reading) (*Page[types.Entity], error) {
	decode, err := decoderFor("GetConnection", kind)
	if err != nil {
		return nil, err
	}
	return fetchListAs(ctx, c, "GetConnection", false, c.build(orMe(id), connection, r), nil, decode)
}
