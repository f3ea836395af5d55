package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	graph "github.com/jamesprial/go-graph-api-wrapper"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/reading"
	"github.com/jamesprial/go-graph-api-wrapper/pkg/types"
)

func fieldsReading(fields []string, limit int) *reading.Reading {
	return reading.New().Fields(fields...).Limit(limit)
}

func (a *app) meCommand() *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			user, err := client.GetMe(cmd.Context(), fieldsReading(fields, 0))
			if err != nil {
				return err
			}
			return a.render(user)
		},
	}
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "fields to select")
	return cmd
}

func (a *app) getCommand() *cobra.Command {
	var (
		kind   string
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			entity, err := client.GetObject(cmd.Context(), kind, args[0], fieldsReading(fields, 0))
			if err != nil {
				return err
			}
			if entity == nil {
				return fmt.Errorf("%s is not visible", args[0])
			}
			return a.render(entity)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "entity kind used to decode the object, see `graphctl kinds`")
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "fields to select")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	var (
		kind   string
		fields []string
		limit  int
		pages  int
	)
	cmd := &cobra.Command{
		Use:   "list <id> <connection>",
		Short: "List a connection, following next cursors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			page, err := client.GetConnection(ctx, kind, args[0], args[1], fieldsReading(fields, limit))
			if err != nil {
				return err
			}
			items := page.Data
			for fetched := 1; fetched < pages && page.HasNext(); fetched++ {
				if page, err = graph.FetchNext(ctx, client, page); err != nil {
					return err
				}
				items = append(items, page.Data...)
			}
			return a.render(pageView[types.Entity]{Data: items, Paging: page.Paging})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "entity kind used to decode elements")
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "fields to select")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "page size")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "maximum number of pages to fetch")
	return cmd
}

func (a *app) searchCommand() *cobra.Command {
	var (
		objectType string
		center     string
		distance   int
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search public objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			r := reading.New().Limit(limit)
			var result any
			switch objectType {
			case "":
				result, err = view(client.Search(ctx, query, r))
			case "post":
				result, err = view(client.SearchPosts(ctx, query, r))
			case "user":
				result, err = view(client.SearchUsers(ctx, query, r))
			case "page":
				result, err = view(client.SearchPages(ctx, query, r))
			case "event":
				result, err = view(client.SearchEvents(ctx, query, r))
			case "group":
				result, err = view(client.SearchGroups(ctx, query, r))
			case "checkin":
				result, err = view(client.SearchCheckins(ctx, r))
			case "place", "location":
				loc, perr := parseCenter(center)
				if perr != nil {
					return perr
				}
				if objectType == "place" {
					result, err = view(client.SearchPlaces(ctx, query, loc, distance, r))
				} else {
					result, err = view(client.SearchLocations(ctx, loc, distance, r))
				}
			default:
				return fmt.Errorf("unsupported --type %q", objectType)
			}
			if err != nil {
				return err
			}
			return a.render(result)
		},
	}
	cmd.Flags().StringVar(&objectType, "type", "", "object type: post, user, page, event, group, place, checkin or location")
	cmd.Flags().StringVar(&center, "center", "", "latitude,longitude for place and location searches")
	cmd.Flags().IntVar(&distance, "distance", 1000, "radius in meters for place and location searches")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "page size")
	return cmd
}

// pageView is the rendered form of a page: the decoded elements and the last
// paging block.
type pageView[T any] struct {
	Data   []T          `json:"data"`
	Paging types.Paging `json:"paging"`
}

func view[T any](page *graph.Page[T], err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return pageView[T]{Data: page.Data, Paging: page.Paging}, nil
}

func parseCenter(s string) (types.GeoLocation, error) {
	lat, long, ok := strings.Cut(s, ",")
	if !ok {
		return types.GeoLocation{}, fmt.Errorf("--center must be latitude,longitude, got %q", s)
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return types.GeoLocation{}, fmt.Errorf("invalid latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(long), 64)
	if err != nil {
		return types.GeoLocation{}, fmt.Errorf("invalid longitude: %w", err)
	}
	return types.GeoLocation{Latitude: latitude, Longitude: longitude}, nil
}

func (a *app) fqlCommand() *cobra.Command {
	var multi map[string]string
	cmd := &cobra.Command{
		Use:   "fql [query]",
		Short: "Run an FQL query, or several named ones with --multi",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (len(multi) > 0) {
				return fmt.Errorf("pass either a query or --multi")
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			if len(multi) > 0 {
				results, err := client.ExecuteMultiFQL(cmd.Context(), multi)
				if err != nil {
					return err
				}
				return a.render(results)
			}
			rows, err := client.ExecuteFQL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(rows)
		},
	}
	cmd.Flags().StringToStringVar(&multi, "multi", nil, "named queries, e.g. friends='SELECT uid2 FROM friend WHERE uid1=me()'")
	return cmd
}

func (a *app) pictureCommand() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "picture [user-id]",
		Short: "Print the picture URL of a user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch types.PictureSize(size) {
			case "", types.PictureSquare, types.PictureSmall, types.PictureNormal, types.PictureLarge:
			default:
				return fmt.Errorf("invalid --size %q", size)
			}
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			u, err := client.GetPictureURL(cmd.Context(), id, types.PictureSize(size))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, u.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", "", "square, small, normal or large")
	return cmd
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the entity kinds accepted by --kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(graph.Kinds())
		},
	}
}
