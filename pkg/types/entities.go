package types

import "encoding/json"

// User contains the profile of a person.
type User struct {
	Object
	Name             string        `json:"name"`
	FirstName        string        `json:"first_name"`
	MiddleName       string        `json:"middle_name,omitempty"`
	LastName         string        `json:"last_name"`
	Gender           string        `json:"gender,omitempty"`
	Locale           string        `json:"locale,omitempty"`
	Link             string        `json:"link,omitempty"`
	Username         string        `json:"username,omitempty"`
	ThirdPartyID     string        `json:"third_party_id,omitempty"`
	Installed        *bool         `json:"installed,omitempty"`
	Timezone         *float64      `json:"timezone,omitempty"`
	UpdatedTime      Time          `json:"updated_time"`
	Verified         *bool         `json:"verified,omitempty"`
	Bio              string        `json:"bio,omitempty"`
	Birthday         string        `json:"birthday,omitempty"`
	Email            string        `json:"email,omitempty"`
	Hometown         *IdNameEntity `json:"hometown,omitempty"`
	Location         *IdNameEntity `json:"location,omitempty"`
	Political        string        `json:"political,omitempty"`
	Quotes           string        `json:"quotes,omitempty"`
	Relationship     string        `json:"relationship_status,omitempty"`
	Religion         string        `json:"religion,omitempty"`
	SignificantOther *IdNameEntity `json:"significant_other,omitempty"`
	Website          string        `json:"website,omitempty"`
	InterestedIn     []string      `json:"interested_in,omitempty"`
}

// Account is a page or application the user administers.
type Account struct {
	Object
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	AccessToken string   `json:"access_token,omitempty"`
	Perms       []string `json:"perms,omitempty"`
}

// Achievement is an instance of an application achievement earned by a user.
type Achievement struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	StartTime   Time          `json:"start_time"`
	EndTime     Time          `json:"end_time"`
	PublishTime Time          `json:"publish_time"`
	Application *IdNameEntity `json:"application,omitempty"`
	Achievement *Category     `json:"achievement,omitempty"`
	Likes       *Summary      `json:"likes,omitempty"`
	Comments    *Summary      `json:"comments,omitempty"`
	Importance  *int          `json:"importance,omitempty"`
}

// Summary is the embedded count block returned for likes and comments.
type Summary struct {
	Count int `json:"count"`
}

// Activity is an activity the user lists on their profile.
type Activity struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Album is a photo album.
type Album struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Link        string        `json:"link,omitempty"`
	CoverPhoto  string        `json:"cover_photo,omitempty"`
	Privacy     string        `json:"privacy,omitempty"`
	Count       int           `json:"count"`
	Type        string        `json:"type,omitempty"`
	CanUpload   *bool         `json:"can_upload,omitempty"`
	CreatedTime Time          `json:"created_time"`
	UpdatedTime Time          `json:"updated_time"`
}

// Book is a book the user likes.
type Book struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Checkin is a location visit.
type Checkin struct {
	Object
	From        *IdNameEntity       `json:"from,omitempty"`
	Tags        *List[IdNameEntity] `json:"tags,omitempty"`
	Place       *Place              `json:"place,omitempty"`
	Application *IdNameEntity       `json:"application,omitempty"`
	Message     string              `json:"message,omitempty"`
	CreatedTime Time                `json:"created_time"`
	Type        string              `json:"type,omitempty"`
}

// List is a nested, un-paged list as found in attributes such as "tags" or "likes".
type List[T any] struct {
	Data []T `json:"data"`
}

// Comment is a comment on an object.
type Comment struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Message     string        `json:"message"`
	CanRemove   *bool         `json:"can_remove,omitempty"`
	CreatedTime Time          `json:"created_time"`
	LikeCount   int           `json:"like_count"`
	UserLikes   *bool         `json:"user_likes,omitempty"`
	// Replies, present when requested with a nested comments field
	Comments *List[Comment] `json:"comments,omitempty"`
	Parent   *Object        `json:"parent,omitempty"`
}

// Domain is a web domain registered with the service.
type Domain struct {
	Object
	Name string `json:"name"`
}

// Event is a scheduled event.
type Event struct {
	Object
	Owner       *IdNameEntity `json:"owner,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	StartTime   Time          `json:"start_time"`
	EndTime     Time          `json:"end_time"`
	Location    string        `json:"location,omitempty"`
	Venue       *Venue        `json:"venue,omitempty"`
	Privacy     string        `json:"privacy,omitempty"`
	RSVPStatus  string        `json:"rsvp_status,omitempty"`
	Picture     string        `json:"picture,omitempty"`
	UpdatedTime Time          `json:"updated_time"`
}

// Venue is the structured location of an event or place.
type Venue struct {
	Street    string   `json:"street,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Zip       string   `json:"zip,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// RSVPStatus is an entry of an event's invited/attending/maybe/declined/noreply lists.
type RSVPStatus struct {
	Object
	Name       string `json:"name"`
	RSVPStatus string `json:"rsvp_status,omitempty"`
}

// FamilyMember is a relative listed on a profile.
type FamilyMember struct {
	IdNameEntity
	Relationship string `json:"relationship"`
}

// Post is an entry in a feed.
type Post struct {
	Object
	From        *IdNameEntity       `json:"from,omitempty"`
	To          *List[IdNameEntity] `json:"to,omitempty"`
	Message     string              `json:"message,omitempty"`
	Picture     string              `json:"picture,omitempty"`
	Link        string              `json:"link,omitempty"`
	Name        string              `json:"name,omitempty"`
	Caption     string              `json:"caption,omitempty"`
	Description string              `json:"description,omitempty"`
	Source      string              `json:"source,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Type        string              `json:"type,omitempty"`
	StatusType  string              `json:"status_type,omitempty"`
	Story       string              `json:"story,omitempty"`
	ObjectID    string              `json:"object_id,omitempty"`
	Place       *Place              `json:"place,omitempty"`
	Application *IdNameEntity       `json:"application,omitempty"`
	Likes       *List[IdNameEntity] `json:"likes,omitempty"`
	Comments    *List[Comment]      `json:"comments,omitempty"`
	Shares      *Summary            `json:"shares,omitempty"`
	CreatedTime Time                `json:"created_time"`
	UpdatedTime Time                `json:"updated_time"`
}

// Like is an object the user (or another object) likes.
type Like struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Friendlist is a user-defined grouping of friends.
type Friendlist struct {
	Object
	Name     string `json:"name"`
	ListType string `json:"list_type,omitempty"`
}

// FriendRequest is a pending friend request.
type FriendRequest struct {
	From        *IdNameEntity `json:"from,omitempty"`
	To          *IdNameEntity `json:"to,omitempty"`
	Message     string        `json:"message,omitempty"`
	CreatedTime Time          `json:"created_time"`
	Unread      bool          `json:"unread"`
}

// GetID returns the ID of the requester. Friend requests have no ID of their own.
func (f FriendRequest) GetID() string {
	if f.From == nil {
		return ""
	}
	return f.From.ID
}

// Friend is an entry of a friends connection.
type Friend struct {
	IdNameEntity
}

// Game is a game the user lists.
type Game struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Movie is a movie the user lists.
type Movie struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Music is a musician or band the user lists.
type Music struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Television is a show the user lists.
type Television struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Interest is an interest the user lists.
type Interest struct {
	Category
	CreatedTime Time `json:"created_time"`
}

// Group is a user group.
type Group struct {
	Object
	Owner       *IdNameEntity `json:"owner,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Link        string        `json:"link,omitempty"`
	Privacy     string        `json:"privacy,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Version     int           `json:"version,omitempty"`
	UpdatedTime Time          `json:"updated_time"`
}

// GroupMember is a member of a group.
type GroupMember struct {
	Object
	Name          string `json:"name"`
	Administrator bool   `json:"administrator"`
}

// GroupDoc is a document attached to a group.
type GroupDoc struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Revision    int64         `json:"revision,omitempty"`
	CanEdit     *bool         `json:"can_edit,omitempty"`
	CanDelete   *bool         `json:"can_delete,omitempty"`
	CreatedTime Time          `json:"created_time"`
	UpdatedTime Time          `json:"updated_time"`
}

// Message is a message or thread in the user's mailbox.
type Message struct {
	Object
	From        *IdNameEntity       `json:"from,omitempty"`
	To          *List[IdNameEntity] `json:"to,omitempty"`
	Message     string              `json:"message,omitempty"`
	Subject     string              `json:"subject,omitempty"`
	Unread      int                 `json:"unread"`
	Unseen      int                 `json:"unseen"`
	Comments    *List[Comment]      `json:"comments,omitempty"`
	UpdatedTime Time                `json:"updated_time"`
	CreatedTime Time                `json:"created_time"`
}

// Link is a shared link.
type Link struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Link        string        `json:"link"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Icon        string        `json:"icon,omitempty"`
	Picture     string        `json:"picture,omitempty"`
	Message     string        `json:"message,omitempty"`
	CreatedTime Time          `json:"created_time"`
}

// Location is a tagged location of a post, photo or checkin.
type Location struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Place       *Place        `json:"place,omitempty"`
	Application *IdNameEntity `json:"application,omitempty"`
	Type        string        `json:"type,omitempty"`
	CreatedTime Time          `json:"created_time"`
}

// Note is a note.
type Note struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	Icon        string        `json:"icon,omitempty"`
	CreatedTime Time          `json:"created_time"`
	UpdatedTime Time          `json:"updated_time"`
}

// Notification is an entry of the user's notification stream.
type Notification struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	To          *IdNameEntity `json:"to,omitempty"`
	Application *IdNameEntity `json:"application,omitempty"`
	Title       string        `json:"title"`
	Link        string        `json:"link,omitempty"`
	Unread      int           `json:"unread"`
	CreatedTime Time          `json:"created_time"`
	UpdatedTime Time          `json:"updated_time"`
}

// Page is a public page.
type Page struct {
	Object
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Link         string `json:"link,omitempty"`
	Picture      string `json:"picture,omitempty"`
	Website      string `json:"website,omitempty"`
	About        string `json:"about,omitempty"`
	Likes        int64  `json:"likes,omitempty"`
	TalkingAbout int64  `json:"talking_about_count,omitempty"`
	IsPublished  *bool  `json:"is_published,omitempty"`
	CanPost      *bool  `json:"can_post,omitempty"`
	Location     *Venue `json:"location,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CreatedTime  Time   `json:"created_time"`
}

// Permission is a granted (or declined) permission.
type Permission struct {
	Name   string `json:"permission"`
	Status string `json:"status,omitempty"`
}

// GetID returns the permission name.
func (p Permission) GetID() string {
	return p.Name
}

// Photo is a photo.
type Photo struct {
	Object
	From          *IdNameEntity `json:"from,omitempty"`
	Tags          *List[Tag]    `json:"tags,omitempty"`
	Name          string        `json:"name,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	Picture       string        `json:"picture,omitempty"`
	Source        string        `json:"source,omitempty"`
	Height        int           `json:"height"`
	Width         int           `json:"width"`
	Images        []Image       `json:"images,omitempty"`
	Link          string        `json:"link,omitempty"`
	Place         *Place        `json:"place,omitempty"`
	Position      int           `json:"position,omitempty"`
	BackdatedTime Time          `json:"backdated_time"`
	CreatedTime   Time          `json:"created_time"`
	UpdatedTime   Time          `json:"updated_time"`
}

// Image is one rendition of a photo.
type Image struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Source string `json:"source"`
}

// Tag places a user on a photo or video.
type Tag struct {
	IdNameEntity
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	CreatedTime Time     `json:"created_time"`
}

// Poke is a poke between two users.
type Poke struct {
	From        *IdNameEntity `json:"from,omitempty"`
	To          *IdNameEntity `json:"to,omitempty"`
	CreatedTime Time          `json:"created_time"`
}

// GetID returns the ID of the poking user. Pokes have no ID of their own.
func (p Poke) GetID() string {
	if p.From == nil {
		return ""
	}
	return p.From.ID
}

// Question is a question posted by a user.
type Question struct {
	Object
	From        *IdNameEntity         `json:"from,omitempty"`
	Question    string                `json:"question"`
	Options     *List[QuestionOption] `json:"options,omitempty"`
	CreatedTime Time                  `json:"created_time"`
	UpdatedTime Time                  `json:"updated_time"`
}

// QuestionOption is one answer of a question.
type QuestionOption struct {
	Object
	From        *IdNameEntity `json:"from,omitempty"`
	Name        string        `json:"name"`
	Votes       int           `json:"vote_count"`
	Page        *Page         `json:"object,omitempty"`
	CreatedTime Time          `json:"created_time"`
}

// QuestionVotes is a question option together with the users who voted for it.
type QuestionVotes struct {
	Object
	Name  string              `json:"name"`
	Votes *List[IdNameEntity] `json:"votes,omitempty"`
}

// Score is a game score.
type Score struct {
	User        *IdNameEntity `json:"user,omitempty"`
	Application *IdNameEntity `json:"application,omitempty"`
	Score       int           `json:"score"`
	Type        string        `json:"type,omitempty"`
}

// GetID returns the ID of the scoring user.
func (s Score) GetID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// Subscription is a subscriber or subscribed-to relation.
type Subscription struct {
	IdNameEntity
}

// Video is a video.
type Video struct {
	Object
	From        *IdNameEntity       `json:"from,omitempty"`
	Tags        *List[IdNameEntity] `json:"tags,omitempty"`
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Picture     string              `json:"picture,omitempty"`
	EmbedHTML   string              `json:"embed_html,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Source      string              `json:"source,omitempty"`
	Length      float64             `json:"length,omitempty"`
	CreatedTime Time                `json:"created_time"`
	UpdatedTime Time                `json:"updated_time"`
}

// Insight is a metric series.
type Insight struct {
	Object
	Name        string         `json:"name"`
	Period      string         `json:"period"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Values      []InsightValue `json:"values"`
}

// InsightValue is one data point of an Insight.
type InsightValue struct {
	Value   json.RawMessage `json:"value"`
	EndTime Time            `json:"end_time"`
}

// Place is a location page returned by place searches and checkins.
type Place struct {
	Object
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Location *Venue `json:"location,omitempty"`
}

// TestUser is an application test account.
type TestUser struct {
	Object
	AccessToken string `json:"access_token,omitempty"`
	LoginURL    string `json:"login_url,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
}

// FQLResult is one named result set of a multi-query.
type FQLResult struct {
	Name      string            `json:"name"`
	ResultSet []json.RawMessage `json:"fql_result_set"`
}
