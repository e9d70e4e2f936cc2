package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatorID   string             `bson:"creatorID" json:"creatorID"`
	CreatedTime time.Time          `bson:"createdTime" json:"createdTime"`
	Message     string             `bson:"message" json:"message"`
	UpdatedTime *time.Time         `bson:"updatedTime" json:"updatedTime"`
	Links       []string           `bson:"links" json:"links"`
	Shares      []string           `bson:"shares" json:"shares"`
}

func NewPost(creatorID, message string, links []string) *Post {
	if links == nil {
		links = []string{}
	}
	return &Post{
		ID:          primitive.NewObjectID(),
		CreatorID:   creatorID,
		CreatedTime: time.Now().UTC(),
		Message:     message,
		Links:       links,
		Shares:      []string{},
	}
}

// AddShare adds userID to the share set and stamps UpdatedTime. The share set
// is deduplicated; the timestamp is stamped on every call regardless.
func (p *Post) AddShare(userID string) bool {
	now := time.Now().UTC()
	p.UpdatedTime = &now
	for _, id := range p.Shares {
		if id == userID {
			return false
		}
	}
	p.Shares = append(p.Shares, userID)
	return true
}

// Update overwrites message and links and stamps UpdatedTime.
func (p *Post) Update(message string, links []string) {
	if links == nil {
		links = []string{}
	}
	now := time.Now().UTC()
	p.Message = message
	p.Links = links
	p.UpdatedTime = &now
}
