package domain

import (
	"slices"
	"time"
)

type Platform string

const (
	PlatformFacebook   Platform = "facebook"
	PlatformGoogle     Platform = "google"
	PlatformTikTok     Platform = "tiktok"
	PlatformUnity      Platform = "unity"
	PlatformIronSource Platform = "ironsource"
)

// Platforms lists every platform in display order.
var Platforms = []Platform{PlatformFacebook, PlatformGoogle, PlatformTikTok, PlatformUnity, PlatformIronSource}

func (p Platform) Valid() bool { return slices.Contains(Platforms, p) }

type CreativeType string

const (
	CreativeVideo    CreativeType = "video"
	CreativeStatic   CreativeType = "static"
	CreativePlayable CreativeType = "playable"
)

var CreativeTypes = []CreativeType{CreativeVideo, CreativeStatic, CreativePlayable}

func (t CreativeType) Valid() bool { return slices.Contains(CreativeTypes, t) }

type CreativeStatus string

const (
	StatusActive   CreativeStatus = "active"
	StatusPaused   CreativeStatus = "paused"
	StatusTesting  CreativeStatus = "testing"
	StatusArchived CreativeStatus = "archived"
)

var CreativeStatuses = []CreativeStatus{StatusActive, StatusPaused, StatusTesting, StatusArchived}

func (s CreativeStatus) Valid() bool { return slices.Contains(CreativeStatuses, s) }

// CreativeElements describes what an ad shows. Character is only set for
// video and playable creatives.
type CreativeElements struct {
	Hook      string `json:"hook"`
	Character string `json:"character,omitempty"`
	Theme     string `json:"theme"`
	CTA       string `json:"cta"`
}

// Creative represents an advertising asset running on one platform.
// Duration is in seconds and only meaningful for video creatives.
type Creative struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         CreativeType     `json:"type"`
	Platform     Platform         `json:"platform"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	Duration     *int             `json:"duration,omitempty"`
	CreatedDate  time.Time        `json:"createdDate"`
	Status       CreativeStatus   `json:"status"`
	Elements     CreativeElements `json:"elements"`
}

// CreativeFilter narrows a creative listing. Zero-valued fields do not
// filter. Search matches name, hook and theme case-insensitively.
type CreativeFilter struct {
	Status   CreativeStatus
	Platform Platform
	Type     CreativeType
	Search   string
}

// Empty reports whether no criterion is set.
func (f CreativeFilter) Empty() bool {
	return f == CreativeFilter{}
}

// CreativePatch is a shallow partial update. A non-nil field replaces the
// stored value entirely, Elements included.
type CreativePatch struct {
	Name         *string           `json:"name"`
	Type         *CreativeType     `json:"type"`
	Platform     *Platform         `json:"platform"`
	ThumbnailURL *string           `json:"thumbnailUrl"`
	Duration     *int              `json:"duration"`
	CreatedDate  *time.Time        `json:"createdDate"`
	Status       *CreativeStatus   `json:"status"`
	Elements     *CreativeElements `json:"elements"`
}

// Apply returns c with every set field of p copied over.
func (p CreativePatch) Apply(c Creative) Creative {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.ThumbnailURL != nil {
		c.ThumbnailURL = *p.ThumbnailURL
	}
	if p.Duration != nil {
		d := *p.Duration
		c.Duration = &d
	}
	if p.CreatedDate != nil {
		c.CreatedDate = *p.CreatedDate
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Elements != nil {
		c.Elements = *p.Elements
	}
	return c
}
