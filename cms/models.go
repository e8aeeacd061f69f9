package cms

import (
	"github.com/volatiletech/null/v8"
)

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Fields common to every localized single-type section.
type SectionBase struct {
	ID                 int         `json:"id"`
	DocumentID         string      `json:"documentId"`
	SectionTitle       null.String `json:"sectionTitle"`
	SectionDescription null.String `json:"sectionDescription"`
	CreatedAt          string      `json:"createdAt"`
	UpdatedAt          string      `json:"updatedAt"`
	PublishedAt        string      `json:"publishedAt"`
	Locale             string      `json:"locale"`
}

type ImageFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type ImageFormats struct {
	Thumbnail *ImageFormat `json:"thumbnail,omitempty"`
	Small     *ImageFormat `json:"small,omitempty"`
	Medium    *ImageFormat `json:"medium,omitempty"`
	Large     *ImageFormat `json:"large,omitempty"`
}

type Media struct {
	ID      int          `json:"id"`
	URL     string       `json:"url"`
	Formats ImageFormats `json:"formats"`
}

type MemberLinks struct {
	ID           int    `json:"id"`
	WhatsappLink string `json:"whatsappLink"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
}

type TeamMember struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MemberImage *Media      `json:"memberImage"`
	MemberIcons *Media      `json:"memberIcons"`
	MemberLinks MemberLinks `json:"Memberlinks"`
}

type TeamSection struct {
	SectionBase
	TeamMembers []TeamMember `json:"teamMembers"`
}

type TeamSectionResponse struct {
	Data []TeamSection `json:"data"`
	Meta Meta          `json:"meta"`
}

type HeroSlide struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CTAText     string      `json:"ctaText"`
	CTALink     null.String `json:"ctaLink"`
}

type HeroSection struct {
	SectionBase
	HeroSection []HeroSlide `json:"heroSection"`
}

type HeroSectionResponse struct {
	Data []HeroSection `json:"data"`
	Meta Meta          `json:"meta"`
}

type ClientItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Review      string `json:"review"`
	Position    string `json:"position"`
	ClientImage *Media `json:"clientImage"`
}

type ClientSection struct {
	SectionBase
	ClientData []ClientItem `json:"clientData"`
}

type ClientSectionResponse struct {
	Data []ClientSection `json:"data"`
	Meta Meta            `json:"meta"`
}

type Subscription struct {
	ID    int         `json:"id"`
	Email string      `json:"email"`
	Date  null.String `json:"date"`
}

type subscriptionsResponse struct {
	Data []Subscription `json:"data"`
	Meta Meta           `json:"meta"`
}

type subscriptionRequest struct {
	Data subscriptionData `json:"data"`
}

type subscriptionData struct {
	Email string `json:"email"`
	Date  string `json:"date"`
}

// errorResponse is the CMS error envelope.
type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}
