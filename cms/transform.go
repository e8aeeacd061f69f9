package cms

import (
	"fmt"
	"strings"

	log "github.com/Sirupsen/logrus"
	"jaytaylor.com/html2text"

	"github.com/lexcounsel/site-backend/consts"
)

type MemberView struct {
	ID       int               `json:"id"`
	Title    string            `json:"title"`
	Position string            `json:"position"`
	Image    string            `json:"image"`
	Icons    map[string]string `json:"icons"`
	Links    map[string]string `json:"links"`
}

type SlideView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink,omitempty"`
}

type Testimonial struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

type TestimonialsView struct {
	Testimonials       []Testimonial `json:"testimonials"`
	SectionTitle       string        `json:"sectionTitle,omitempty"`
	SectionDescription string        `json:"sectionDescription,omitempty"`
}

var memberIcons = map[string]string{
	"whatsapp": "/whats.svg",
	"phone":    "/phone.svg",
	"email":    "/mes.svg",
}

// TeamMembers flattens the first team section into display cards.
func TeamMembers(resp *TeamSectionResponse, mediaURL string) []MemberView {
	if resp == nil || len(resp.Data) == 0 {
		return []MemberView{}
	}

	members := resp.Data[0].TeamMembers
	res := make([]MemberView, len(members))
	for i, m := range members {
		image := ""
		if m.MemberImage != nil {
			image = absoluteURL(mediaURL, m.MemberImage.URL)
		}
		icons := make(map[string]string, len(memberIcons))
		for k, v := range memberIcons {
			icons[k] = v
		}
		res[i] = MemberView{
			ID:       m.ID,
			Title:    m.Name,
			Position: PlainText(m.Description),
			Image:    image,
			Icons:    icons,
			Links: map[string]string{
				"whatsapp": m.MemberLinks.WhatsappLink,
				"phone":    "tel:" + m.MemberLinks.PhoneNumber,
				"email":    "mailto:" + m.MemberLinks.Email,
			},
		}
	}
	return res
}

func HeroSlides(resp *HeroSectionResponse) []SlideView {
	if resp == nil || len(resp.Data) == 0 {
		return []SlideView{}
	}

	slides := resp.Data[0].HeroSection
	res := make([]SlideView, len(slides))
	for i, s := range slides {
		res[i] = SlideView{
			ID:          fmt.Sprintf("slide-%d", s.ID),
			Title:       s.Title,
			Description: PlainText(s.Description),
			CTAText:     s.CTAText,
			CTALink:     s.CTALink.String,
		}
	}
	return res
}

func Testimonials(resp *ClientSectionResponse, mediaURL string) TestimonialsView {
	view := TestimonialsView{Testimonials: []Testimonial{}}
	if resp == nil || len(resp.Data) == 0 {
		return view
	}

	section := resp.Data[0]
	view.SectionTitle = section.SectionTitle.String
	view.SectionDescription = section.SectionDescription.String
	for _, item := range section.ClientData {
		image := consts.DEFAULT_CLIENT_IMAGE
		if item.ClientImage != nil && item.ClientImage.URL != "" {
			image = absoluteURL(mediaURL, item.ClientImage.URL)
		}
		view.Testimonials = append(view.Testimonials, Testimonial{
			Name:  item.Name,
			Title: item.Position,
			Text:  PlainText(item.Review),
			Image: image,
		})
	}
	return view
}

// PlainText renders CMS rich text as plain text. Plain input is returned as is.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	text, err := html2text.FromString(s, html2text.Options{OmitLinks: true})
	if err != nil {
		log.Warnf("PlainText: %s", err.Error())
		return s
	}
	return text
}

func absoluteURL(mediaURL, u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http"):
		return u
	case strings.HasPrefix(u, "/"):
		return mediaURL + u
	default:
		return mediaURL + "/" + u
	}
}
