package api

import (
	"context"
	"net/http"
	"sync"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/gin-gonic/gin.v1"

	"github.com/lexcounsel/site-backend/cms"
	"github.com/lexcounsel/site-backend/consts"
)

type SectionsSource interface {
	Team(ctx context.Context, locale string) (*cms.TeamSectionResponse, error)
	Hero(ctx context.Context, locale string) (*cms.HeroSectionResponse, error)
	Clients(ctx context.Context, locale string) (*cms.ClientSectionResponse, error)
}

func TeamHandler(c *gin.Context) {
	var r BaseRequest
	if c.Bind(&r) != nil {
		return
	}
	locale := requestLocale(c, r)

	resp, err := c.MustGet("SECTIONS").(SectionsSource).Team(c.Request.Context(), locale)
	if err != nil {
		abortSection(c, consts.SECTION_TEAM, err)
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		Locale:  locale,
		Members: cms.TeamMembers(resp, mediaURL(c)),
	})
}

func HeroHandler(c *gin.Context) {
	var r BaseRequest
	if c.Bind(&r) != nil {
		return
	}
	locale := requestLocale(c, r)

	resp, err := c.MustGet("SECTIONS").(SectionsSource).Hero(c.Request.Context(), locale)
	if err != nil {
		abortSection(c, consts.SECTION_HERO, err)
		return
	}

	c.JSON(http.StatusOK, HeroResponse{
		Locale: locale,
		Slides: cms.HeroSlides(resp),
	})
}

func ClientsHandler(c *gin.Context) {
	var r BaseRequest
	if c.Bind(&r) != nil {
		return
	}
	locale := requestLocale(c, r)

	resp, err := c.MustGet("SECTIONS").(SectionsSource).Clients(c.Request.Context(), locale)
	if err != nil {
		abortSection(c, consts.SECTION_CLIENTS, err)
		return
	}

	c.JSON(http.StatusOK, ClientsResponse{
		Locale:           locale,
		TestimonialsView: cms.Testimonials(resp, mediaURL(c)),
	})
}

// HomePageHandler loads all sections concurrently. One broken section does
// not take the page down.
func HomePageHandler(c *gin.Context) {
	var r BaseRequest
	if c.Bind(&r) != nil {
		return
	}
	locale := requestLocale(c, r)
	sections := c.MustGet("SECTIONS").(SectionsSource)
	media := mediaURL(c)
	ctx := c.Request.Context()

	res := HomeResponse{Locale: locale}
	var mu sync.Mutex
	failed := func(section string, err error) {
		log.Errorf("home page %s section: %s", section, err.Error())
		mu.Lock()
		defer mu.Unlock()
		if res.Errors == nil {
			res.Errors = make(map[string]string)
		}
		res.Errors[section] = consts.SECTION_ERRORS[section]
	}

	var g errgroup.Group
	g.Go(func() error {
		resp, err := sections.Team(ctx, locale)
		if err != nil {
			failed(consts.SECTION_TEAM, err)
			return nil
		}
		members := cms.TeamMembers(resp, media)
		mu.Lock()
		res.Team = members
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		resp, err := sections.Hero(ctx, locale)
		if err != nil {
			failed(consts.SECTION_HERO, err)
			return nil
		}
		slides := cms.HeroSlides(resp)
		mu.Lock()
		res.Hero = slides
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		resp, err := sections.Clients(ctx, locale)
		if err != nil {
			failed(consts.SECTION_CLIENTS, err)
			return nil
		}
		view := cms.Testimonials(resp, media)
		mu.Lock()
		res.Clients = &view
		mu.Unlock()
		return nil
	})
	g.Wait()

	c.JSON(http.StatusOK, res)
}

func abortSection(c *gin.Context, section string, err error) {
	log.Errorf("%s section: %s", section, err.Error())
	if cause := errors.Cause(err); cause == context.Canceled || cause == context.DeadlineExceeded {
		NewTimeoutError(errors.Wrap(err, section)).Abort(c)
		return
	}
	NewBadGatewayError(errors.New(consts.SECTION_ERRORS[section])).Abort(c)
}

func mediaURL(c *gin.Context) string {
	if v, ok := c.Get("MEDIA_URL"); ok {
		return v.(string)
	}
	return ""
}
