package handlers

import (
	"AI-Recipe-Backend/domain"
	"AI-Recipe-Backend/internal/api/presenters"
	"AI-Recipe-Backend/internal/utils"
	"AI-Recipe-Backend/pkg/recipe"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const feedItemLimit = 50

type (
	FeedHandler interface {
		RSS(c *fiber.Ctx) error
		Sitemap(c *fiber.Ctx) error
		Robots(c *fiber.Ctx) error
	}

	feedHandler struct {
		recipeService recipe.RecipeService
	}

	rssFeed struct {
		XMLName xml.Name   `xml:"rss"`
		Version string     `xml:"version,attr"`
		Channel rssChannel `xml:"channel"`
	}

	rssChannel struct {
		Title       string    `xml:"title"`
		Link        string    `xml:"link"`
		Description string    `xml:"description"`
		Language    string    `xml:"language"`
		Items       []rssItem `xml:"item"`
	}

	rssItem struct {
		Title       string `xml:"title"`
		Link        string `xml:"link"`
		Description string `xml:"description"`
		GUID        string `xml:"guid"`
		PubDate     string `xml:"pubDate"`
	}

	sitemapURLSet struct {
		XMLName xml.Name     `xml:"urlset"`
		Xmlns   string       `xml:"xmlns,attr"`
		URLs    []sitemapURL `xml:"url"`
	}

	sitemapURL struct {
		Loc     string `xml:"loc"`
		LastMod string `xml:"lastmod,omitempty"`
	}
)

func NewFeedHandler(recipeService recipe.RecipeService) FeedHandler {
	return &feedHandler{recipeService: recipeService}
}

func (h *feedHandler) RSS(c *fiber.Ctx) error {
	baseURL := utils.GetConfig("APP_URL")

	recipes, err := h.recipeService.ListRecentRecipes(c.Context(), feedItemLimit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "AI 菜谱",
			Link:        baseURL,
			Description: "最新生成的菜谱",
			Language:    "zh-cn",
		},
	}
	for _, r := range recipes {
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       r.RecipeName,
			Link:        fmt.Sprintf("%s/recipe/%s", baseURL, r.Slug),
			Description: r.Description,
			GUID:        fmt.Sprintf("%s/recipe/%s", baseURL, r.Slug),
			PubDate:     r.CreatedAt.Format(time.RFC1123Z),
		})
	}

	body, err := xml.Marshal(feed)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(xml.Header + string(body))
}

func (h *feedHandler) Sitemap(c *fiber.Ctx) error {
	baseURL := utils.GetConfig("APP_URL")

	recipes, err := h.recipeService.ListRecentRecipes(c.Context(), feedItemLimit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: baseURL}},
	}
	for _, r := range recipes {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/recipe/%s", baseURL, r.Slug),
			LastMod: r.CreatedAt.Format("2006-01-02"),
		})
	}

	body, err := xml.Marshal(urlSet)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xml.Header + string(body))
}

func (h *feedHandler) Robots(c *fiber.Ctx) error {
	baseURL := utils.GetConfig("APP_URL")

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", baseURL))
}
