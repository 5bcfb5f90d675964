// Package tui is the interactive result browser behind --browse.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anikit/anilist"
	"github.com/anisan-cli/anikit/markup"
	"github.com/anisan-cli/anikit/style"
	"github.com/samber/lo"
)

// Item is one browsable entry.
type Item struct {
	Heading string
	Summary string
	// Body is AniList HTML or markdown; it is flattened with markup.Text before display.
	Body  string
	URL   string
	Color string
}

// Title implements list.DefaultItem.
func (i Item) Title() string {
	return style.Hex(i.Color)(i.Heading)
}

// Description implements list.DefaultItem.
func (i Item) Description() string {
	return i.Summary
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string {
	return i.Heading
}

func (i Item) render(width int) string {
	var b strings.Builder

	if i.Summary != "" {
		b.WriteString(style.Bold(i.Summary))
		b.WriteString("\n\n")
	}

	if body := markup.Text(i.Body); body != "" {
		b.WriteString(markup.Wrap(body, width))
		b.WriteString("\n\n")
	}

	if i.URL != "" {
		b.WriteString(style.Faint(i.URL))
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(lo.Compact(parts), " · ")
}

func score(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n) + "%"
}

func count(n int, singular, plural string) string {
	if n == 0 {
		return ""
	}
	return markup.Quantify(n, singular, plural)
}

// ItemsOf converts an endpoint result slice into items. Unknown types yield nil.
func ItemsOf(v any) []Item {
	switch results := v.(type) {
	case []*anilist.Anime:
		return lo.Map(results, func(a *anilist.Anime, _ int) Item {
			return Item{
				Heading: a.Name(),
				Summary: joinNonEmpty(
					a.Format,
					markup.Capitalize(a.Status),
					count(a.Episodes, "episode", "episodes"),
					score(a.AverageScore),
					strings.Join(a.Genres, ", "),
				),
				Body:  a.Description,
				URL:   a.SiteURL,
				Color: a.CoverImage.Color,
			}
		})
	case []*anilist.Manga:
		return lo.Map(results, func(m *anilist.Manga, _ int) Item {
			return Item{
				Heading: m.Name(),
				Summary: joinNonEmpty(
					m.Format,
					markup.Capitalize(m.Status),
					count(m.Chapters, "chapter", "chapters"),
					score(m.AverageScore),
					strings.Join(m.Genres, ", "),
				),
				Body:  m.Description,
				URL:   m.SiteURL,
				Color: m.CoverImage.Color,
			}
		})
	case []*anilist.Character:
		return lo.Map(results, func(c *anilist.Character, _ int) Item {
			return Item{
				Heading: c.Name.Full,
				Summary: joinNonEmpty(c.Name.Native, c.Gender, count(c.Favourites, "favourite", "favourites")),
				Body:    c.Description,
				URL:     c.SiteURL,
			}
		})
	case []*anilist.Staff:
		return lo.Map(results, func(s *anilist.Staff, _ int) Item {
			return Item{
				Heading: s.Name.Full,
				Summary: joinNonEmpty(s.Name.Native, strings.Join(s.PrimaryOccupations, ", "), s.LanguageV2),
				Body:    s.Description,
				URL:     s.SiteURL,
			}
		})
	case []*anilist.Studio:
		return lo.Map(results, func(s *anilist.Studio, _ int) Item {
			return Item{
				Heading: s.Name,
				Summary: count(s.Favourites, "favourite", "favourites"),
				URL:     s.SiteURL,
			}
		})
	case []*anilist.User:
		return lo.Map(results, func(u *anilist.User, _ int) Item {
			return Item{
				Heading: u.Name,
				Body:    u.About,
				URL:     u.SiteURL,
			}
		})
	case []anilist.MediaList:
		return lo.Map(results, func(e anilist.MediaList, _ int) Item {
			item := Item{
				Heading: lo.Ternary(e.Media != nil, mediaName(e.Media), fmt.Sprintf("media %d", e.MediaID)),
				Summary: joinNonEmpty(
					markup.Capitalize(string(e.Status)),
					fmt.Sprintf("progress %d", e.Progress),
					lo.Ternary(e.Score > 0, fmt.Sprintf("score %g", e.Score), ""),
				),
				Body: e.Notes,
			}
			if e.Media != nil {
				item.URL = e.Media.SiteURL
			}
			return item
		})
	case []*anilist.AiringSchedule:
		return lo.Map(results, func(s *anilist.AiringSchedule, _ int) Item {
			title := fmt.Sprintf("media %d", s.MediaID)
			if s.Media != nil {
				title = s.Media.Title.Name()
			}
			return Item{
				Heading: fmt.Sprintf("%s #%d", title, s.Episode),
				Summary: airingTime(s.AiringAt),
			}
		})
	case []*anilist.Review:
		return lo.Map(results, func(r *anilist.Review, _ int) Item {
			return Item{
				Heading: r.Summary,
				Summary: joinNonEmpty(mediaName(r.Media), score(r.Score), userName(r.User)),
				Body:    r.Body,
				URL:     r.SiteURL,
			}
		})
	case []*anilist.Recommendation:
		return lo.Map(results, func(r *anilist.Recommendation, _ int) Item {
			return Item{
				Heading: mediaName(r.Media) + " → " + mediaName(r.MediaRecommendation),
				Summary: fmt.Sprintf("rating %d", r.Rating),
			}
		})
	case []*anilist.Thread:
		return lo.Map(results, func(t *anilist.Thread, _ int) Item {
			return Item{
				Heading: t.Title,
				Summary: joinNonEmpty(userName(t.User), count(t.ReplyCount, "reply", "replies")),
				Body:    t.Body,
				URL:     t.SiteURL,
			}
		})
	case []*anilist.Activity:
		return lo.Map(results, func(a *anilist.Activity, _ int) Item {
			return Item{
				Heading: joinNonEmpty(userName(a.User), markup.Capitalize(a.Type)),
				Summary: joinNonEmpty(a.Status, a.Progress, mediaName(a.Media)),
				Body:    a.Text,
				URL:     a.SiteURL,
			}
		})
	case []*anilist.Notification:
		return lo.Map(results, func(n *anilist.Notification, _ int) Item {
			return Item{
				Heading: markup.Capitalize(n.Type),
				Summary: joinNonEmpty(mediaName(n.Media), userName(n.User), strings.Join(n.Contexts, ""), n.Context),
			}
		})
	default:
		return nil
	}
}

func mediaName(m *anilist.MediaSummary) string {
	if m == nil {
		return ""
	}
	return m.Title.Name()
}

func userName(u *anilist.UserSummary) string {
	if u == nil {
		return ""
	}
	return u.Name
}

func airingTime(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).Local().Format("Mon 02 Jan 15:04")
}
