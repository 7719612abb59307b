package catalog

import (
	"sort"
	"strings"
)

// Profile describes the business shown on every page.
type Profile struct {
	Name     string            `yaml:"name"`
	Tagline  string            `yaml:"tagline"`
	Phone    string            `yaml:"phone"`
	Email    string            `yaml:"email"`
	Social   map[string]string `yaml:"social"`
	Hours    Hours             `yaml:"hours"`
	Location *Location         `yaml:"location,omitempty"`
	SEO      *SEO              `yaml:"seo,omitempty"`
	Reviews  *Reviews          `yaml:"reviews,omitempty"`
	Services []ServiceOffering `yaml:"services"`
	Gallery  []GalleryImage    `yaml:"gallery"`
}

// Hours carries opening hours either as free text, a structured schedule, or both.
type Hours struct {
	Weekdays string         `yaml:"weekdays"`
	Weekend  string         `yaml:"weekend"`
	Schedule []OpeningHours `yaml:"schedule"`
}

// OpeningHours is one day of the weekly schedule. Times use HH:MM.
type OpeningHours struct {
	Day    string `yaml:"day"`
	Opens  string `yaml:"opens"`
	Closes string `yaml:"closes"`
}

// Location is the optional postal location of the salon.
type Location struct {
	Address    string `yaml:"address"`
	City       string `yaml:"city"`
	Region     string `yaml:"region"`
	Country    string `yaml:"country"`
	PostalCode string `yaml:"postal_code"`
}

// SEO holds site-wide search metadata.
type SEO struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Keywords     string `yaml:"keywords"`
	CanonicalURL string `yaml:"canonical_url"`
	ImageURL     string `yaml:"image_url"`
}

// Reviews summarises customer ratings.
type Reviews struct {
	Rating float64 `yaml:"rating"`
	Count  int     `yaml:"count"`
	Best   float64 `yaml:"best"`
	Worst  float64 `yaml:"worst"`
}

// ServiceOffering is one advertised treatment. Slice order is display order.
type ServiceOffering struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Duration    string `yaml:"duration,omitempty"`
	Keywords    string `yaml:"keywords,omitempty"`
}

// GalleryImage is a picture shown on the gallery page.
type GalleryImage struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption,omitempty"`
}

// SocialLink is a rendered social media profile.
type SocialLink struct {
	Platform string
	Handle   string
	URL      string
}

// Clone returns a deep copy so callers never share maps or slices with the catalog.
func (p Profile) Clone() Profile {
	cp := p
	if p.Social != nil {
		cp.Social = make(map[string]string, len(p.Social))
		for k, v := range p.Social {
			cp.Social[k] = v
		}
	}
	cp.Hours.Schedule = append([]OpeningHours(nil), p.Hours.Schedule...)
	cp.Services = append([]ServiceOffering(nil), p.Services...)
	cp.Gallery = append([]GalleryImage(nil), p.Gallery...)
	if p.Location != nil {
		l := *p.Location
		cp.Location = &l
	}
	if p.SEO != nil {
		s := *p.SEO
		cp.SEO = &s
	}
	if p.Reviews != nil {
		r := *p.Reviews
		cp.Reviews = &r
	}
	return cp
}

// BaseURL returns the canonical site URL without a trailing slash.
func (p Profile) BaseURL() string {
	if p.SEO == nil {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(p.SEO.CanonicalURL), "/")
}

// TelURI returns the phone number as a tel: link target.
func (p Profile) TelURI() string {
	var b strings.Builder
	for _, r := range p.Phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "tel:" + b.String()
}

// SocialLinks returns the social profiles ordered by platform name.
func (p Profile) SocialLinks() []SocialLink {
	platforms := make([]string, 0, len(p.Social))
	for k := range p.Social {
		platforms = append(platforms, k)
	}
	sort.Strings(platforms)
	out := make([]SocialLink, 0, len(platforms))
	for _, platform := range platforms {
		handle := strings.TrimSpace(p.Social[platform])
		if handle == "" {
			continue
		}
		out = append(out, SocialLink{
			Platform: platform,
			Handle:   handle,
			URL:      socialURL(platform, handle),
		})
	}
	return out
}

func socialURL(platform, handle string) string {
	bare := strings.TrimPrefix(handle, "@")
	switch strings.ToLower(platform) {
	case "instagram":
		return "https://www.instagram.com/" + bare + "/"
	case "tiktok":
		return "https://www.tiktok.com/@" + bare
	case "facebook":
		return "https://www.facebook.com/" + bare
	default:
		return ""
	}
}
