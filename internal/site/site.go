// Package site holds the static metadata of the blog: titles, author, bio,
// social links and the banner phrases.
package site

// Metadata describes the site chrome.
type Metadata struct {
	Title         string `json:"title"`
	FooterTitle   string `json:"footer_title"`
	PageTitle     string `json:"page_title"`
	PostTitle     string `json:"post_title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	IndexPageSize int    `json:"index_page_size"`
}

// SocialLink is one entry in the banner's icon row.
type SocialLink struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

// Profile is the bio shown under the banner and at the end of every post.
type Profile struct {
	Bio      string       `json:"bio"`
	Tagline  string       `json:"tagline"`
	Location string       `json:"location"`
	Social   []SocialLink `json:"social"`
}

var Default = Metadata{
	Title:         " Home",
	FooterTitle:   "Thanks for reading!",
	PageTitle:     "Blog",
	PostTitle:     "🏠 Nik ~ Home",
	Author:        "Nikola Cucakovic",
	Description:   "Nikola Cucakovic's blog for all things security and or technology related.",
	IndexPageSize: 5,
}

var DefaultProfile = Profile{
	Bio: "Security person currently working at @SW_Integrity. I enjoy building, breaking, " +
		"and fixing things - especially games. I'm particularly interested in mobile security, " +
		"both Android and iOS.",
	Tagline:  "Security Specialist / Developer / Reverse Engineer",
	Location: "London, UK",
	Social: []SocialLink{
		{Name: "Twitter", Icon: "𝕏", URL: "https://twitter.com/arbitraryrw"},
		{Name: "GitHub", Icon: "gh", URL: "https://github.com/arbitraryrw"},
		{Name: "LinkedIn", Icon: "in", URL: "https://www.linkedin.com/in/nikola-cucakovic-623aa677/"},
	},
}

// BannerPhrases is the default typing banner. The first entry is the intro
// that is dropped after one full pass.
var BannerPhrases = []string{
	"Hey, I'm Nik.",
	"I build things.",
	"I break things.",
	"I solve problems.",
}
