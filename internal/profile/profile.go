// Package profile holds the static content rendered by the portfolio.
package profile

// Fact is a short labelled detail shown in the about section.
type Fact struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// SkillCategory groups skills under a heading. Categories render in order.
type SkillCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      string   `json:"github,omitempty"`
	Live        string   `json:"live,omitempty"`
	Featured    bool     `json:"featured"`
}

type Link struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Href  string `json:"href"`
}

type Footer struct {
	Credits   string `json:"credits"`
	Copyright string `json:"copyright"`
}

// Profile is everything the page shows about one person.
type Profile struct {
	Name          string          `json:"name"`
	Handle        string          `json:"handle"`
	Availability  string          `json:"availability"`
	Taglines      []string        `json:"taglines"`
	About         []string        `json:"about"`
	Facts         []Fact          `json:"facts"`
	Focus         []string        `json:"focus"`
	SkillsIntro   string          `json:"skills_intro"`
	Skills        []SkillCategory `json:"skills"`
	ProjectsIntro string          `json:"projects_intro"`
	Projects      []Project       `json:"projects"`
	ContactIntro  string          `json:"contact_intro"`
	Socials       []Link          `json:"socials"`
	Footer        Footer          `json:"footer"`
}

// SkillCount is the number of skills across all categories.
func (p Profile) SkillCount() int {
	n := 0
	for _, c := range p.Skills {
		n += len(c.Items)
	}
	return n
}

// FeaturedProjects returns the projects flagged as featured, in order.
func (p Profile) FeaturedProjects() []Project {
	var out []Project
	for _, proj := range p.Projects {
		if proj.Featured {
			out = append(out, proj)
		}
	}
	return out
}

// Default returns the built-in profile. Each call returns fresh slices.
func Default() Profile {
	return Profile{
		Name:         "Sumit Pandey",
		Handle:       "SumitPandey",
		Availability: "Available for opportunities",
		Taglines: []string{
			"AI Enthusiast.",
			"Full Stack Builder.",
			"Engineering Minds.",
		},
		About: []string{AboutIntro, AboutJourney, AboutGoal},
		Facts: []Fact{
			{Icon: "map-pin", Label: "Delhi, India"},
			{Icon: "calendar", Label: "July 5, 2005"},
			{Icon: "graduation-cap", Label: "CS at DU"},
			{Icon: "target", Label: "AI Engineer"},
		},
		Focus: []string{
			"Building scalable web applications",
			"Learning advanced AI/ML concepts",
			"Contributing to open source",
			"Preparing for GATE DA",
			"Exploring emerging technologies",
		},
		SkillsIntro: "A comprehensive toolkit for building modern applications and exploring AI",
		Skills: []SkillCategory{
			{Name: "frontend", Items: []string{"React", "Next.js", "Tailwind CSS", "Shadcn UI", "Framer Motion", "TypeScript"}},
			{Name: "backend", Items: []string{"Node.js", "Express.js", "Prisma", "Socket.IO", "Redis", "Kafka"}},
			{Name: "database", Items: []string{"PostgreSQL", "MongoDB"}},
			{Name: "auth", Items: []string{"NextAuth.js", "Google OAuth", "Auth0"}},
			{Name: "tools", Items: []string{"Git", "GitHub", "Vercel", "Docker"}},
			{Name: "ai", Items: []string{"LLMs", "TTS/STT APIs", "Google TTS"}},
		},
		ProjectsIntro: "A showcase of my work in web development and AI applications",
		Projects: []Project{
			{
				Title:       "Hello - Real-time Chat App",
				Description: ProjectChat,
				Tech:        []string{"React", "Socket.IO", "Redis", "Node.js", "PostgreSQL"},
				GitHub:      "#",
				Live:        "#",
				Featured:    true,
			},
			{
				Title:       "AI Interview Assistant",
				Description: ProjectInterview,
				Tech:        []string{"Next.js", "OpenAI API", "Google TTS", "WebRTC"},
				GitHub:      "#",
				Live:        "#",
			},
			{
				Title:       "Coaching Center Management",
				Description: ProjectCoaching,
				Tech:        []string{"React", "Prisma", "NextAuth.js", "PostgreSQL"},
				GitHub:      "#",
			},
			{
				Title:       "Resume Builder Pro",
				Description: ProjectResume,
				Tech:        []string{"Next.js", "Tailwind CSS", "jsPDF", "Zustand"},
				GitHub:      "#",
				Live:        "#",
			},
		},
		ContactIntro: ContactIntro,
		Socials: []Link{
			{Label: "GitHub", Icon: "github", Href: "#"},
			{Label: "LinkedIn", Icon: "linkedin", Href: "#"},
			{Label: "Email", Icon: "mail", Href: "mailto:"},
		},
		Footer: Footer{
			Credits:   "Built with Go, Gin, and a little bit of typewriter magic",
			Copyright: "© 2024 Sumit Pandey. All rights reserved.",
		},
	}
}
