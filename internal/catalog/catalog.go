// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static option catalogs the generator form is
// built from: design patterns, UI libraries, fonts, auth and database
// providers, payment gateways and target AI tools. Entries are display
// strings with descriptive metadata; the generator forwards selected names
// verbatim into the prompt template without validating membership.
package catalog

// DesignPattern is a visual design style with a short description and a
// CSS-flavored example swatch for the picker UI.
type DesignPattern struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Font is a typeface option with preview metadata.
type Font struct {
	Name     string `json:"name"`
	Preview  string `json:"preview"`
	Category string `json:"category"`
}

// Provider is a rated infrastructure option (auth provider, database
// provider or payment gateway).
type Provider struct {
	Name   string `json:"name"`
	Badge  string `json:"badge"`
	Rating string `json:"rating,omitempty"`
}

// DesignPatterns lists the selectable visual design styles.
var DesignPatterns = []DesignPattern{
	{Name: "Neobrutalism", Description: "Bold borders, stark colors", Example: "bg-yellow-400 border-4 border-black shadow-[4px_4px_0px_0px_rgba(0,0,0,1)]"},
	{Name: "Minimalist", Description: "Clean, simple, focused", Example: "bg-white border border-gray-200"},
	{Name: "Glassmorphism", Description: "Frosted glass effect", Example: "bg-white/10 backdrop-blur-lg border border-white/20"},
	{Name: "Neumorphism", Description: "Soft UI, subtle shadows", Example: "bg-gray-200 shadow-[8px_8px_16px_#bebebe,-8px_-8px_16px_#ffffff]"},
	{Name: "Material Design", Description: "Google's design system", Example: "bg-blue-500 shadow-lg rounded-lg"},
	{Name: "Flat Design", Description: "2D, no gradients", Example: "bg-purple-500"},
	{Name: "Skeuomorphism", Description: "Real-world mimicry", Example: "bg-gradient-to-b from-gray-300 to-gray-400 shadow-inner"},
	{Name: "Swiss Style", Description: "Grid-based, typography", Example: "bg-white border-l-4 border-red-600"},
	{Name: "Art Deco", Description: "Geometric, luxurious", Example: "bg-gradient-to-br from-amber-300 via-yellow-400 to-amber-600 border border-amber-700/30"},
	{Name: "Memphis Design", Description: "Bold shapes, bright colors", Example: "bg-gradient-to-r from-pink-500 via-yellow-400 to-cyan-400"},
	{Name: "Bauhaus", Description: "Form follows function", Example: "bg-red-600 border-8 border-black"},
	{Name: "Brutalism", Description: "Raw, unpolished", Example: "bg-gray-800 border border-gray-600"},
	{Name: "Cyberpunk", Description: "Neon, futuristic", Example: "bg-black border-2 border-cyan-400 shadow-[0_0_10px_#00ffff]"},
	{Name: "Vaporwave", Description: "Retro, pastel, glitch", Example: "bg-gradient-to-r from-pink-300 via-purple-300 to-blue-300"},
	{Name: "Y2K", Description: "Early 2000s aesthetic", Example: "bg-gradient-to-br from-blue-400 via-purple-400 to-pink-400"},
}

// UILibraries lists the selectable component/animation libraries.
var UILibraries = []string{
	"shadcn/ui",
	"Magic UI",
	"Aceternity UI",
	"Framer Motion",
	"Three.js",
	"GSAP",
	"Radix UI",
	"Headless UI",
	"React Spring",
	"Chakra UI",
	"Mantine",
	"NextUI",
	"DaisyUI",
	"Ant Design",
	"Material-UI",
}

// Fonts lists the selectable typefaces.
var Fonts = []Font{
	{Name: "Inter", Preview: "Modern & Clean", Category: "Sans-serif"},
	{Name: "Roboto", Preview: "Professional", Category: "Sans-serif"},
	{Name: "Open Sans", Preview: "Friendly & Readable", Category: "Sans-serif"},
	{Name: "Lato", Preview: "Warm & Stable", Category: "Sans-serif"},
	{Name: "Montserrat", Preview: "Geometric & Bold", Category: "Sans-serif"},
	{Name: "Poppins", Preview: "Contemporary", Category: "Sans-serif"},
	{Name: "Space Grotesk", Preview: "Tech & Futuristic", Category: "Sans-serif"},
	{Name: "Playfair Display", Preview: "Elegant & Classic", Category: "Serif"},
	{Name: "Merriweather", Preview: "Traditional", Category: "Serif"},
	{Name: "Raleway", Preview: "Sophisticated", Category: "Sans-serif"},
	{Name: "Nunito", Preview: "Rounded & Soft", Category: "Sans-serif"},
	{Name: "Ubuntu", Preview: "Humanist", Category: "Sans-serif"},
	{Name: "Quicksand", Preview: "Playful & Round", Category: "Display"},
	{Name: "Oswald", Preview: "Condensed & Strong", Category: "Display"},
	{Name: "Bebas Neue", Preview: "Bold & Impactful", Category: "Display"},
}

// AuthProviders lists the selectable authentication providers.
var AuthProviders = []Provider{
	{Name: "Better Auth", Badge: "Modern", Rating: "4.8"},
	{Name: "Supabase Auth", Badge: "Most Popular", Rating: "4.9"},
	{Name: "Firebase Auth", Badge: "Easy Setup", Rating: "4.7"},
	{Name: "Auth0", Badge: "Enterprise", Rating: "4.6"},
	{Name: "Clerk", Badge: "Developer Friendly", Rating: "4.8"},
	{Name: "NextAuth", Badge: "Next.js Native", Rating: "4.7"},
	{Name: "Lucia", Badge: "Lightweight", Rating: "4.5"},
	{Name: "Keycloak", Badge: "Open Source", Rating: "4.4"},
}

// DatabaseProviders lists the selectable database providers.
var DatabaseProviders = []Provider{
	{Name: "Supabase", Badge: "Most Popular", Rating: "4.9"},
	{Name: "Neon", Badge: "Serverless Postgres", Rating: "4.7"},
	{Name: "PlanetScale", Badge: "MySQL at Scale", Rating: "4.8"},
	{Name: "MongoDB", Badge: "NoSQL Leader", Rating: "4.6"},
	{Name: "Firebase", Badge: "Easy Setup", Rating: "4.7"},
	{Name: "PostgreSQL", Badge: "Battle Tested", Rating: "4.8"},
	{Name: "MySQL", Badge: "Classic Choice", Rating: "4.5"},
	{Name: "Prisma", Badge: "Type-Safe ORM", Rating: "4.9"},
}

// PaymentGateways lists the selectable payment gateways. The generator form
// collects this selection but it is not part of the generation request.
var PaymentGateways = []Provider{
	{Name: "Stripe", Badge: "Most Popular"},
	{Name: "Polar", Badge: "Developer Friendly"},
	{Name: "LemonSqueezy", Badge: "Easy Setup"},
	{Name: "Selar", Badge: "African Market"},
	{Name: "Gumroad", Badge: "Creator Focused"},
	{Name: "PayPal", Badge: "Global Reach"},
	{Name: "Paystack", Badge: "African & Global"},
	{Name: "Flutterwave", Badge: "Multi-Currency"},
}

// AITools lists the target AI coding assistants a prompt can be written for.
var AITools = []string{
	"Replit",
	"Cursor",
	"Claude CLI",
	"Gemini CLI",
	"Qwen Coder CLI",
	"Bolt.new",
	"Dyad.sh",
	"Warp",
	"Devin",
	"Goose",
	"v0.dev",
	"GitHub Copilot",
}

// Themes is the fixed theme enumeration.
var Themes = []string{"dark", "light", "both"}

// All bundles every catalog for the catalogs endpoint.
type All struct {
	DesignPatterns    []DesignPattern `json:"design_patterns"`
	UILibraries       []string        `json:"ui_libraries"`
	Fonts             []Font          `json:"fonts"`
	AuthProviders     []Provider      `json:"auth_providers"`
	DatabaseProviders []Provider      `json:"database_providers"`
	PaymentGateways   []Provider      `json:"payment_gateways"`
	AITools           []string        `json:"ai_tools"`
	Themes            []string        `json:"themes"`
}

// Catalogs returns every catalog in one bundle.
func Catalogs() All {
	return All{
		DesignPatterns:    DesignPatterns,
		UILibraries:       UILibraries,
		Fonts:             Fonts,
		AuthProviders:     AuthProviders,
		DatabaseProviders: DatabaseProviders,
		PaymentGateways:   PaymentGateways,
		AITools:           AITools,
		Themes:            Themes,
	}
}

// ValidTheme reports whether theme is one of the fixed enumeration values.
func ValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}
