// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"
)

// systemInstruction sets the behaviour of the prompt-writing assistant.
// It is constant and does not depend on the request.
const systemInstruction = `You are an expert AI prompt engineer with deep knowledge of what actually works in practice. You've analyzed thousands of successful AI coding sessions and understand the patterns that lead to first-try success.

Your mission: Generate prompts that deliver working MVPs on the first attempt by being intelligently specific, contextually aware, and grounded in real-world constraints.

Key principles you follow:
- SPECIFICITY OVER GENERICITY: Instead of "build a dashboard," specify exact components, data flow, and user interactions
- CONTEXT AWARENESS: Consider framework versions, deployment targets, authentication patterns, state management, styling preferences, accessibility requirements, and performance constraints
- QUALITY SPECIFICATIONS: Include error handling, loading states, empty states, security best practices, and testing requirements
- PRACTICAL CONSTRAINTS: Consider bundle size, hosting costs, API rate limits, and scalability from day one
- ARCHITECTURAL CLARITY: Specify separation of concerns, code organization patterns, and maintainability standards

Your prompts should be comprehensive enough that a developer can copy-paste them and get production-ready code without modification. Avoid markdown formatting - write in clear, direct prose that flows naturally.`

// Fallback phrases used when an optional selection is empty. Each phrase is
// specific to its field so the template never reads as half-filled.
const (
	fallbackDesignPatterns = "Modern, clean design with focus on usability"
	fallbackUILibraries    = "Standard, accessible components"
	fallbackFontFamily     = "Professional, readable fonts optimized for web"
	fallbackTheme          = "Clean, modern aesthetic with proper contrast ratios"
	fallbackAuthProvider   = "Secure, user-friendly authentication with proper session management"
	fallbackDatabase       = "Reliable, scalable database with proper indexing and relationships"
	fallbackAITool         = "Modern AI-assisted development environment"
	fallbackAIToolClosing  = "an AI coding assistant"
)

// buildUserInstruction interpolates every request field into the fixed
// ten-section template. The idea text is embedded verbatim; empty optional
// fields are replaced with their fallback phrases.
func buildUserInstruction(req Request) string {
	designPatterns := joinOrFallback(req.DesignPatterns, fallbackDesignPatterns)
	uiLibraries := joinOrFallback(req.UILibraries, fallbackUILibraries)
	fontFamily := orFallback(req.FontFamily, fallbackFontFamily)
	theme := orFallback(req.Theme, fallbackTheme)
	authProvider := orFallback(req.AuthProvider, fallbackAuthProvider)
	database := orFallback(req.DatabaseProvider, fallbackDatabase)
	aiTool := orFallback(req.AITool, fallbackAITool)
	aiToolClosing := orFallback(req.AITool, fallbackAIToolClosing)

	return fmt.Sprintf(`Generate a comprehensive, production-ready prompt for building this application. The prompt should be so detailed and specific that it generates working code on the first attempt without modification.

PROJECT VISION:
%s

TECHNICAL SPECIFICATIONS:
- Design Patterns: %s
- UI Libraries: %s
- Typography: %s
- Theme: %s

INFRASTRUCTURE REQUIREMENTS:
- Authentication: %s
- Database: %s
- Target Platform: %s

The generated prompt must include:

1. EXACT TECHNICAL ARCHITECTURE: Specify the complete tech stack, folder structure, and architectural patterns. Include specific versions, configuration files, and setup instructions.

2. DETAILED COMPONENT SPECIFICATIONS: Define every UI component with exact props, state management, styling approach, and interaction patterns. Include responsive breakpoints and accessibility requirements.

3. DATA FLOW AND STATE MANAGEMENT: Specify how data flows through the application, where state is stored, how components communicate, and how data is fetched and updated.

4. AUTHENTICATION AND AUTHORIZATION: Detail the complete auth flow, including login/signup forms, protected routes, user session management, and role-based permissions if applicable.

5. DATABASE SCHEMA AND API DESIGN: Define exact database tables/collections, relationships, API endpoints, request/response formats, and data validation rules.

6. ERROR HANDLING AND EDGE CASES: Specify how to handle loading states, error states, empty states, network failures, validation errors, and user feedback.

7. PERFORMANCE AND SECURITY: Include bundle optimization, lazy loading, caching strategies, input validation, XSS protection, and security best practices.

8. TESTING AND QUALITY: Define unit tests, integration tests, accessibility testing, and code quality standards.

9. DEPLOYMENT AND SCALABILITY: Specify deployment configuration, environment variables, build processes, and scalability considerations.

10. USER EXPERIENCE: Detail the complete user journey, interaction patterns, micro-animations, and responsive behavior across all device sizes.

Write this as a single, comprehensive prompt that can be copied directly into %s and will generate a complete, working MVP without any modifications needed.`,
		req.Idea,
		designPatterns,
		uiLibraries,
		fontFamily,
		theme,
		authProvider,
		database,
		aiTool,
		aiToolClosing,
	)
}

// joinOrFallback joins a multi-select with commas, or returns the fallback
// when nothing is selected.
func joinOrFallback(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

// orFallback returns value, or the fallback when it is empty.
func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
