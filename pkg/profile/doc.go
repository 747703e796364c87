// Package profile turns fetched GitHub records into display fragments.
//
// # Overview
//
// The package is the presentation half of a lookup. [Build] converts a
// [github.User] and its repositories into a [Profile] view model with every
// fallback literal applied ("UnKnown", "No bio available", "Not specified",
// "Not existed", "No description available", "Unknown"). The view model is
// rendered by html/template components:
//
//   - [RenderHeader]: avatar, name, @login, bio, location, join date, profile link
//   - [RenderStats]: followers, following, repositories
//   - [RenderAdditionalInfo]: company, blog link, twitter link
//   - [RenderRepos]: one card per repository or the empty placeholder
//   - [RenderProfile]: the four sections inside their container
//   - [Render]: the complete search page for a [ViewState]
//
// Terminal front ends consume the same [Profile] value directly.
//
// # Formatting Rules
//
// Dates use the "Jan 2, 2006" layout in UTC ([FormatDate]). Blog links gain an
// https:// scheme when they have none ([BlogHref]) and are displayed without
// scheme or leading "www." ([BlogLabel]).
//
// [github.User]: github.com/matzehuels/ghprofile/pkg/integrations/github.User
package profile
