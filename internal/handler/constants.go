// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"

	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteEvents is the events route (public list and admin CRUD).
	RouteEvents = "/events"
	// RouteBlog is the blog route.
	RouteBlog = "/blog"
	// RouteGlossary is the glossary route.
	RouteGlossary = "/glossary"
	// RouteContact is the contact page route.
	RouteContact = "/contact"

	// RouteMembers is the members admin route.
	RouteMembers = "/members"
	// RoutePosts is the blog posts admin route.
	RoutePosts = "/posts"
	// RouteMessages is the contact messages admin route.
	RouteMessages = "/messages"
	// RouteActivities is the activity log admin route.
	RouteActivities = "/activities"

	// RouteMembersID is the members ID route pattern.
	RouteMembersID = RouteMembers + RouteParamID
	// RouteEventsID is the events ID route pattern.
	RouteEventsID = RouteEvents + RouteParamID
	// RoutePostsID is the posts ID route pattern.
	RoutePostsID = RoutePosts + RouteParamID
	// RouteGlossaryID is the glossary ID route pattern.
	RouteGlossaryID = RouteGlossary + RouteParamID
	// RouteMessagesID is the messages ID route pattern.
	RouteMessagesID = RouteMessages + RouteParamID
)

const (
	redirectAdmin            = "/admin"
	redirectAdminMembers     = redirectAdmin + RouteMembers
	redirectAdminMembersNew  = redirectAdminMembers + RouteSuffixNew
	redirectAdminEvents      = redirectAdmin + RouteEvents
	redirectAdminEventsNew   = redirectAdminEvents + RouteSuffixNew
	redirectAdminPosts       = redirectAdmin + RoutePosts
	redirectAdminPostsNew    = redirectAdminPosts + RouteSuffixNew
	redirectAdminGlossary    = redirectAdmin + RouteGlossary
	redirectAdminGlossaryNew = redirectAdminGlossary + RouteSuffixNew
	redirectAdminMessages    = redirectAdmin + RouteMessages
	redirectLogin            = RouteLogin
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
