// Package docs Traveloki Service API.
//
// Attraction catalog and recommendation service for Medan. Serves a verified
// attraction catalog with geospatial radius search and a community
// recommendation pipeline with admin moderation.
//
// Main features:
// - Verified attraction catalog with category filtering and text search
// - Nearby search by great-circle distance within a radius
// - Community recommendations with approve/reject moderation
// - User accounts with JWT authentication
// - Statistics over the catalog and the review queue
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
