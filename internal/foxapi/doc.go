// Package foxapi provides the HTTP client for the randomfox.ca floof API.
//
// The API is a single unauthenticated GET endpoint that returns a JSON
// payload with the URL of a random fox photo. The client also knows how to
// download the photo bytes themselves for the inline terminal preview.
package foxapi
