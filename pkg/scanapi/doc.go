// Package scanapi holds the wire types and error vocabulary of the meal
// scanning HTTP API, plus a small Go client for it. The server handlers
// and the client share these definitions so the two cannot drift apart.
package scanapi
