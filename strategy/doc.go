// Package strategy decides how one logical call maps to underlying HTTP
// calls. The default Single strategy performs exactly one call; the
// paginated strategies repeat the dispatch while a caller-supplied
// extraction function yields a next page.
package strategy
