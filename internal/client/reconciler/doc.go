// Package reconciler presents one logical session slot and one logical theme
// slot backed by three storage substrates with different scopes:
//
//  1. page: persistent, private to one origin (read first);
//  2. cookie: shared by the parent domain and all its subdomains;
//  3. tab: ephemeral, bridges the redirect right after login.
//
// Reads walk the substrates in that order. A cookie hit is copied back into
// the page store, a tab hit is copied into both durable substrates. Writes
// fan out to every substrate independently: a failing substrate never stops
// the others, and there is no cross-substrate atomicity. Substrates may
// therefore disagree for a while; the next read repairs them
// (eventually consistent, self-healing on read, last writer wins).
//
// Stored values that cannot be decoded are treated as absent for the
// substrate holding them and removed from it. Callers never see decode
// errors.
//
// The theme slot uses the page and cookie substrates only.
package reconciler
