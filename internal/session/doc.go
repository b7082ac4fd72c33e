// Package session tracks one identification from the first reported trait to
// its verdict.
//
// A Session starts in the collecting state and accepts attribute values one at
// a time. Scoring starts automatically once every attribute is known, or
// earlier when the caller asks for it. The catalog is scored against a frozen
// copy of the attributes and the session ends identified or unidentified;
// identifying another specimen takes a new Session.
package session
